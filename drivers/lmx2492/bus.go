package lmx2492

import "tinygo.org/x/drivers"

// Bus is the register transport: one synchronous, blocking bus round
// trip per call, 7-bit address, 16-bit value. The driver assumes a
// single concurrent accessor; implementations add no retries and no
// atomicity across calls. Bus-level faults propagate unmodified.
type Bus interface {
	ReadRegister(addr uint8) (uint16, error)
	WriteRegister(addr uint8, value uint16) error
}

// PinOutput drives the chip-select line (true = high = deselected).
type PinOutput func(high bool)

// SPIBus implements Bus over 4-wire SPI with a dedicated chip-select
// pin. Framing: a write is 3 bytes (address, data high, data low); a
// read sends the address with bit 7 set and clocks 2 bytes back.
type SPIBus struct {
	spi drivers.SPI
	cs  PinOutput

	// Fixed buffers to avoid per-call heap allocations.
	w [3]byte
	r [2]byte
}

var _ Bus = (*SPIBus)(nil)

// NewSPIBus wraps a configured SPI peripheral. The chip-select line is
// deselected immediately.
func NewSPIBus(spi drivers.SPI, cs PinOutput) *SPIBus {
	cs(true)
	return &SPIBus{spi: spi, cs: cs}
}

func (b *SPIBus) ReadRegister(addr uint8) (uint16, error) {
	b.w[0] = (addr & 0x7F) | 0x80
	b.cs(false)
	err := b.spi.Tx(b.w[:1], nil)
	if err == nil {
		err = b.spi.Tx(nil, b.r[:2])
	}
	b.cs(true)
	if err != nil {
		return 0, err
	}
	// Big-endian: HIGH then LOW.
	return uint16(b.r[0])<<8 | uint16(b.r[1]), nil
}

func (b *SPIBus) WriteRegister(addr uint8, value uint16) error {
	b.w[0] = addr & 0x7F
	b.w[1] = byte(value >> 8)
	b.w[2] = byte(value)
	b.cs(false)
	err := b.spi.Tx(b.w[:3], nil)
	b.cs(true)
	return err
}
