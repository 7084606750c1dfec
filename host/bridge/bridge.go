// Package bridge exposes the radar board's synthesizer register bus to
// host code over a serial link. The board firmware forwards each
// command to the chip's SPI bus and replies on the same line.
//
// Line protocol (ASCII, newline-terminated):
//
//	r <addr>          →  ok <hex16> | err <code>
//	w <addr> <hex16>  →  ok         | err <code>
//	t                 →  ok         (pulse the ramp trigger line once)
//
// Addresses are decimal, data is hexadecimal, codes are errcode.Code
// strings.
package bridge

import (
	"bufio"
	"strconv"
	"strings"
	"sync"

	"radarcode-go/drivers/lmx2492"
	"radarcode-go/errcode"
)

// Bridge speaks the line protocol over a Port. One request/response
// pair per call; the mutex makes the bridge the single serialized
// accessor the register protocol requires (read-modify-write on the
// far side has no atomicity of its own).
type Bridge struct {
	mu   sync.Mutex
	port Port
	br   *bufio.Reader
}

var _ lmx2492.Bus = (*Bridge)(nil)

// New wraps an open port. Callers who just plugged the board in should
// Flush first to drop stale output.
func New(port Port) *Bridge {
	return &Bridge{port: port, br: bufio.NewReader(port)}
}

// Flush discards stale buffered data on the underlying port.
func (b *Bridge) Flush() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.br.Reset(b.port)
	return b.port.Flush()
}

// Close releases the underlying port. Waits for any in-flight
// request/response pair first.
func (b *Bridge) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.port.Close()
}

// ReadRegister implements lmx2492.Bus.
func (b *Bridge) ReadRegister(addr uint8) (uint16, error) {
	reply, err := b.roundTrip("r " + strconv.Itoa(int(addr)))
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(reply, 16, 16)
	if err != nil {
		return 0, &errcode.E{C: errcode.Malformed, Op: "read", Msg: reply, Err: err}
	}
	return uint16(v), nil
}

// WriteRegister implements lmx2492.Bus.
func (b *Bridge) WriteRegister(addr uint8, value uint16) error {
	_, err := b.roundTrip("w " + strconv.Itoa(int(addr)) + " " +
		strconv.FormatUint(uint64(value), 16))
	return err
}

// Trigger fires a single ramp: the board pulses the trigger line once.
// Periodic chirp repetition is the board's own timing loop; the host
// only requests one-shots.
func (b *Bridge) Trigger() error {
	_, err := b.roundTrip("t")
	return err
}

// roundTrip sends one command line and parses the reply. Board-side
// errors come back as errcode.Code values.
func (b *Bridge) roundTrip(cmd string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.port.Write([]byte(cmd + "\n")); err != nil {
		return "", err
	}
	line, err := b.br.ReadString('\n')
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	switch {
	case line == "ok":
		return "", nil
	case strings.HasPrefix(line, "ok "):
		return line[3:], nil
	case strings.HasPrefix(line, "err "):
		return "", errcode.Code(line[4:])
	}
	return "", &errcode.E{C: errcode.Malformed, Op: "reply", Msg: line}
}
