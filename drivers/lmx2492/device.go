package lmx2492

// State tracks the device lifecycle. No transition is reversible
// except via a fresh hardware reset.
type State uint8

const (
	// StateReset: register content is at documented defaults and
	// readback is locked. Entered after Reset().
	StateReset State = iota
	// StateReadbackLocked: power-up; register content unknown,
	// readback locked. Reads return garbage until unlocked.
	StateReadbackLocked
	// StateReadbackUnlocked: the unlock word has been written; reads
	// are trustworthy.
	StateReadbackUnlocked
	// StateConfigured: at least one register has been programmed since
	// unlock.
	StateConfigured
	// StateRamping: FCAL_EN has latched the staged configuration and
	// started VCO calibration.
	StateRamping
)

func (s State) String() string {
	switch s {
	case StateReset:
		return "reset"
	case StateReadbackLocked:
		return "readback-locked"
	case StateReadbackUnlocked:
		return "readback-unlocked"
	case StateConfigured:
		return "configured"
	case StateRamping:
		return "ramping"
	default:
		return "unknown"
	}
}

// Config holds construction-time parameters.
type Config struct {
	// RefFrequencyHz is the external reference at OSCin, in Hz.
	// Required; every derived frequency scales from it.
	RefFrequencyHz float64
}

// Device represents one LMX2492 behind a register bus. It owns the
// lifecycle state; the live register file stays on the chip and is
// re-read whenever a derived value is needed.
type Device struct {
	bus    Bus
	fOscIn float64
	state  State
}

// New wraps a register bus. The bus must already be configured. No
// bus traffic is issued here; power-up register content is unknown and
// readback starts locked.
func New(bus Bus, cfg Config) *Device {
	return &Device{
		bus:    bus,
		fOscIn: cfg.RefFrequencyHz,
		state:  StateReadbackLocked,
	}
}

// State returns the current lifecycle state.
func (d *Device) State() State { return d.state }

// RefFrequency returns the reference frequency supplied at
// construction, in Hz.
func (d *Device) RefFrequency() float64 { return d.fOscIn }

// Read returns the 16-bit content of the addressed register. Content
// is undefined before UnlockReadback has run.
func (d *Device) Read(addr uint8) (uint16, error) {
	if addr > RegMax {
		return 0, ErrInvalidAddress
	}
	return d.bus.ReadRegister(addr)
}

// Write replaces the full register content.
func (d *Device) Write(addr uint8, value uint16) error {
	if addr > RegMax {
		return ErrInvalidAddress
	}
	if err := d.bus.WriteRegister(addr, value); err != nil {
		return err
	}
	d.touched()
	return nil
}

// Modify performs read, SetBits, write: two bus round trips, not
// atomic. The device must have exactly one concurrent accessor; a
// competing write between the two halves is silently lost. Rejected
// while readback is locked: the read half would return garbage.
func (d *Device) Modify(addr uint8, bits BitRange, data uint16) error {
	if addr > RegMax {
		return ErrInvalidAddress
	}
	if d.state < StateReadbackUnlocked {
		return ErrReadbackLocked
	}
	cur, err := d.bus.ReadRegister(addr)
	if err != nil {
		return err
	}
	if err := d.bus.WriteRegister(addr, SetBits(cur, bits, data)); err != nil {
		return err
	}
	d.touched()
	return nil
}

// touched advances READBACK_UNLOCKED to CONFIGURED on the first
// programming write after unlock.
func (d *Device) touched() {
	if d.state == StateReadbackUnlocked {
		d.state = StateConfigured
	}
}

// r0Default is R0's documented power-on content.
const r0Default = 0x0000

// Reset returns the device to power-on defaults by writing R0 with the
// RESET bit set. This is a direct full-register write, not a modify:
// readback may be locked here, so the read half of a modify cannot be
// trusted. Other R0 bits are written as their documented defaults.
func (d *Device) Reset() error {
	if err := d.bus.WriteRegister(regCtrl, SetBits(r0Default, fldReset, 1)); err != nil {
		return err
	}
	d.state = StateReset
	return nil
}

// UnlockReadback writes the unlock word to R0 as a raw write (never a
// modify, since reads are not yet trustworthy). Until this has run, every
// register read returns unreliable data.
func (d *Device) UnlockReadback() error {
	if err := d.bus.WriteRegister(regCtrl, UnlockWord); err != nil {
		return err
	}
	d.state = StateReadbackUnlocked
	return nil
}

// EnableCalibration sets FCAL_EN. The 0→1 transition both starts VCO
// calibration and commits the staged ramp configuration; the device is
// armed from here on and only a fresh reset rewinds the lifecycle.
func (d *Device) EnableCalibration() error {
	if err := d.Modify(regCtrl, fldFcalEn, 1); err != nil {
		return err
	}
	d.state = StateRamping
	return nil
}

// DisableCalibration clears FCAL_EN so ramp registers may be staged
// again. This is a hardware requirement for reprogramming, not a
// lifecycle transition: the state machine stays where it is.
func (d *Device) DisableCalibration() error {
	return d.Modify(regCtrl, fldFcalEn, 0)
}

// SetRampEnabled stages the master ramp enable. Like all R0 config it
// takes effect when FCAL_EN next latches.
func (d *Device) SetRampEnabled(on bool) error {
	return d.Modify(regCtrl, fldRampEn, b2u(on))
}

// SetPowerDown controls the POWERDOWN bit.
func (d *Device) SetPowerDown(on bool) error {
	return d.Modify(regCtrl, fldPowerdown, b2u(on))
}

// SetMuxoutLockDetect routes lock-detect to the MUXout pin.
func (d *Device) SetMuxoutLockDetect(on bool) error {
	return d.Modify(regCtrl, fldMuxoutLdSel, b2u(on))
}

// SetOutputPowerA programs the channel A output power code (0..63).
func (d *Device) SetOutputPowerA(code uint8) error {
	if code > 63 {
		return ErrPowerRange
	}
	return d.Modify(regOutPwrA, fldOutPwrA, uint16(code))
}

// SetOutputPowerB programs the channel B output power code (0..63).
func (d *Device) SetOutputPowerB(code uint8) error {
	if code > 63 {
		return ErrPowerRange
	}
	return d.Modify(regOutPwrB, fldOutPwrB, uint16(code))
}

// SetCalClockDivider programs CAL_CLK_DIV (0..7); the state-machine
// clock is f_osc / 2^div.
func (d *Device) SetCalClockDivider(div uint8) error {
	if div > 7 {
		return ErrFieldRange
	}
	return d.Modify(regCalClk, fldCalClkDiv, uint16(div))
}

func b2u(on bool) uint16 {
	if on {
		return 1
	}
	return 0
}
