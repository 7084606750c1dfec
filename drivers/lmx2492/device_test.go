package lmx2492

import (
	"errors"
	"testing"
)

// Compile-time check.
var _ Bus = (*fakeBus)(nil)

type busOp struct {
	write bool
	addr  uint8
	value uint16
}

// fakeBus is an ideal transport over an in-memory register file,
// recording every round trip.
type fakeBus struct {
	regs [RegMax + 1]uint16
	ops  []busOp
	fail error // returned by every call when set
}

func (f *fakeBus) ReadRegister(addr uint8) (uint16, error) {
	if f.fail != nil {
		return 0, f.fail
	}
	f.ops = append(f.ops, busOp{write: false, addr: addr, value: f.regs[addr]})
	return f.regs[addr], nil
}

func (f *fakeBus) WriteRegister(addr uint8, value uint16) error {
	if f.fail != nil {
		return f.fail
	}
	f.regs[addr] = value
	f.ops = append(f.ops, busOp{write: true, addr: addr, value: value})
	return nil
}

func (f *fakeBus) writes() []busOp {
	var w []busOp
	for _, op := range f.ops {
		if op.write {
			w = append(w, op)
		}
	}
	return w
}

func newUnlocked(t *testing.T) (*Device, *fakeBus) {
	t.Helper()
	bus := &fakeBus{}
	dev := New(bus, Config{RefFrequencyHz: 10e6})
	if err := dev.UnlockReadback(); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	bus.ops = nil
	return dev, bus
}

func TestRegisterRoundTrip(t *testing.T) {
	dev, _ := newUnlocked(t)
	if err := dev.Write(100, 0xBEEF); err != nil {
		t.Fatalf("write: %v", err)
	}
	v, err := dev.Read(100)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if v != 0xBEEF {
		t.Fatalf("read back 0x%04X, want 0xBEEF", v)
	}
}

func TestAddressBounds(t *testing.T) {
	dev, bus := newUnlocked(t)
	if _, err := dev.Read(113); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("Read(113) = %v, want ErrInvalidAddress", err)
	}
	if err := dev.Write(113, 0); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("Write(113) = %v, want ErrInvalidAddress", err)
	}
	if err := dev.Modify(200, BitRange{0, 0}, 1); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("Modify(200) = %v, want ErrInvalidAddress", err)
	}
	if len(bus.ops) != 0 {
		t.Fatalf("bus traffic issued for invalid address: %v", bus.ops)
	}
	// 112 is the last valid address.
	if _, err := dev.Read(RegMax); err != nil {
		t.Fatalf("Read(%d): %v", RegMax, err)
	}
}

func TestModifyWhileReadbackLocked(t *testing.T) {
	// The read half of a modify is garbage before unlock; the driver
	// refuses rather than trusting it.
	bus := &fakeBus{}
	dev := New(bus, Config{RefFrequencyHz: 10e6})
	err := dev.Modify(regCtrl, fldRampEn, 1)
	if !errors.Is(err, ErrReadbackLocked) {
		t.Fatalf("Modify while locked = %v, want ErrReadbackLocked", err)
	}
	if len(bus.ops) != 0 {
		t.Fatalf("bus traffic issued while locked: %v", bus.ops)
	}
}

func TestResetIsDirectWrite(t *testing.T) {
	bus := &fakeBus{}
	dev := New(bus, Config{RefFrequencyHz: 10e6})
	if err := dev.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if len(bus.ops) != 1 || !bus.ops[0].write {
		t.Fatalf("reset must be exactly one raw write, got %v", bus.ops)
	}
	if bus.ops[0].addr != regCtrl || bus.ops[0].value != 0x0002 {
		t.Fatalf("reset wrote 0x%04X to R%d, want 0x0002 to R0",
			bus.ops[0].value, bus.ops[0].addr)
	}
	if dev.State() != StateReset {
		t.Fatalf("state = %v, want %v", dev.State(), StateReset)
	}
}

func TestUnlockReadback(t *testing.T) {
	bus := &fakeBus{}
	dev := New(bus, Config{RefFrequencyHz: 10e6})
	if dev.State() != StateReadbackLocked {
		t.Fatalf("power-up state = %v", dev.State())
	}
	if err := dev.UnlockReadback(); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if len(bus.ops) != 1 || !bus.ops[0].write || bus.ops[0].value != UnlockWord {
		t.Fatalf("unlock must be one raw write of 0x2410, got %v", bus.ops)
	}
	if dev.State() != StateReadbackUnlocked {
		t.Fatalf("state = %v, want %v", dev.State(), StateReadbackUnlocked)
	}
}

func TestLifecycleAdvances(t *testing.T) {
	dev, bus := newUnlocked(t)

	if err := dev.SetRampEnabled(true); err != nil {
		t.Fatalf("ramp enable: %v", err)
	}
	if dev.State() != StateConfigured {
		t.Fatalf("after first config write: %v", dev.State())
	}
	if GetBits(bus.regs[regCtrl], fldRampEn) != 1 {
		t.Fatalf("RAMP_EN not set: R0=0x%04X", bus.regs[regCtrl])
	}

	if err := dev.EnableCalibration(); err != nil {
		t.Fatalf("arm: %v", err)
	}
	if dev.State() != StateRamping {
		t.Fatalf("after arm: %v", dev.State())
	}
	if GetBits(bus.regs[regCtrl], fldFcalEn) != 1 {
		t.Fatalf("FCAL_EN not set: R0=0x%04X", bus.regs[regCtrl])
	}

	// Clearing FCAL_EN lets staging resume but does not rewind the
	// state machine.
	if err := dev.DisableCalibration(); err != nil {
		t.Fatalf("disarm: %v", err)
	}
	if GetBits(bus.regs[regCtrl], fldFcalEn) != 0 {
		t.Fatalf("FCAL_EN still set: R0=0x%04X", bus.regs[regCtrl])
	}
	if dev.State() != StateRamping {
		t.Fatalf("state rewound to %v", dev.State())
	}
}

func TestOutputPowerValidation(t *testing.T) {
	dev, bus := newUnlocked(t)
	if err := dev.SetOutputPowerA(64); !errors.Is(err, ErrPowerRange) {
		t.Fatalf("power 64 = %v, want ErrPowerRange", err)
	}
	if len(bus.ops) != 0 {
		t.Fatalf("bus traffic issued for invalid power: %v", bus.ops)
	}
	if err := dev.SetOutputPowerA(63); err != nil {
		t.Fatalf("power 63: %v", err)
	}
	if got := GetBits(bus.regs[regOutPwrA], fldOutPwrA); got != 63 {
		t.Fatalf("OUT_A_PWR = %d, want 63", got)
	}
	if err := dev.SetOutputPowerB(17); err != nil {
		t.Fatalf("power B: %v", err)
	}
	if got := GetBits(bus.regs[regOutPwrB], fldOutPwrB); got != 17 {
		t.Fatalf("OUT_B_PWR = %d, want 17", got)
	}
}

func TestBusFaultPropagates(t *testing.T) {
	dev, bus := newUnlocked(t)
	fault := errors.New("no response")
	bus.fail = fault
	if _, err := dev.Read(0); !errors.Is(err, fault) {
		t.Fatalf("fault not propagated: %v", err)
	}
	if err := dev.Modify(regCtrl, fldRampEn, 1); !errors.Is(err, fault) {
		t.Fatalf("fault not propagated through modify: %v", err)
	}
}
