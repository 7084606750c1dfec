package lmx2492

import "testing"

func TestReadGroupsAfterConfiguration(t *testing.T) {
	dev, bus := newUnlocked(t)
	programPassthrough(bus, 240)
	if err := dev.SetOutputPowerA(31); err != nil {
		t.Fatalf("power: %v", err)
	}
	if err := dev.ConfigureRamp(refProgram); err != nil {
		t.Fatalf("configure: %v", err)
	}

	g, err := dev.ReadGeneral()
	if err != nil {
		t.Fatalf("general: %v", err)
	}
	if g.CalibrationEnable || g.Reset || g.PowerDown {
		t.Fatalf("unexpected R0 bits: %+v", g)
	}

	ip, err := dev.ReadInputPath()
	if err != nil {
		t.Fatalf("input path: %v", err)
	}
	if ip.Mult != 1 || ip.R != 1 || ip.RPre != 1 || ip.Osc2x {
		t.Fatalf("input path %+v", ip)
	}

	do, err := dev.ReadDividerOutput()
	if err != nil {
		t.Fatalf("divider/output: %v", err)
	}
	if do.N != 240 || do.Num != 0 || do.Den != 1 || do.PowerA != 31 {
		t.Fatalf("divider/output %+v", do)
	}

	rc, err := dev.ReadRampConfig()
	if err != nil {
		t.Fatalf("ramp config: %v", err)
	}
	if rc.Length != 20000 || !rc.ResetAtStart || rc.ManualTrigger {
		t.Fatalf("ramp config %+v", rc)
	}

	rl, err := dev.ReadRampLimits()
	if err != nil {
		t.Fatalf("ramp limits: %v", err)
	}
	if rl.RecalThreshold != uint64(15)<<24 {
		t.Fatalf("threshold 0x%X", rl.RecalThreshold)
	}

	vc, err := dev.ReadVCOCal()
	if err != nil {
		t.Fatalf("vco cal: %v", err)
	}
	if vc.RecalAfterRamp || !vc.QuickRecal || vc.ScaleCount != 1 || vc.LockDelay != 0 {
		t.Fatalf("vco cal %+v", vc)
	}
}

func TestReadStatus(t *testing.T) {
	dev, bus := newUnlocked(t)
	bus.regs[regStatusLock] = 0x0001
	bus.regs[regStatusVCO] = 0x1234
	bus.regs[regStatusCal] = 0x00AB

	st, err := dev.ReadStatus()
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !st.Locked || st.VCORaw != 0x1234 || st.CalRaw != 0x00AB {
		t.Fatalf("status %+v", st)
	}
}
