package lmx2492

// Typed register-group snapshots. One struct per group; each ReadXxx
// re-reads the live registers through the bus. Content is only
// meaningful once readback is unlocked.

// General mirrors the R0 control bits.
type General struct {
	PowerDown         bool
	Reset             bool
	MuxoutLockDetect  bool
	CalibrationEnable bool
	RampEnable        bool
}

func (d *Device) ReadGeneral() (General, error) {
	v, err := d.Read(regCtrl)
	if err != nil {
		return General{}, err
	}
	return General{
		PowerDown:         GetBits(v, fldPowerdown) != 0,
		Reset:             GetBits(v, fldReset) != 0,
		MuxoutLockDetect:  GetBits(v, fldMuxoutLdSel) != 0,
		CalibrationEnable: GetBits(v, fldFcalEn) != 0,
		RampEnable:        GetBits(v, fldRampEn) != 0,
	}, nil
}

// InputPath mirrors the reference divider chain ahead of the phase
// detector.
type InputPath struct {
	Osc2x bool
	Mult  uint8
	R     uint8
	RPre  uint16
}

func (d *Device) ReadInputPath() (InputPath, error) {
	r9, err := d.Read(regOscIn)
	if err != nil {
		return InputPath{}, err
	}
	r10, err := d.Read(regMult)
	if err != nil {
		return InputPath{}, err
	}
	r11, err := d.Read(regPllR)
	if err != nil {
		return InputPath{}, err
	}
	r12, err := d.Read(regPllRPre)
	if err != nil {
		return InputPath{}, err
	}
	return InputPath{
		Osc2x: GetBits(r9, fldOsc2x) != 0,
		Mult:  uint8(GetBits(r10, fldMult)),
		R:     uint8(GetBits(r11, fldPllR)),
		RPre:  GetBits(r12, fldPllRPre),
	}, nil
}

// VCOCal mirrors the calibration timing fields.
type VCOCal struct {
	CalClkDiv      uint8
	LockDelay      uint8
	RecalAfterRamp bool
	ScaleCount     uint8
	QuickRecal     bool
}

func (d *Device) ReadVCOCal() (VCOCal, error) {
	r1, err := d.Read(regCalClk)
	if err != nil {
		return VCOCal{}, err
	}
	r78, err := d.Read(regRampCal)
	if err != nil {
		return VCOCal{}, err
	}
	r106, err := d.Read(regRampMisc)
	if err != nil {
		return VCOCal{}, err
	}
	return VCOCal{
		CalClkDiv:      uint8(GetBits(r1, fldCalClkDiv)),
		LockDelay:      uint8(GetBits(r78, fldLockDelay)),
		RecalAfterRamp: GetBits(r78, fldRampRecal) != 0,
		ScaleCount:     uint8(GetBits(r106, fldRampScaleCount)),
		QuickRecal:     GetBits(r106, fldRampTrigCal) != 0,
	}, nil
}

// DividerOutput mirrors the feedback divider and output power codes.
type DividerOutput struct {
	N      uint32
	Num    uint32
	Den    uint32
	PowerA uint8
	PowerB uint8
}

func (d *Device) ReadDividerOutput() (DividerOutput, error) {
	n, err := d.integerDivider()
	if err != nil {
		return DividerOutput{}, err
	}
	num, den, err := d.fraction()
	if err != nil {
		return DividerOutput{}, err
	}
	r44, err := d.Read(regOutPwrA)
	if err != nil {
		return DividerOutput{}, err
	}
	r45, err := d.Read(regOutPwrB)
	if err != nil {
		return DividerOutput{}, err
	}
	return DividerOutput{
		N:      n,
		Num:    num,
		Den:    den,
		PowerA: uint8(GetBits(r44, fldOutPwrA)),
		PowerB: uint8(GetBits(r45, fldOutPwrB)),
	}, nil
}

// RampConfig mirrors the staged sweep parameters for ramp 0.
type RampConfig struct {
	ManualTrigger bool
	ResetAtStart  bool
	TrigA         uint8
	TrigB         uint8
	NextSegment   uint8
	NextTrigger   uint8
	Increment     uint32
	Length        uint16
}

func (d *Device) ReadRampConfig() (RampConfig, error) {
	r97, err := d.Read(regRampTrig)
	if err != nil {
		return RampConfig{}, err
	}
	r98, err := d.Read(regRamp0IncHigh)
	if err != nil {
		return RampConfig{}, err
	}
	r99, err := d.Read(regRamp0IncLow)
	if err != nil {
		return RampConfig{}, err
	}
	r100, err := d.Read(regRamp0Len)
	if err != nil {
		return RampConfig{}, err
	}
	r101, err := d.Read(regRamp0Next)
	if err != nil {
		return RampConfig{}, err
	}
	return RampConfig{
		ManualTrigger: GetBits(r97, fldRampManual) != 0,
		ResetAtStart:  GetBits(r97, fldRamp0Reset) != 0,
		TrigA:         uint8(GetBits(r97, fldRampTrigA)),
		TrigB:         uint8(GetBits(r97, fldRampTrigB)),
		NextSegment:   uint8(GetBits(r101, fldRamp0Next)),
		NextTrigger:   uint8(GetBits(r101, fldRamp0NextTrig)),
		Increment:     uint32(GetBits(r98, fldRamp0IncHigh))<<16 | uint32(r99),
		Length:        r100,
	}, nil
}

// RampLimits mirrors the 33-bit guard-band limits and the
// recalibration threshold.
type RampLimits struct {
	High           uint64
	Low            uint64
	RecalThreshold uint64
}

func (d *Device) ReadRampLimits() (RampLimits, error) {
	hi, err := d.readField33(regRampLimHighTop, fldRampLimTop,
		regRampLimHighMid, regRampLimHighLow)
	if err != nil {
		return RampLimits{}, err
	}
	lo, err := d.readField33(regRampLimLowTop, fldRampLimTop,
		regRampLimLowMid, regRampLimLowLow)
	if err != nil {
		return RampLimits{}, err
	}
	th, err := d.readField33(regRampCal, fldRampThreshTop,
		regRampThreshHigh, regRampThreshLow)
	if err != nil {
		return RampLimits{}, err
	}
	return RampLimits{High: hi, Low: lo, RecalThreshold: th}, nil
}

// Status mirrors the read-only lock/VCO status registers R110–R112.
// Raw words are kept verbatim alongside the decoded lock bit.
type Status struct {
	Locked  bool
	LockRaw uint16
	VCORaw  uint16
	CalRaw  uint16
}

func (d *Device) ReadStatus() (Status, error) {
	r110, err := d.Read(regStatusLock)
	if err != nil {
		return Status{}, err
	}
	r111, err := d.Read(regStatusVCO)
	if err != nil {
		return Status{}, err
	}
	r112, err := d.Read(regStatusCal)
	if err != nil {
		return Status{}, err
	}
	return Status{
		Locked:  GetBits(r110, fldLockDetect) != 0,
		LockRaw: r110,
		VCORaw:  r111,
		CalRaw:  r112,
	}, nil
}
