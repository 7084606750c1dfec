package lmx2492

// Derived frequencies. Nothing here is cached: every call re-reads the
// live registers, so a caller reprogramming the input path sees fresh
// values on the next call. None of these guard against zero-valued
// divider registers: uninitialized registers (or readback never
// unlocked) propagate as ±Inf/NaN rather than a reported error;
// callers must unlock readback and program the reference path first.

// PFDFrequency derives the phase-detector comparison frequency:
//
//	f_pd = f_osc * (OSC_2X+1) / PLL_R_PRE * MULT / PLL_R
func (d *Device) PFDFrequency() (float64, error) {
	r9, err := d.Read(regOscIn)
	if err != nil {
		return 0, err
	}
	r10, err := d.Read(regMult)
	if err != nil {
		return 0, err
	}
	r11, err := d.Read(regPllR)
	if err != nil {
		return 0, err
	}
	r12, err := d.Read(regPllRPre)
	if err != nil {
		return 0, err
	}
	osc2x := float64(GetBits(r9, fldOsc2x))
	mult := float64(GetBits(r10, fldMult))
	pllR := float64(GetBits(r11, fldPllR))
	pllRPre := float64(GetBits(r12, fldPllRPre))
	return d.fOscIn * (osc2x + 1) / pllRPre * mult / pllR, nil
}

// VCOFrequency derives the VCO output frequency from the fractional-N
// feedback divider:
//
//	f_vco = f_pd * (PLL_N + PLL_NUM/PLL_DEN)
func (d *Device) VCOFrequency() (float64, error) {
	fpd, err := d.PFDFrequency()
	if err != nil {
		return 0, err
	}
	n, err := d.integerDivider()
	if err != nil {
		return 0, err
	}
	num, den, err := d.fraction()
	if err != nil {
		return 0, err
	}
	return fpd * (float64(n) + float64(num)/float64(den)), nil
}

// CalClockFrequency derives the calibration state-machine clock:
//
//	f_smclk = f_osc / 2^CAL_CLK_DIV
func (d *Device) CalClockFrequency() (float64, error) {
	r1, err := d.Read(regCalClk)
	if err != nil {
		return 0, err
	}
	div := GetBits(r1, fldCalClkDiv)
	return d.fOscIn / float64(uint32(1)<<div), nil
}
