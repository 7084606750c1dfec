package lmx2492

// Extended-precision fields: logical values wider than 16 bits spread
// across a header register (contributing its top bits) plus one or two
// full 16-bit registers for the low bits.

// ReferencePath describes the input divider chain ahead of the phase
// detector. Mult is 5 bits, R is 8 bits, RPre is 12 bits.
type ReferencePath struct {
	Osc2x bool
	Mult  uint8
	R     uint8
	RPre  uint16
}

// SetReferencePath programs the input divider chain. All three dividers
// must be non-zero; a zero divisor makes every derived frequency
// non-finite (see PFDFrequency).
func (d *Device) SetReferencePath(p ReferencePath) error {
	if p.Mult == 0 || p.R == 0 || p.RPre == 0 {
		return ErrZeroDivider
	}
	if p.Mult > 31 || p.RPre > 0xFFF {
		return ErrFieldRange
	}
	if err := d.Modify(regOscIn, fldOsc2x, b2u(p.Osc2x)); err != nil {
		return err
	}
	if err := d.Modify(regMult, fldMult, uint16(p.Mult)); err != nil {
		return err
	}
	if err := d.Modify(regPllR, fldPllR, uint16(p.R)); err != nil {
		return err
	}
	return d.Modify(regPllRPre, fldPllRPre, p.RPre)
}

// SetIntegerDivider programs the 19-bit PLL_N. The three high bits in
// R34 must latch before the low word in R36 (datasheet ordering);
// writing R36 first risks the device combining stale high bits with
// the new low half.
func (d *Device) SetIntegerDivider(n uint32) error {
	if n >= 1<<19 {
		return ErrFieldRange
	}
	if err := d.Modify(regPllNHigh, fldPllNHigh, uint16(n>>16)); err != nil {
		return err
	}
	return d.Write(regPllNLow, uint16(n))
}

// SetNumerator programs the 32-bit fractional numerator. The halves
// have no latch-ordering constraint; high-register-first matches the
// divider pattern.
func (d *Device) SetNumerator(num uint32) error {
	if err := d.Write(regPllNumHigh, uint16(num>>16)); err != nil {
		return err
	}
	return d.Write(regPllNumLow, uint16(num))
}

// SetDenominator programs the 32-bit fractional denominator.
func (d *Device) SetDenominator(den uint32) error {
	if err := d.Write(regPllDenHigh, uint16(den>>16)); err != nil {
		return err
	}
	return d.Write(regPllDenLow, uint16(den))
}

// writeField33 stages a 33-bit value: the single top bit into the
// header register, then the middle and low 16-bit halves.
func (d *Device) writeField33(top uint8, topBit BitRange, mid, low uint8, v uint64) error {
	if err := d.Modify(top, topBit, uint16(v>>32)); err != nil {
		return err
	}
	if err := d.Write(mid, uint16(v>>16)); err != nil {
		return err
	}
	return d.Write(low, uint16(v))
}

// readField33 reassembles a 33-bit value from its header bit and two
// 16-bit halves.
func (d *Device) readField33(top uint8, topBit BitRange, mid, low uint8) (uint64, error) {
	t, err := d.Read(top)
	if err != nil {
		return 0, err
	}
	m, err := d.Read(mid)
	if err != nil {
		return 0, err
	}
	l, err := d.Read(low)
	if err != nil {
		return 0, err
	}
	return uint64(GetBits(t, topBit))<<32 | uint64(m)<<16 | uint64(l), nil
}

// integerDivider reads the live 19-bit PLL_N.
func (d *Device) integerDivider() (uint32, error) {
	hi, err := d.Read(regPllNHigh)
	if err != nil {
		return 0, err
	}
	lo, err := d.Read(regPllNLow)
	if err != nil {
		return 0, err
	}
	return uint32(GetBits(hi, fldPllNHigh))<<16 | uint32(lo), nil
}

// fraction reads the live 32-bit numerator and denominator.
func (d *Device) fraction() (num, den uint32, err error) {
	nh, err := d.Read(regPllNumHigh)
	if err != nil {
		return 0, 0, err
	}
	nl, err := d.Read(regPllNumLow)
	if err != nil {
		return 0, 0, err
	}
	dh, err := d.Read(regPllDenHigh)
	if err != nil {
		return 0, 0, err
	}
	dl, err := d.Read(regPllDenLow)
	if err != nil {
		return 0, 0, err
	}
	return uint32(nh)<<16 | uint32(nl), uint32(dh)<<16 | uint32(dl), nil
}
