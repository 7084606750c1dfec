package lmx2492

// BitRange selects an inclusive bit span [Low, High] of a 16-bit word.
// 0 <= Low <= High <= 15; callers must not construct ranges with
// Low > High.
type BitRange struct {
	Low, High uint8
}

// Width returns the number of bits the range selects.
func (r BitRange) Width() uint8 { return r.High - r.Low + 1 }

// SetBits returns word with the bits in r replaced by the low Width()
// bits of data. Data bits beyond the range width are ignored, not
// reported.
func SetBits(word uint16, r BitRange, data uint16) uint16 {
	for i := r.Low; i <= r.High; i++ {
		word &^= 1 << i
		word |= ((data >> (i - r.Low)) & 0x1) << i
	}
	return word
}

// GetBits extracts the bits in r, shifted down to bit 0.
func GetBits(word uint16, r BitRange) uint16 {
	mask := uint16((uint32(1) << r.Width()) - 1)
	return (word >> r.Low) & mask
}
