// Package lmx2492 provides a driver for the LMX2492 wideband
// fractional-N PLL with integrated FMCW ramp generation.
//
// Design notes (datasheet references):
// • 4-wire serial bus, chip-select gated; 7-bit address, 16-bit data.
// • Write: 3 bytes: address, data high, data low (big-endian).
// • Read: address with bit 7 set, then 2 bytes clocked from the device.
// • Register readback is unreliable until the unlock word is written
//   to R0; a hardware reset re-locks it.
// • Ramp configuration is staged while FCAL_EN is low and latched by
//   the 0→1 transition of FCAL_EN, which also starts VCO calibration.
package lmx2492

const (
	// RegMax is the highest valid register address. Addresses above it
	// are rejected before any bus transaction.
	RegMax = 112

	// UnlockWord, written raw to R0, enables register readback.
	UnlockWord = 0x2410
)

// Register sub-addresses (16-bit word registers).
const (
	regCtrl    = 0  // POWERDOWN, RESET, MUXOUT_LD_SEL, FCAL_EN, RAMP_EN
	regCalClk  = 1  // CAL_CLK_DIV
	regOscIn   = 9  // OSC_2X
	regMult    = 10 // MULT
	regPllR    = 11 // PLL_R
	regPllRPre = 12 // PLL_R_PRE

	// Feedback divider. PLL_N[18:16] lives in R34 and must latch
	// before the low word in R36.
	regPllNHigh = 34
	regPllNLow  = 36

	regPllDenHigh = 38 // PLL_DEN[31:16]
	regPllDenLow  = 39 // PLL_DEN[15:0]
	regPllNumHigh = 42 // PLL_NUM[31:16]
	regPllNumLow  = 43 // PLL_NUM[15:0]

	regOutPwrA = 44
	regOutPwrB = 45

	// Ramp calibration and the 33-bit-wide RAMP_THRESH field.
	regRampCal        = 78 // LD_DLY, recal-after-ramp, RAMP_THRESH[32]
	regRampThreshHigh = 79 // RAMP_THRESH[31:16]
	regRampThreshLow  = 80 // RAMP_THRESH[15:0]

	// 33-bit ramp limits.
	regRampLimHighTop = 81 // RAMP_LIMIT_HIGH[32]
	regRampLimHighMid = 82 // RAMP_LIMIT_HIGH[31:16]
	regRampLimHighLow = 83 // RAMP_LIMIT_HIGH[15:0]
	regRampLimLowTop  = 84 // RAMP_LIMIT_LOW[32]
	regRampLimLowMid  = 85 // RAMP_LIMIT_LOW[31:16]
	regRampLimLowLow  = 86 // RAMP_LIMIT_LOW[15:0]

	regRampTrig     = 97  // ramp reset / manual mode / trigger selects
	regRamp0IncHigh = 98  // RAMP0_INC[29:16]
	regRamp0IncLow  = 99  // RAMP0_INC[15:0]
	regRamp0Len     = 100 // RAMP0_LEN
	regRamp0Next    = 101 // ramp 0 next-segment and trigger-type selects
	regRamp1Next    = 105 // ramp 1 equivalent (unused by single-ramp API)
	regRampMisc     = 106 // RAMP_SCALE_COUNT, RAMP_TRIG_CAL

	// Read-only status.
	regStatusLock = 110
	regStatusVCO  = 111
	regStatusCal  = 112
)

// Named bitfields.
var (
	// R0
	fldPowerdown   = BitRange{0, 0}
	fldReset       = BitRange{1, 1}
	fldMuxoutLdSel = BitRange{2, 2}
	fldFcalEn      = BitRange{3, 3}
	fldRampEn      = BitRange{15, 15}

	// Input path
	fldCalClkDiv = BitRange{0, 2}
	fldOsc2x     = BitRange{12, 12}
	fldMult      = BitRange{7, 11}
	fldPllR      = BitRange{4, 11}
	fldPllRPre   = BitRange{0, 11}

	// Divider header
	fldPllNHigh = BitRange{0, 2}

	// Output power
	fldOutPwrA = BitRange{8, 13}
	fldOutPwrB = BitRange{0, 5}

	// R78 calibration fields and RAMP_THRESH header bit
	fldLockDelay     = BitRange{1, 8}
	fldRampRecal     = BitRange{9, 9}
	fldRampThreshTop = BitRange{11, 11}

	// R97 trigger / reset selects
	fldRampManual = BitRange{0, 0}
	fldRampClkSel = BitRange{1, 1}
	fldRampTrigA  = BitRange{3, 6}
	fldRampTrigB  = BitRange{7, 10}
	fldRamp0Reset = BitRange{15, 15}

	// RAMP0_INC header (14 high bits of the 30-bit increment)
	fldRamp0IncHigh = BitRange{2, 15}

	// R101 ramp 0 chaining
	fldRamp0NextTrig = BitRange{0, 1}
	fldRamp0Next     = BitRange{4, 4}

	// R106
	fldRampScaleCount = BitRange{0, 2}
	fldRampTrigCal    = BitRange{4, 4}

	// Shared header-bit position for both 33-bit ramp limits
	fldRampLimTop = BitRange{0, 0}

	// R110 status
	fldLockDetect = BitRange{0, 0}
)

// Trigger source codes for RAMP_TRIG_A / RAMP_TRIG_B.
const (
	trigDisabled  = 0x0
	trigRisingClk = 0x2 // rising edge on the ramp clock input
)

// Next-ramp trigger types for RAMP0_NEXT_TRIG.
const (
	nextTrigTimeout = 0x0 // chain on the current ramp's own timeout
	nextTrigA       = 0x1 // chain on trigger A
)
