package lmx2492

import (
	"math"

	"radarcode-go/x/mathx"
)

// RampProgram describes one linear frequency sweep in physical units.
// It is intent-level input: ConfigureRamp translates it to register
// codes and never stores it.
type RampProgram struct {
	SpanHz        float64 // swept bandwidth
	Duration      float64 // sweep time in seconds
	RecalThreshHz float64 // VCO recalibration threshold
	Descending    bool    // sweep downward from the carrier
	FreeRun       bool    // chain ramps on their own timeout instead of trigger A
}

// rampScale is the chip's fixed fractional resolution: increments and
// thresholds are in units of f_pd / 2^24.
const rampScale = 1 << 24

const (
	rampLenMax    = 0xFFFF
	rampIncMax    = 0x3FFFFFFF // 30 bits
	rampThreshMax = 0x1FFFFFFF // 29-bit value in a 33-bit-wide field
	rampLimitMax  = 1<<33 - 1
)

// ConfigureRamp programs a single linear frequency ramp. All register
// codes are derived and range-checked first; a validation failure
// returns before any bus write, so no partial configuration is left
// behind. Everything written here is staged only: nothing takes
// effect until the caller latches it with EnableCalibration, and
// FCAL_EN must be low on entry (hardware requirement).
//
// The sweep is set up for automatic ramping: manual trigger mode off,
// ramp 0 chaining to itself, phase reset at the start of each
// activation. FreeRun selects whether the next sweep starts on the
// current sweep's own timeout or on a rising edge of trigger A from
// the ramp clock input. Guard-band limits are placed two spans either
// side of the carrier so they never trip during a normal sweep.
func (d *Device) ConfigureRamp(p RampProgram) error {
	r0, err := d.Read(regCtrl)
	if err != nil {
		return err
	}
	if GetBits(r0, fldFcalEn) != 0 {
		return ErrCalibrationEnabled
	}

	fpd, err := d.PFDFrequency()
	if err != nil {
		return err
	}
	fvco, err := d.VCOFrequency()
	if err != nil {
		return err
	}

	// Unit conversion into the phase-detector-cycle domain. Between
	// also rejects NaN from a degenerate register file.
	rampLen := math.Round(p.Duration * fpd)
	if !mathx.Between(rampLen, 0, rampLenMax) {
		return ErrRampLenRange
	}

	inc := math.Round(p.SpanHz / fpd * rampScale / rampLen)
	if p.Descending {
		// Two's-complement-style negative encoding, applied only for
		// the descending case; the positive bound applies either way.
		inc = float64(uint64(1)<<30) - inc
	}
	if !mathx.Between(inc, 0, rampIncMax) {
		return ErrRampIncRange
	}

	thresh := math.Round(p.RecalThreshHz / fpd * rampScale)
	if !mathx.Between(thresh, 0, rampThreshMax) {
		return ErrThreshRange
	}

	fHigh := fvco + 2*p.SpanHz
	fLow := fvco - 2*p.SpanHz
	limHigh := math.Round((fHigh - fvco) / fpd * rampScale)
	limLow := math.Round(float64(uint64(1)<<33) - rampScale*(fvco-fLow)/fpd)
	if !mathx.Between(limHigh, 0, rampLimitMax) || !mathx.Between(limLow, 0, rampLimitMax) {
		return ErrRampLimitRange
	}

	trigA := uint16(trigRisingClk)
	nextTrig := uint16(nextTrigA)
	if p.FreeRun {
		trigA = trigDisabled
		nextTrig = nextTrigTimeout
	}

	// Automatic ramping: manual trigger off, phase reset at start,
	// trigger A per chaining mode, ramp 0 chaining to itself.
	if err := d.Modify(regRampTrig, fldRampManual, 0); err != nil {
		return err
	}
	if err := d.Modify(regRampTrig, fldRampClkSel, 0); err != nil {
		return err
	}
	if err := d.Modify(regRampTrig, fldRamp0Reset, 1); err != nil {
		return err
	}
	if err := d.Modify(regRampTrig, fldRampTrigA, trigA); err != nil {
		return err
	}
	if err := d.Modify(regRamp0Next, fldRamp0Next, 0); err != nil {
		return err
	}
	if err := d.Modify(regRamp0Next, fldRamp0NextTrig, nextTrig); err != nil {
		return err
	}

	// Calibration behaviour around the sweep: no recalibration after
	// the ramp completes, immediate lock indication, delay scale ×2,
	// quick recalibration enabled.
	if err := d.Modify(regRampCal, fldRampRecal, 0); err != nil {
		return err
	}
	if err := d.Modify(regRampCal, fldLockDelay, 0); err != nil {
		return err
	}
	if err := d.Modify(regRampMisc, fldRampScaleCount, 1); err != nil {
		return err
	}
	if err := d.Modify(regRampMisc, fldRampTrigCal, 1); err != nil {
		return err
	}

	// Staged values. The ramp fields carry no write-order constraint
	// between themselves; none take effect until FCAL_EN latches.
	if err := d.writeField33(regRampCal, fldRampThreshTop,
		regRampThreshHigh, regRampThreshLow, uint64(thresh)); err != nil {
		return err
	}
	if err := d.writeField33(regRampLimHighTop, fldRampLimTop,
		regRampLimHighMid, regRampLimHighLow, uint64(limHigh)); err != nil {
		return err
	}
	if err := d.writeField33(regRampLimLowTop, fldRampLimTop,
		regRampLimLowMid, regRampLimLowLow, uint64(limLow)); err != nil {
		return err
	}
	inc30 := uint32(inc)
	if err := d.Modify(regRamp0IncHigh, fldRamp0IncHigh, uint16(inc30>>16)); err != nil {
		return err
	}
	if err := d.Write(regRamp0IncLow, uint16(inc30)); err != nil {
		return err
	}
	return d.Write(regRamp0Len, uint16(rampLen))
}
