package lmx2492

import "errors"

// Sentinel errors (TinyGo-safe; no fmt). All parameter validation
// fails before any bus transaction is issued.
var (
	ErrInvalidAddress     = errors.New("lmx2492: register address out of range")
	ErrReadbackLocked     = errors.New("lmx2492: readback not unlocked")
	ErrCalibrationEnabled = errors.New("lmx2492: FCAL_EN must be 0 while staging ramp registers")

	ErrRampLenRange   = errors.New("lmx2492: ramp length exceeds 16 bits")
	ErrRampIncRange   = errors.New("lmx2492: ramp increment exceeds 30 bits")
	ErrThreshRange    = errors.New("lmx2492: recalibration threshold exceeds 29 bits")
	ErrRampLimitRange = errors.New("lmx2492: ramp limit exceeds 33 bits")

	ErrFieldRange  = errors.New("lmx2492: value exceeds field width")
	ErrPowerRange  = errors.New("lmx2492: output power code exceeds 6 bits")
	ErrZeroDivider = errors.New("lmx2492: reference path divider must be non-zero")
)
