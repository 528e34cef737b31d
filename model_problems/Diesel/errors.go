package Diesel

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGeometry        = errors.New("invalid engine geometry")
	ErrInvalidThermalInput    = errors.New("invalid thermal input")
	ErrInvalidCycleParameters = errors.New("invalid cycle parameters")
	ErrDegenerateCycle        = errors.New("degenerate cycle, no heat addition")
	ErrInvalidResolution      = errors.New("invalid sample resolution")
	ErrNoConnectingRod        = errors.New("geometry has no connecting rod length")
	ErrVolumeOutOfRange       = errors.New("volume outside the swept range")
)

// ParameterError names the input that failed a precondition, Err is one of the sentinels above
type ParameterError struct {
	Param string
	Value float64
	Err   error
}

func (pe *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s = %g", pe.Err.Error(), pe.Param, pe.Value)
}

func (pe *ParameterError) Unwrap() error { return pe.Err }

func paramErr(sentinel error, param string, value float64) error {
	return &ParameterError{Param: param, Value: value, Err: sentinel}
}
