package Diesel

import (
	"math"

	"github.com/notargets/dieselcycle/utils"
)

// GasState is a thermodynamic state point: pressure (Pa), volume (m^3), temperature (K)
type GasState struct {
	P, V, T float64
}

type heatKind uint8

const (
	heatUnset heatKind = iota
	heatPeakTemperature
	heatCutoffRatio
)

// HeatAddition drives the constant pressure process 2-3, by either the peak
// temperature T3 or the cut-off ratio V3/V2
type HeatAddition struct {
	kind  heatKind
	value float64
}

func PeakTemperature(T3 float64) HeatAddition {
	return HeatAddition{kind: heatPeakTemperature, value: T3}
}

func CutoffRatio(rho float64) HeatAddition {
	return HeatAddition{kind: heatCutoffRatio, value: rho}
}

func (ha HeatAddition) IsPeakTemperature() bool { return ha.kind == heatPeakTemperature }
func (ha HeatAddition) IsCutoffRatio() bool     { return ha.kind == heatCutoffRatio }
func (ha HeatAddition) Value() float64          { return ha.value }

type CycleParameters struct {
	P1, T1 float64 // Pa, K
	Gamma  float64
	Heat   HeatAddition
	// Strict rejects a cycle without heat addition instead of reporting the Otto limit
	Strict bool
}

func (cp CycleParameters) validate() error {
	switch {
	case !utils.IsFinite(cp.P1) || !(cp.P1 > 0):
		return paramErr(ErrInvalidThermalInput, "p1", cp.P1)
	case !utils.IsFinite(cp.T1) || !(cp.T1 > 0):
		return paramErr(ErrInvalidThermalInput, "T1", cp.T1)
	case !utils.IsFinite(cp.Gamma) || !(cp.Gamma > 1):
		return paramErr(ErrInvalidThermalInput, "gamma", cp.Gamma)
	}
	switch cp.Heat.kind {
	case heatPeakTemperature:
		if !utils.IsFinite(cp.Heat.value) || !(cp.Heat.value > 0) {
			return paramErr(ErrInvalidCycleParameters, "T3", cp.Heat.value)
		}
	case heatCutoffRatio:
		if !utils.IsFinite(cp.Heat.value) || !(cp.Heat.value > 0) {
			return paramErr(ErrInvalidCycleParameters, "cutoffRatio", cp.Heat.value)
		}
	default:
		return paramErr(ErrInvalidCycleParameters, "heatAddition", math.NaN())
	}
	return nil
}

// CycleResult holds the four state points and the derived metrics of one cycle evaluation
type CycleResult struct {
	geometry   EngineGeometry
	gamma      float64
	states     [4]GasState
	cutoff     float64
	efficiency float64
	degenerate bool
}

func (cr *CycleResult) Geometry() EngineGeometry { return cr.geometry }
func (cr *CycleResult) Gamma() float64           { return cr.gamma }
func (cr *CycleResult) States() [4]GasState      { return cr.states }
func (cr *CycleResult) CutoffRatio() float64     { return cr.cutoff }
func (cr *CycleResult) Efficiency() float64      { return cr.efficiency }

// Degenerate is true when no heat was added and Efficiency reports the Otto limit
func (cr *CycleResult) Degenerate() bool { return cr.degenerate }

// State returns state point n, numbered 1 through 4
func (cr *CycleResult) State(n int) GasState {
	if n < 1 || n > 4 {
		panic("state number must be between 1 and 4")
	}
	return cr.states[n-1]
}

// OttoLimit is the efficiency the cycle approaches as the cut-off ratio goes to one
func (cr *CycleResult) OttoLimit() float64 {
	return OttoEfficiency(cr.geometry.compressionRatio, cr.gamma)
}

// HeatAdditionCrankAngle is the crank angle (radians after TDC) at which heat addition ends
func (cr *CycleResult) HeatAdditionCrankAngle() (theta float64, err error) {
	return cr.geometry.CrankAngleAtVolume(cr.states[2].V)
}

// Compute evaluates the ideal Diesel cycle in closed form
func Compute(g EngineGeometry, cp CycleParameters) (cr *CycleResult, err error) {
	if err = g.validate(); err != nil {
		return
	}
	if err = cp.validate(); err != nil {
		return
	}
	var (
		r, gamma = g.compressionRatio, cp.Gamma
		Vc, V1   = g.ClearanceVolume(), g.TotalVolume()
		s1       = GasState{P: cp.P1, V: V1, T: cp.T1}
		s2, s3   GasState
		s4       GasState
		rho      float64
	)
	// 1-2 isentropic compression
	s2 = GasState{
		P: s1.P * math.Pow(r, gamma),
		V: Vc,
		T: s1.T * math.Pow(r, gamma-1),
	}
	// 2-3 constant pressure heat addition
	switch {
	case cp.Heat.IsPeakTemperature():
		rho = cp.Heat.value / s2.T
		if rho < 1-utils.NODETOL {
			err = paramErr(ErrInvalidCycleParameters, "T3", cp.Heat.value)
			return
		}
		s3 = GasState{P: s2.P, V: s2.V * rho, T: cp.Heat.value}
	case cp.Heat.IsCutoffRatio():
		rho = cp.Heat.value
		if rho < 1-utils.NODETOL {
			err = paramErr(ErrInvalidCycleParameters, "cutoffRatio", rho)
			return
		}
		s3 = GasState{P: s2.P, V: s2.V * rho, T: s2.T * rho}
	}
	if math.Abs(rho-1) <= utils.NODETOL {
		s3 = s2
	}
	if s3.V > V1*(1+utils.NODETOL) {
		// Expansion would have to compress back down to BDC
		err = paramErr(ErrInvalidCycleParameters, "cutoffRatio", rho)
		return
	}
	// 3-4 isentropic expansion to BDC
	vr := s3.V / V1
	s4 = GasState{
		P: s3.P * math.Pow(vr, gamma),
		V: V1,
		T: s3.T * math.Pow(vr, gamma-1),
	}
	cr = &CycleResult{
		geometry: g,
		gamma:    gamma,
		states:   [4]GasState{s1, s2, s3, s4},
		cutoff:   s3.V / s2.V,
	}
	if cr.efficiency, err = ThermalEfficiency(r, gamma, cr.cutoff, cp.Strict); err != nil {
		return nil, err
	}
	cr.degenerate = math.Abs(cr.cutoff-1) <= utils.NODETOL
	return
}

// ThermalEfficiency of the ideal Diesel cycle for compression ratio r and cut-off ratio rho.
// At rho == 1 the formula is 0/0: strict fails with ErrDegenerateCycle, otherwise the Otto
// limit is returned.
func ThermalEfficiency(r, gamma, rho float64, strict bool) (eta float64, err error) {
	switch {
	case !utils.IsFinite(r) || !(r > 1):
		err = paramErr(ErrInvalidGeometry, "compressionRatio", r)
		return
	case !utils.IsFinite(gamma) || !(gamma > 1):
		err = paramErr(ErrInvalidThermalInput, "gamma", gamma)
		return
	case !utils.IsFinite(rho) || rho < 1-utils.NODETOL:
		err = paramErr(ErrInvalidCycleParameters, "cutoffRatio", rho)
		return
	}
	x := rho - 1
	if math.Abs(x) <= utils.NODETOL {
		if strict {
			err = paramErr(ErrDegenerateCycle, "cutoffRatio", rho)
			return
		}
		eta = OttoEfficiency(r, gamma)
		return
	}
	// (rho^gamma - 1)/(gamma*(rho - 1)) without cancellation as rho -> 1
	ratio := math.Expm1(gamma*math.Log1p(x)) / (gamma * x)
	eta = 1 - ratio/math.Pow(r, gamma-1)
	return
}

// OttoEfficiency is 1 - 1/r^(gamma-1)
func OttoEfficiency(r, gamma float64) float64 {
	return 1 - 1/math.Pow(r, gamma-1)
}
