package Diesel

import (
	"iter"
	"math"

	"github.com/notargets/dieselcycle/types"
)

const DefaultSamples = 100

type Spacing uint8

const (
	SpacingVolume     Spacing = iota // isentropic samples evenly spaced in volume
	SpacingCrankAngle                // isentropic samples evenly spaced in crank angle
)

type Sample struct {
	V, P    float64 // m^3, Pa
	Process types.ProcessFLAG
}

// CurveSampler traces the closed P-V loop 1-2-3-4-1. Each range over All restarts at state 1.
type CurveSampler struct {
	result  *CycleResult
	n       int
	spacing Spacing
	theta3  float64
}

// NewCurveSampler samples each isentropic process with n points, zero selects DefaultSamples
func NewCurveSampler(cr *CycleResult, n int) (cs *CurveSampler, err error) {
	if n == 0 {
		n = DefaultSamples
	}
	if n < 2 {
		err = paramErr(ErrInvalidResolution, "samples", float64(n))
		return
	}
	cs = &CurveSampler{
		result:  cr,
		n:       n,
		spacing: SpacingVolume,
	}
	return
}

// WithCrankAngleSpacing returns a sampler that follows the slider-crank motion, which
// needs a connecting rod on the result's geometry
func (cs *CurveSampler) WithCrankAngleSpacing() (csc *CurveSampler, err error) {
	var theta3 float64
	if theta3, err = cs.result.HeatAdditionCrankAngle(); err != nil {
		return
	}
	csc = &CurveSampler{
		result:  cs.result,
		n:       cs.n,
		spacing: SpacingCrankAngle,
		theta3:  theta3,
	}
	return
}

func (cs *CurveSampler) Resolution() int  { return cs.n }
func (cs *CurveSampler) Spacing() Spacing { return cs.spacing }

// Len is the number of samples in one traversal
func (cs *CurveSampler) Len() int { return 2*cs.n + 4 }

func (cs *CurveSampler) All() iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		var (
			s     = cs.result.states
			gamma = cs.result.gamma
		)
		isentrope := func(pf types.ProcessFLAG, start, end GasState, thetaStart, thetaEnd float64) bool {
			for i := 0; i < cs.n; i++ {
				V := cs.volumeAt(i, start.V, end.V, thetaStart, thetaEnd)
				if !yield(Sample{V: V, P: start.P * math.Pow(start.V/V, gamma), Process: pf}) {
					return false
				}
			}
			return true
		}
		if !isentrope(types.P_Compression, s[0], s[1], math.Pi, 0) {
			return
		}
		if !yield(Sample{V: s[1].V, P: s[1].P, Process: types.P_HeatAddition}) ||
			!yield(Sample{V: s[2].V, P: s[2].P, Process: types.P_HeatAddition}) {
			return
		}
		if !isentrope(types.P_Expansion, s[2], s[3], cs.theta3, math.Pi) {
			return
		}
		if !yield(Sample{V: s[3].V, P: s[3].P, Process: types.P_HeatRejection}) {
			return
		}
		yield(Sample{V: s[0].V, P: s[0].P, Process: types.P_HeatRejection})
	}
}

func (cs *CurveSampler) volumeAt(i int, Vstart, Vend, thetaStart, thetaEnd float64) (V float64) {
	var (
		last = cs.n - 1
		frac = float64(i) / float64(last)
	)
	switch {
	case i == 0:
		return Vstart
	case i == last:
		return Vend
	case cs.spacing == SpacingCrankAngle:
		// The rod was checked when the sampler was built
		V, _ = cs.result.geometry.InstantaneousVolume(thetaStart + frac*(thetaEnd-thetaStart))
		return
	}
	return Vstart + frac*(Vend-Vstart)
}

// Arrays collects one traversal into parallel slices
func (cs *CurveSampler) Arrays() (V, P []float64) {
	V = make([]float64, 0, cs.Len())
	P = make([]float64, 0, cs.Len())
	for s := range cs.All() {
		V = append(V, s.V)
		P = append(P, s.P)
	}
	return
}

// Segment collects the samples of a single process
func (cs *CurveSampler) Segment(pf types.ProcessFLAG) (V, P []float64) {
	for s := range cs.All() {
		if s.Process == pf {
			V = append(V, s.V)
			P = append(P, s.P)
		}
	}
	return
}
