package Diesel

import (
	"gonum.org/v1/gonum/floats"
)

// EfficiencySweep evaluates the thermal efficiency at n cut-off ratios evenly spaced on
// [rhoMin, rhoMax], for fixed compression ratio and gamma
func EfficiencySweep(r, gamma, rhoMin, rhoMax float64, n int) (rho, eta []float64, err error) {
	if n < 2 {
		err = paramErr(ErrInvalidResolution, "n", float64(n))
		return
	}
	if !(rhoMax > rhoMin) {
		err = paramErr(ErrInvalidCycleParameters, "rhoMax", rhoMax)
		return
	}
	rho = floats.Span(make([]float64, n), rhoMin, rhoMax)
	eta = make([]float64, n)
	for i, rh := range rho {
		if eta[i], err = ThermalEfficiency(r, gamma, rh, false); err != nil {
			return nil, nil, err
		}
	}
	return
}
