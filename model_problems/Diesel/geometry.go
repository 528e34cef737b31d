package Diesel

import (
	"math"

	"github.com/notargets/dieselcycle/utils"
)

// EngineGeometry is immutable, all dimensions are SI (m, m^3)
type EngineGeometry struct {
	bore, stroke     float64
	compressionRatio float64
	rodLength        float64 // zero when the crank mechanism is not modeled
}

func NewEngineGeometry(bore, stroke, compressionRatio float64) (g EngineGeometry, err error) {
	g = EngineGeometry{
		bore:             bore,
		stroke:           stroke,
		compressionRatio: compressionRatio,
	}
	if err = g.validate(); err != nil {
		return EngineGeometry{}, err
	}
	return
}

// WithConnectingRod returns a copy of the geometry carrying a connecting rod of length l,
// which must exceed the crank radius (stroke/2)
func (g EngineGeometry) WithConnectingRod(l float64) (gr EngineGeometry, err error) {
	if err = g.validate(); err != nil {
		return
	}
	if !utils.IsFinite(l) || !(l > 0.5*g.stroke) {
		err = paramErr(ErrInvalidGeometry, "rodLength", l)
		return
	}
	gr = g
	gr.rodLength = l
	return
}

func (g EngineGeometry) validate() error {
	switch {
	case !utils.IsFinite(g.bore) || !(g.bore > 0):
		return paramErr(ErrInvalidGeometry, "bore", g.bore)
	case !utils.IsFinite(g.stroke) || !(g.stroke > 0):
		return paramErr(ErrInvalidGeometry, "stroke", g.stroke)
	case !utils.IsFinite(g.compressionRatio) || !(g.compressionRatio > 1):
		return paramErr(ErrInvalidGeometry, "compressionRatio", g.compressionRatio)
	}
	return nil
}

func (g EngineGeometry) Bore() float64             { return g.bore }
func (g EngineGeometry) Stroke() float64           { return g.stroke }
func (g EngineGeometry) CompressionRatio() float64 { return g.compressionRatio }
func (g EngineGeometry) RodLength() float64        { return g.rodLength }
func (g EngineGeometry) HasConnectingRod() bool    { return g.rodLength > 0 }
func (g EngineGeometry) CrankRadius() float64      { return 0.5 * g.stroke }

func (g EngineGeometry) PistonArea() float64 {
	return 0.25 * math.Pi * g.bore * g.bore
}

// SweptVolume is the displacement between TDC and BDC
func (g EngineGeometry) SweptVolume() float64 {
	return g.PistonArea() * g.stroke
}

// ClearanceVolume is the volume remaining at TDC, Vs/(r-1)
func (g EngineGeometry) ClearanceVolume() float64 {
	return g.SweptVolume() / (g.compressionRatio - 1)
}

// TotalVolume is the volume at BDC
func (g EngineGeometry) TotalVolume() float64 {
	return g.SweptVolume() + g.ClearanceVolume()
}

// InstantaneousVolume is the slider-crank cylinder volume at crank angle theta (radians, 0 = TDC)
func (g EngineGeometry) InstantaneousVolume(theta float64) (V float64, err error) {
	if !g.HasConnectingRod() {
		err = ErrNoConnectingRod
		return
	}
	V = g.ClearanceVolume() + g.PistonArea()*g.pistonTravel(theta)
	return
}

func (g EngineGeometry) pistonTravel(theta float64) (h float64) {
	var (
		R, l   = g.CrankRadius(), g.rodLength
		sin, c = math.Sincos(theta)
	)
	h = l + R - (R*c + math.Sqrt(l*l-R*R*sin*sin))
	return
}

// CrankAngleAtVolume inverts InstantaneousVolume on [0, Pi]
func (g EngineGeometry) CrankAngleAtVolume(V float64) (theta float64, err error) {
	var (
		Vc, V1 = g.ClearanceVolume(), g.TotalVolume()
		R, l   = g.CrankRadius(), g.rodLength
	)
	if !g.HasConnectingRod() {
		err = ErrNoConnectingRod
		return
	}
	if !utils.IsFinite(V) || V < Vc*(1-utils.NODETOL) || V > V1*(1+utils.NODETOL) {
		err = paramErr(ErrVolumeOutOfRange, "volume", V)
		return
	}
	h := math.Min(math.Max((V-Vc)/g.PistonArea(), 0), g.stroke)
	// With a = l+R-h the travel equation reduces to a linear relation in cos(theta)
	a := l + R - h
	c := (a*a - l*l + R*R) / (2 * a * R)
	theta = math.Acos(math.Min(math.Max(c, -1), 1))
	return
}
