package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/dieselcycle/model_problems/Diesel"
)

// Parameters obtained from the YAML input file, pressure in kPa. ghodss/yaml goes through
// encoding/json, so the keys are bound with json tags
type CycleInput struct {
	Title            string  `json:"Title"`
	Bore             float64 `json:"Bore"`
	Stroke           float64 `json:"Stroke"`
	RodLength        float64 `json:"RodLength"`
	CompressionRatio float64 `json:"CompressionRatio"`
	P1               float64 `json:"P1"`
	T1               float64 `json:"T1"`
	T3               float64 `json:"T3"`
	CutoffRatio      float64 `json:"CutoffRatio"`
	Gamma            float64 `json:"Gamma"`
	Strict           bool    `json:"Strict"`
	Samples          int     `json:"Samples"`
	CrankSpacing     bool    `json:"CrankSpacing"`
}

// NewCycleInput carries the defaults of the demonstration engine
func NewCycleInput() *CycleInput {
	return &CycleInput{
		Title:            "Diesel Cycle P-V Diagram",
		Bore:             0.1,
		Stroke:           0.1,
		RodLength:        0.15,
		CompressionRatio: 18,
		P1:               101.3,
		T1:               300,
		T3:               2200,
		Gamma:            1.4,
		Samples:          Diesel.DefaultSamples,
	}
}

func (ip *CycleInput) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *CycleInput) Print() {
	fmt.Printf("\"%s\"\t= Title\n", ip.Title)
	fmt.Printf("%8.1f\t\t= Bore (mm)\n", ip.Bore*1000)
	fmt.Printf("%8.1f\t\t= Stroke (mm)\n", ip.Stroke*1000)
	if ip.RodLength > 0 {
		fmt.Printf("%8.1f\t\t= Connecting Rod (mm)\n", ip.RodLength*1000)
	}
	fmt.Printf("%8.2f\t\t= Compression Ratio\n", ip.CompressionRatio)
	fmt.Printf("%8.2f\t\t= P1 (kPa)\n", ip.P1)
	fmt.Printf("%8.2f\t\t= T1 (K)\n", ip.T1)
	if ip.CutoffRatio != 0 {
		fmt.Printf("%8.4f\t\t= Cut-off Ratio\n", ip.CutoffRatio)
	} else {
		fmt.Printf("%8.2f\t\t= T3 (K)\n", ip.T3)
	}
	fmt.Printf("%8.4f\t\t= Gamma\n", ip.Gamma)
	fmt.Printf("[%v]\t\t\t= Strict\n", ip.Strict)
	fmt.Printf("[%d]\t\t\t= Samples\n", ip.Samples)
}

// HeatAddition requires exactly one of T3 and CutoffRatio to be set
func (ip *CycleInput) HeatAddition() (ha Diesel.HeatAddition, err error) {
	switch {
	case ip.T3 != 0 && ip.CutoffRatio != 0:
		err = fmt.Errorf("%w: only one of T3 and CutoffRatio may be set", Diesel.ErrInvalidCycleParameters)
	case ip.CutoffRatio != 0:
		ha = Diesel.CutoffRatio(ip.CutoffRatio)
	case ip.T3 != 0:
		ha = Diesel.PeakTemperature(ip.T3)
	default:
		err = fmt.Errorf("%w: one of T3 or CutoffRatio is required", Diesel.ErrInvalidCycleParameters)
	}
	return
}

func (ip *CycleInput) Geometry() (g Diesel.EngineGeometry, err error) {
	if g, err = Diesel.NewEngineGeometry(ip.Bore, ip.Stroke, ip.CompressionRatio); err != nil {
		return
	}
	if ip.RodLength != 0 {
		g, err = g.WithConnectingRod(ip.RodLength)
	}
	return
}

// CycleParameters converts P1 from kPa to Pa
func (ip *CycleInput) CycleParameters() (cp Diesel.CycleParameters, err error) {
	var ha Diesel.HeatAddition
	if ha, err = ip.HeatAddition(); err != nil {
		return
	}
	cp = Diesel.CycleParameters{
		P1:     ip.P1 * 1.e3,
		T1:     ip.T1,
		Gamma:  ip.Gamma,
		Heat:   ha,
		Strict: ip.Strict,
	}
	return
}
