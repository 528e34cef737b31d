package Diesel

import (
	"encoding/csv"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/notargets/dieselcycle/types"
)

var processColors = map[types.ProcessFLAG]color.RGBA{
	types.P_Compression:   {R: 50, G: 0, B: 255, A: 255},
	types.P_HeatAddition:  {R: 255, G: 0, B: 50, A: 255},
	types.P_Expansion:     {R: 25, G: 160, B: 25, A: 255},
	types.P_HeatRejection: {R: 255, G: 165, B: 0, A: 255},
}

// WriteCSV writes one row per sample: process, volume (m^3), pressure (Pa)
func WriteCSV(w io.Writer, cs *CurveSampler) (err error) {
	cw := csv.NewWriter(w)
	if err = cw.Write([]string{"process", "V", "p"}); err != nil {
		return
	}
	for s := range cs.All() {
		row := []string{
			s.Process.Short(),
			fmt.Sprintf("%.9e", s.V),
			fmt.Sprintf("%.9e", s.P),
		}
		if err = cw.Write(row); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}

// PVDiagram builds the P-V figure, pressure in kPa
func PVDiagram(cr *CycleResult, cs *CurveSampler, title string) (p *plot.Plot, err error) {
	p = plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Volume (m^3)"
	p.Y.Label.Text = "Pressure (kPa)"
	p.Add(plotter.NewGrid())
	for _, pf := range types.Processes {
		V, P := cs.Segment(pf)
		var line *plotter.Line
		if line, err = plotter.NewLine(toXYs(V, P, 1.e-3)); err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = processColors[pf]
		p.Add(line)
		p.Legend.Add(pf.String(), line)
	}
	var (
		states = cr.States()
		pts    = make(plotter.XYs, len(states))
		labels = make([]string, len(states))
	)
	for i, s := range states {
		pts[i].X, pts[i].Y = s.V, s.P*1.e-3
		labels[i] = fmt.Sprintf("%d", i+1)
	}
	var (
		scatter *plotter.Scatter
		lbls    *plotter.Labels
	)
	if scatter, err = plotter.NewScatter(pts); err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Radius = vg.Points(3)
	if lbls, err = plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels}); err != nil {
		return nil, err
	}
	lbls.Offset = vg.Point{X: vg.Points(5), Y: vg.Points(5)}
	p.Add(scatter, lbls)
	if lbls, err = summaryLabel(cr); err != nil {
		return nil, err
	}
	p.Add(lbls)
	p.Legend.Top = true
	return
}

// summaryLabel places the efficiency and cut-off ratio inside the diagram, midway along the stroke
func summaryLabel(cr *CycleResult) (lbls *plotter.Labels, err error) {
	s1, s2 := cr.State(1), cr.State(2)
	xy := plotter.XY{X: 0.5 * (s1.V + s2.V), Y: 0.75 * s2.P * 1.e-3}
	txt := fmt.Sprintf("Thermal efficiency = %.2f %%\nCut-off ratio = %.3f", cr.Efficiency()*100, cr.CutoffRatio())
	return plotter.NewLabels(plotter.XYLabels{XYs: plotter.XYs{xy}, Labels: []string{txt}})
}

// SavePVDiagram renders the P-V figure, the format follows the file extension (png, svg, pdf)
func SavePVDiagram(cr *CycleResult, cs *CurveSampler, title, path string) (err error) {
	var p *plot.Plot
	if p, err = PVDiagram(cr, cs, title); err != nil {
		return
	}
	return p.Save(10*vg.Inch, 8*vg.Inch, path)
}

// SaveSweepPlot renders efficiency against cut-off ratio with the Otto limit as a reference line
func SaveSweepPlot(rho, eta []float64, otto float64, path string) (err error) {
	var (
		p          = plot.New()
		line, ref  *plotter.Line
		ottoLine   = plotter.XYs{{X: rho[0], Y: otto}, {X: rho[len(rho)-1], Y: otto}}
		efficiency = toXYs(rho, eta, 1)
	)
	p.Title.Text = "Diesel Cycle Efficiency"
	p.X.Label.Text = "Cut-off Ratio"
	p.Y.Label.Text = "Thermal Efficiency"
	p.Add(plotter.NewGrid())
	if line, err = plotter.NewLine(efficiency); err != nil {
		return
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = processColors[types.P_Compression]
	if ref, err = plotter.NewLine(ottoLine); err != nil {
		return
	}
	ref.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	ref.LineStyle.Color = processColors[types.P_HeatAddition]
	p.Add(line, ref)
	p.Legend.Add("Diesel", line)
	p.Legend.Add("Otto limit", ref)
	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

func toXYs(x, y []float64, yScale float64) (pts plotter.XYs) {
	pts = make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i] * yScale
	}
	return
}
