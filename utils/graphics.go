package utils

import (
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

type LineChart struct {
	Chart    *chart2d.Chart2D
	ColorMap *utils2.ColorMap
}

func NewLineChart(width, height int, xmin, xmax, fmin, fmax float64) (lc *LineChart) {
	lc = &LineChart{
		Chart:    chart2d.NewChart2D(width, height, float32(xmin), float32(xmax), float32(fmin), float32(fmax)),
		ColorMap: utils2.NewColorMap(-1, 1, 1),
	}
	go lc.Chart.Plot()
	return
}

func (lc *LineChart) Plot(graphDelay time.Duration, x, f []float64, lineColor float64, lineName string) {
	/*
		lineColor goes from -1 (red) to 1 (blue)
	*/
	lc.addSeries(lineName, x, f, float32(lineColor), chart2d.NoGlyph, chart2d.Solid)
	time.Sleep(graphDelay)
}

// Points adds markers without a connecting line, used for the state points
func (lc *LineChart) Points(x, f []float64, lineColor float64, name string) {
	lc.addSeries(name, x, f, float32(lineColor), chart2d.CrossGlyph, chart2d.NoLine)
}

func (lc *LineChart) addSeries(name string, x, f []float64, color float32,
	gl chart2d.GlyphType, lt chart2d.LineType) {
	if err := lc.Chart.AddSeries(name, x, f,
		gl, lt, lc.ColorMap.GetRGB(color)); err != nil {
		panic("unable to add graph series")
	}
}

func SleepFor(milliseconds int) {
	time.Sleep(time.Duration(milliseconds) * time.Millisecond)
}
