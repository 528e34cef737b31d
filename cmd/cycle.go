/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/dieselcycle/InputParameters"
	"github.com/notargets/dieselcycle/model_problems/Diesel"
	"github.com/notargets/dieselcycle/types"
	"github.com/notargets/dieselcycle/utils"
)

type ModelCycle struct {
	InputFile string
	PVFile    string
	CSVFile   string
	Graph     bool
	Delay     time.Duration
}

// CycleCmd represents the cycle command
var CycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Ideal Diesel cycle state points, efficiency and P-V diagram",
	Long: `
Computes the four state points of the ideal Diesel cycle, the cut-off ratio and the
thermal efficiency. Parameters come from the flags, DIESEL_CYCLE_* environment
variables, the config file, or a YAML input file (-I), in that order of precedence.

dieselcycle cycle -I engine.yaml --pvFile pv.png`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		mc := &ModelCycle{}
		mc.InputFile, _ = cmd.Flags().GetString("inputFile")
		mc.PVFile, _ = cmd.Flags().GetString("pvFile")
		mc.CSVFile, _ = cmd.Flags().GetString("csvFile")
		mc.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		mc.Delay = time.Duration(dr) * time.Millisecond
		var ip *InputParameters.CycleInput
		if ip, err = loadCycleInput(viper.GetViper(), mc.InputFile); err != nil {
			return
		}
		ip.Print()
		return RunCycle(mc, ip, os.Stdout)
	},
}

var cycleKeys = []string{
	"title", "bore", "stroke", "rodLength", "compressionRatio", "p1", "T1", "T3",
	"cutoffRatio", "gamma", "strict", "samples", "crankSpacing",
}

func init() {
	rootCmd.AddCommand(CycleCmd)
	def := InputParameters.NewCycleInput()
	CycleCmd.Flags().StringP("inputFile", "I", "", "YAML file for input parameters like:\n\t- Bore, Stroke, CompressionRatio\n\t- P1 (kPa), T1, T3")
	CycleCmd.Flags().String("title", def.Title, "title of the P-V diagram")
	CycleCmd.Flags().Float64("bore", def.Bore, "cylinder bore (m)")
	CycleCmd.Flags().Float64("stroke", def.Stroke, "piston stroke (m)")
	CycleCmd.Flags().Float64("rodLength", def.RodLength, "connecting rod length (m), 0 disables the crank model")
	CycleCmd.Flags().Float64("compressionRatio", def.CompressionRatio, "compression ratio V1/V2")
	CycleCmd.Flags().Float64("p1", def.P1, "pressure at BDC, start of compression (kPa)")
	CycleCmd.Flags().Float64("T1", def.T1, "temperature at BDC, start of compression (K)")
	CycleCmd.Flags().Float64("T3", def.T3, "peak temperature, end of heat addition (K)")
	CycleCmd.Flags().Float64("cutoffRatio", 0, "cut-off ratio V3/V2, replaces T3")
	CycleCmd.Flags().Float64("gamma", def.Gamma, "specific heat ratio cp/cv")
	CycleCmd.Flags().Bool("strict", false, "fail on a cycle without heat addition instead of reporting the Otto limit")
	CycleCmd.Flags().IntP("samples", "n", def.Samples, "samples along each isentropic process")
	CycleCmd.Flags().Bool("crankSpacing", false, "space the isentropic samples by crank angle instead of volume")
	CycleCmd.Flags().String("pvFile", "", "write the P-V diagram to this file (.png, .svg, .pdf)")
	CycleCmd.Flags().String("csvFile", "", "write the P-V samples to this CSV file")
	CycleCmd.Flags().BoolP("graph", "g", false, "display the P-V diagram in an interactive chart")
	CycleCmd.Flags().IntP("delay", "d", 0, "milliseconds to keep the chart open, 0 waits for interrupt")
	bindFlags("cycle.", CycleCmd.Flags(), cycleKeys...)
}

func bindFlags(prefix string, fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if err := viper.BindPFlag(prefix+name, fs.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// loadCycleInput starts from the defaults, applies the input file, then any value set through viper
func loadCycleInput(v *viper.Viper, inputFile string) (ip *InputParameters.CycleInput, err error) {
	ip = InputParameters.NewCycleInput()
	if len(inputFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(inputFile); err != nil {
			return nil, err
		}
		if err = ip.Parse(data); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", inputFile, err)
		}
	}
	var (
		isSet = func(key string) bool { return v.IsSet("cycle." + key) }
		f64   = func(key string, dst *float64) {
			if isSet(key) {
				*dst = v.GetFloat64("cycle." + key)
			}
		}
	)
	if isSet("title") {
		ip.Title = v.GetString("cycle.title")
	}
	f64("bore", &ip.Bore)
	f64("stroke", &ip.Stroke)
	f64("rodLength", &ip.RodLength)
	f64("compressionRatio", &ip.CompressionRatio)
	f64("p1", &ip.P1)
	f64("T1", &ip.T1)
	f64("T3", &ip.T3)
	f64("cutoffRatio", &ip.CutoffRatio)
	f64("gamma", &ip.Gamma)
	if isSet("strict") {
		ip.Strict = v.GetBool("cycle.strict")
	}
	if isSet("samples") {
		ip.Samples = v.GetInt("cycle.samples")
	}
	if isSet("crankSpacing") {
		ip.CrankSpacing = v.GetBool("cycle.crankSpacing")
	}
	// Naming one cut-off driver explicitly drops the other one inherited from defaults or the file
	switch {
	case isSet("cutoffRatio") && !isSet("T3"):
		ip.T3 = 0
	case isSet("T3") && !isSet("cutoffRatio"):
		ip.CutoffRatio = 0
	}
	return
}

func RunCycle(mc *ModelCycle, ip *InputParameters.CycleInput, w io.Writer) (err error) {
	var (
		g  Diesel.EngineGeometry
		cp Diesel.CycleParameters
		cr *Diesel.CycleResult
		cs *Diesel.CurveSampler
	)
	if g, err = ip.Geometry(); err != nil {
		return
	}
	if cp, err = ip.CycleParameters(); err != nil {
		return
	}
	if cr, err = Diesel.Compute(g, cp); err != nil {
		return
	}
	log.WithFields(log.Fields{
		"cutoffRatio": cr.CutoffRatio(),
		"efficiency":  cr.Efficiency(),
		"degenerate":  cr.Degenerate(),
	}).Debug("cycle computed")
	if cr.Degenerate() {
		log.Warn("no heat addition, efficiency is the Otto cycle limit")
	}
	Report(w, cr)
	if cs, err = Diesel.NewCurveSampler(cr, ip.Samples); err != nil {
		return
	}
	if ip.CrankSpacing {
		if cs, err = cs.WithCrankAngleSpacing(); err != nil {
			return
		}
	}
	if mc.PVFile != "" {
		if err = Diesel.SavePVDiagram(cr, cs, ip.Title, mc.PVFile); err != nil {
			return
		}
		log.WithField("file", mc.PVFile).Info("wrote P-V diagram")
	}
	if mc.CSVFile != "" {
		if err = writeCSVFile(mc.CSVFile, cs); err != nil {
			return
		}
		log.WithField("file", mc.CSVFile).Info("wrote P-V samples")
	}
	if mc.Graph {
		PlotCycle(cr, cs, mc.Delay)
	}
	return
}

func writeCSVFile(path string, cs *Diesel.CurveSampler) (err error) {
	var f *os.File
	if f, err = os.Create(path); err != nil {
		return
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Diesel.WriteCSV(f, cs)
}

// Report prints the state table in kPa, cm^3 and K followed by the cycle metrics
func Report(w io.Writer, cr *Diesel.CycleResult) {
	var (
		g   = cr.Geometry()
		bar = "=================================================="
	)
	fmt.Fprintf(w, "\n%s\nDIESEL CYCLE ANALYSIS RESULTS\n%s\n", bar, bar)
	fmt.Fprintf(w, "Swept Volume:       %10.2f cm^3\n", g.SweptVolume()*1.e6)
	fmt.Fprintf(w, "Clearance Volume:   %10.2f cm^3\n", g.ClearanceVolume()*1.e6)
	fmt.Fprintf(w, "Cut-off Ratio:      %10.4f\n", cr.CutoffRatio())
	fmt.Fprintf(w, "Thermal Efficiency: %10.2f %%\n", cr.Efficiency()*100)
	fmt.Fprintf(w, "Otto Limit:         %10.2f %%\n", cr.OttoLimit()*100)
	if g.HasConnectingRod() {
		if theta, err := cr.HeatAdditionCrankAngle(); err == nil {
			fmt.Fprintf(w, "End of Combustion:  %10.1f deg after TDC\n", utils.Deg(theta))
		}
	}
	fmt.Fprintf(w, "%s\n%-8s %-16s %-16s %-16s\n%s\n", bar,
		"State", "Pressure (kPa)", "Volume (cm^3)", "Temperature (K)", bar)
	for i, s := range cr.States() {
		fmt.Fprintf(w, "%-8d %-16.1f %-16.2f %-16.1f\n", i+1, s.P*1.e-3, s.V*1.e6, s.T)
	}
	fmt.Fprintln(w, bar)
}

// PlotCycle shows the P-V loop in an interactive chart, pressure in kPa
func PlotCycle(cr *Diesel.CycleResult, cs *Diesel.CurveSampler, delay time.Duration) {
	var (
		V, P   = cs.Arrays()
		colors = map[types.ProcessFLAG]float64{
			types.P_Compression:   1,
			types.P_HeatAddition:  -1,
			types.P_Expansion:     0.3,
			types.P_HeatRejection: -0.4,
		}
	)
	floats.Scale(1.e-3, P)
	lc := utils.NewLineChart(1920, 1280,
		0, 1.05*floats.Max(V), 0, 1.05*floats.Max(P))
	for _, pf := range types.Processes {
		Vs, Ps := cs.Segment(pf)
		floats.Scale(1.e-3, Ps)
		lc.Plot(0, Vs, Ps, colors[pf], pf.String())
	}
	var (
		states = cr.States()
		Vst    = make([]float64, len(states))
		Pst    = make([]float64, len(states))
	)
	for i, s := range states {
		Vst[i], Pst[i] = s.V, s.P*1.e-3
	}
	lc.Points(Vst, Pst, 0, "State Points")
	if delay > 0 {
		utils.SleepFor(int(delay.Milliseconds()))
		return
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-ctx.Done()
}
