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
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/dieselcycle/model_problems/Diesel"
)

type ModelSweep struct {
	CompressionRatio, Gamma float64
	RhoMin, RhoMax          float64
	N                       int
	PlotFile                string
}

// SweepCmd represents the sweep command
var SweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Thermal efficiency over a range of cut-off ratios",
	Long: `
Evaluates the ideal Diesel cycle efficiency for evenly spaced cut-off ratios at a fixed
compression ratio, alongside the Otto cycle limit.

dieselcycle sweep --compressionRatio 18 --rhoMin 1 --rhoMax 4 --plotFile sweep.png`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		ms := &ModelSweep{
			CompressionRatio: viper.GetFloat64("sweep.compressionRatio"),
			Gamma:            viper.GetFloat64("sweep.gamma"),
			RhoMin:           viper.GetFloat64("sweep.rhoMin"),
			RhoMax:           viper.GetFloat64("sweep.rhoMax"),
			N:                viper.GetInt("sweep.samples"),
			PlotFile:         viper.GetString("sweep.plotFile"),
		}
		return RunSweep(ms, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(SweepCmd)
	SweepCmd.Flags().Float64("compressionRatio", 18, "compression ratio V1/V2")
	SweepCmd.Flags().Float64("gamma", 1.4, "specific heat ratio cp/cv")
	SweepCmd.Flags().Float64("rhoMin", 1, "smallest cut-off ratio")
	SweepCmd.Flags().Float64("rhoMax", 4, "largest cut-off ratio")
	SweepCmd.Flags().IntP("samples", "n", 31, "number of cut-off ratios")
	SweepCmd.Flags().String("plotFile", "", "write the efficiency plot to this file (.png, .svg, .pdf)")
	bindFlags("sweep.", SweepCmd.Flags(), "compressionRatio", "gamma", "rhoMin", "rhoMax", "samples", "plotFile")
}

func RunSweep(ms *ModelSweep, w io.Writer) (err error) {
	var (
		rho, eta []float64
		otto     = Diesel.OttoEfficiency(ms.CompressionRatio, ms.Gamma)
	)
	log.WithFields(log.Fields{
		"compressionRatio": ms.CompressionRatio,
		"gamma":            ms.Gamma,
		"samples":          ms.N,
	}).Debug("efficiency sweep")
	if rho, eta, err = Diesel.EfficiencySweep(ms.CompressionRatio, ms.Gamma, ms.RhoMin, ms.RhoMax, ms.N); err != nil {
		return
	}
	fmt.Fprintf(w, "%-14s %-14s\n", "Cut-off Ratio", "Efficiency (%)")
	for i := range rho {
		fmt.Fprintf(w, "%-14.4f %-14.3f\n", rho[i], eta[i]*100)
	}
	fmt.Fprintf(w, "Otto limit at r = %g: %.3f %%\n", ms.CompressionRatio, otto*100)
	if ms.PlotFile != "" {
		if err = Diesel.SaveSweepPlot(rho, eta, otto, ms.PlotFile); err != nil {
			return
		}
		log.WithField("file", ms.PlotFile).Info("wrote efficiency plot")
	}
	return
}
