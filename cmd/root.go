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
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dieselcycle",
	Short: "Ideal Diesel cycle state points, efficiency and P-V diagrams",
	Long: `
Computes the four state points of the ideal Diesel cycle from engine geometry and
gas properties, reports the cut-off ratio and thermal efficiency, and renders the
P-V diagram.

dieselcycle cycle --compressionRatio 18 --T3 2200 --pvFile pv.png
dieselcycle sweep --compressionRatio 18 --rhoMax 4`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if err = setupLogging(viper.GetString("logLevel")); err != nil {
			return
		}
		if dir := viper.GetString("profile"); dir != "" {
			log.WithField("dir", dir).Info("CPU profiling enabled")
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet)
		}
		return
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	stopProfiler()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// stopProfiler flushes a profile started by --profile, whether or not the command succeeded
func stopProfiler() {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dieselcycle.yaml)")
	rootCmd.PersistentFlags().String("logLevel", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("profile", "", "directory to write a CPU profile into")
	bindFlags("", rootCmd.PersistentFlags(), "logLevel", "profile")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".dieselcycle")
	}
	viper.SetEnvPrefix("DIESEL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		log.WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	} else if cfgFile != "" {
		log.WithError(err).Warn("unable to read config file")
	}
}

func setupLogging(level string) (err error) {
	var lvl log.Level
	if lvl, err = log.ParseLevel(level); err != nil {
		return
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetOutput(os.Stderr)
	return
}
