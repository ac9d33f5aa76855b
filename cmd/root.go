// Package cmd is for command line interactions with the svalign application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chungtseng/manta/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:          "svalign",
	Short:        "Align reads against reference windows around structural variant breakpoints",
	Version:      "0.1.0",
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file with scoring, threads and min-identity")
}

// initConfig reads in the settings file if one was given
func initConfig() {
	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("unable to read settings file %s, %v", cfgFile, err)
	}
}
