package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "icslogpump",
	Short: "ICSLogPump converts proprietary ICS .vc0 device logs",
	Long: `ICSLogPump recovers structured records from proprietary
industrial-control-system .vc0 log containers, enriches message codes
from a mapping table, and writes the result as CSV (batch mode) or pumps
it into ClickHouse (watch mode).`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initViper)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML)")
}

// initViper wires environment overrides: ICSLOGPUMP_INPUT and friends
// stand in for flags in containerized deployments.
func initViper() {
	viper.SetEnvPrefix("ICSLOGPUMP")
	viper.AutomaticEnv()
}
