package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"ICSLogPump/config"
	"ICSLogPump/converter"
	"ICSLogPump/logger"
	"ICSLogPump/mapping"
)

var (
	inputDir  string
	outputDir string
	mapFile   string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a directory of .vc0 files to CSV",
	Long: `Convert processes every eligible .vc0 file in the input directory
(lock files with the "lck." prefix are ignored) and writes one CSV file
per input into the output directory. Message codes are enriched from the
mapping table when one is supplied.

Examples:
  icslogpump convert --input /evidence/logs --output /case/csv --mapfile codes.csv
  icslogpump convert -c config.yaml`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&inputDir, "input", "", "directory containing .vc0 files")
	convertCmd.Flags().StringVar(&outputDir, "output", "", "directory to save .csv files")
	convertCmd.Flags().StringVar(&mapFile, "mapfile", "", "CSV file mapping [MessageCode, MessageType, Description]")
}

func runConvert(cmd *cobra.Command, args []string) error {
	logging := config.LoggingConfig{}

	// Flags win over config file, config file over environment.
	in, out, mf := inputDir, outputDir, mapFile
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		logging = cfg.Logging
		if in == "" {
			in = cfg.InputDir
		}
		if out == "" {
			out = cfg.OutputDir
		}
		if mf == "" {
			mf = cfg.MapFile
		}
	}
	if in == "" {
		in = viper.GetString("input")
	}
	if out == "" {
		out = viper.GetString("output")
	}
	if mf == "" {
		mf = viper.GetString("mapfile")
	}
	if in == "" || out == "" {
		return fmt.Errorf("--input and --output are required (flags, config file or ICSLOGPUMP_* env)")
	}

	lg, err := logger.InitZap(&logging)
	if err != nil {
		return err
	}
	defer lg.Sync()
	lg = lg.Named("convert")

	m := mapping.Map{}
	if mf != "" {
		m = mapping.Load(mf, lg.Named("mapping"))
		lg.Info("message map loaded", zap.Int("codes", len(m)))
	} else {
		lg.Warn("no mapping table supplied, records will not be enriched")
	}

	return converter.Run(in, out, m, lg)
}
