/*
File: main.go
Description: Command-line interface for tabreport. Provides the report and
inspect commands with configuration management via flags, environment
variables and an optional configuration file.
*/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meridianhealth/tabreport/cmd/tabreport/commands"
)

var (
	// Configuration
	configFile string
	logLevel   string
	logFormat  string
	logColors  bool

	// Input/output configuration
	inputFiles string
	outputDir  string
	format     string

	// Disclosure control configuration
	roundBase         int
	suppressThreshold int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tabreport",
		Short: "tabreport - privacy-safe summary reports for tabular datasets",
		Long: `tabreport generates statistical summary reports for tabular dataset files
(csv, Stata dta, feather): shape, memory footprint, column types, missingness
and disclosure-controlled value distributions. Designed for repeated use
against medical and administrative research extracts, it never exposes raw
record-level data in its output.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&logColors, "log-colors", true, "Colorize text log output")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_colors", rootCmd.PersistentFlags().Lookup("log-colors"))

	// Add report command
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Generate summary reports for matched dataset files",
		Long: `Generate one rendered summary report per input file. Inputs are selected
with a glob pattern; each report is written into the output directory, named
after the input's base name. Frequency counts are rounded and small counts
suppressed before anything is rendered.`,
		RunE: commands.RunReport,
	}

	reportCmd.Flags().StringVar(&inputFiles, "input-files", "", "Glob pattern for matching one or more input files (required)")
	reportCmd.Flags().StringVar(&outputDir, "output-dir", "", "Path to the output directory, must exist (required)")
	reportCmd.Flags().StringVar(&format, "format", "html", "Report format (html, markdown)")
	reportCmd.Flags().IntVar(&roundBase, "round-base", 5, "Round frequency counts to the nearest multiple of this base")
	reportCmd.Flags().IntVar(&suppressThreshold, "suppress-threshold", 5, "Suppress rounded counts at or below this value")

	reportCmd.MarkFlagRequired("input-files")
	reportCmd.MarkFlagRequired("output-dir")

	viper.BindPFlag("input_files", reportCmd.Flags().Lookup("input-files"))
	viper.BindPFlag("output_dir", reportCmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("format", reportCmd.Flags().Lookup("format"))
	viper.BindPFlag("round_base", reportCmd.Flags().Lookup("round-base"))
	viper.BindPFlag("suppress_threshold", reportCmd.Flags().Lookup("suppress-threshold"))

	rootCmd.AddCommand(reportCmd)

	// Add inspect command
	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print table summaries to stdout without writing reports",
		RunE:  commands.RunInspect,
	}

	inspectCmd.Flags().String("input-files", "", "Glob pattern for matching one or more input files (required)")
	inspectCmd.MarkFlagRequired("input-files")
	viper.BindPFlag("inspect.input_files", inspectCmd.Flags().Lookup("input-files"))

	rootCmd.AddCommand(inspectCmd)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
