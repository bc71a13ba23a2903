/*
File: report.go
Description: Report command implementation for tabreport. Resolves the input
glob, loads each tabular file, computes disclosure-controlled summaries and
writes one rendered report per input into the output directory.
*/

package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meridianhealth/tabreport/pkg/disclosure"
	"github.com/meridianhealth/tabreport/pkg/ingest"
	"github.com/meridianhealth/tabreport/pkg/logging"
	"github.com/meridianhealth/tabreport/pkg/reporting"
	"github.com/meridianhealth/tabreport/pkg/summarize"
)

// ReportConfig contains the configuration for one report run.
type ReportConfig struct {
	InputGlob string
	OutputDir string
	Format    reporting.Format
	Policy    disclosure.Policy
}

func parseReportConfig() ReportConfig {
	return ReportConfig{
		InputGlob: viper.GetString("input_files"),
		OutputDir: viper.GetString("output_dir"),
		Format:    reporting.Format(viper.GetString("format")),
		Policy: disclosure.Policy{
			Base:      viper.GetInt("round_base"),
			Threshold: viper.GetInt("suppress_threshold"),
		},
	}
}

// RunReport executes the batch report generation.
func RunReport(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := NewLogger()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	config := parseReportConfig()
	if err := config.Policy.Validate(); err != nil {
		return err
	}

	// One policy and one run ID for every input in the batch.
	runID := uuid.New().String()
	logger.LogPolicy(config.Policy.Base, config.Policy.Threshold, runID)

	generator, err := reporting.NewGenerator(config.OutputDir, config.Format, logger.GetLogger())
	if err != nil {
		return err
	}

	paths, err := filepath.Glob(config.InputGlob)
	if err != nil {
		return fmt.Errorf("invalid input glob %q: %w", config.InputGlob, err)
	}
	if len(paths) == 0 {
		logger.Info("No inputs matched the glob, nothing to do",
			map[string]interface{}{"glob": config.InputGlob})
		return nil
	}

	for _, path := range paths {
		// A failed input aborts the whole run; batches are rerun from
		// scratch rather than partially skipped.
		if err := reportOne(path, config, generator, runID, logger); err != nil {
			return fmt.Errorf("failed to process %s: %w", path, err)
		}
	}

	return nil
}

func reportOne(path string, config ReportConfig, generator *reporting.Generator, runID string, logger *logging.Logger) error {
	tbl, err := ingest.ReadTable(path)
	if err != nil {
		return err
	}
	logger.LogTableRead(path, tbl.Rows(), tbl.NumColumns())

	data := reporting.ReportData{
		Name:        ingest.BaseName(path),
		Source:      path,
		GeneratedAt: time.Now(),
		RunID:       runID,
		Table:       summarize.SummarizeTable(tbl),
		Columns:     summarize.SummarizeColumns(tbl, config.Policy),
	}

	_, err = generator.Write(data)
	return err
}
