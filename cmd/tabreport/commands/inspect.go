/*
File: inspect.go
Description: Inspect command implementation for tabreport. Prints the table
summary of each matched input to stdout without writing report files. Useful
for a quick look at the shape of an extract before generating reports.
*/

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meridianhealth/tabreport/pkg/ingest"
	"github.com/meridianhealth/tabreport/pkg/summarize"
)

// RunInspect prints table summaries for every input matched by the glob.
func RunInspect(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := NewLogger()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	glob := viper.GetString("inspect.input_files")
	paths, err := filepath.Glob(glob)
	if err != nil {
		return fmt.Errorf("invalid input glob %q: %w", glob, err)
	}
	if len(paths) == 0 {
		logger.Info("No inputs matched the glob, nothing to do",
			map[string]interface{}{"glob": glob})
		return nil
	}

	for _, path := range paths {
		tbl, err := ingest.ReadTable(path)
		if err != nil {
			return fmt.Errorf("failed to process %s: %w", path, err)
		}
		logger.LogTableRead(path, tbl.Rows(), tbl.NumColumns())
		printTableSummary(summarize.SummarizeTable(tbl))
	}

	return nil
}

func printTableSummary(summary summarize.TableSummary) {
	fmt.Printf("\n%s (%d rows)\n", summary.Source, summary.Rows)

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COLUMN\tSIZE (MB)\tTYPE\tMISSING\tMISSING %")
	for _, col := range summary.Columns {
		fmt.Fprintf(w, "%s\t%.6f\t%s\t%d\t%.1f\n",
			col.Name, col.SizeMB, col.Storage, col.MissingCount, col.MissingPercent)
	}
	w.Flush()
}
