/*
File: generator_test.go
Description: Tests for the report assembler: Markdown body shape, suppressed
and missing cell rendering, HTML page wrapping, and output file naming.
*/

package reporting

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhealth/tabreport/pkg/summarize"
)

func sampleData() ReportData {
	return ReportData{
		Name:        "input",
		Source:      "output/input.csv",
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		RunID:       "a3c9e2f0-run-id",
		Table: summarize.TableSummary{
			Source: "output/input.csv",
			Rows:   19,
			Columns: []summarize.ColumnStats{
				{Name: "patient_id", SizeMB: 0.000152, Storage: "float", MissingCount: 0, MissingPercent: 0},
				{Name: "has_sbp_event", SizeMB: 0.000152, Storage: "float", MissingCount: 8, MissingPercent: 42.1},
			},
		},
		Columns: []summarize.ColumnSummary{
			{
				Name: "has_sbp_event",
				Dist: summarize.Distribution{
					Normalized: true,
					Cells: []summarize.Cell{
						{Key: summarize.MissingKey, Count: 10, Percentage: 100},
						{Key: summarize.NumKey(0), Suppressed: true},
						{Key: summarize.NumKey(1), Suppressed: true},
					},
				},
			},
		},
	}
}

// TestBuildMarkdown checks the body: headings, the table summary, and the
// distribution rows with the missing bucket first and suppressed cells
// rendered loudly rather than as zeros.
func TestBuildMarkdown(t *testing.T) {
	body := buildMarkdown(sampleData())

	assert.Contains(t, body, "# Dataset report: output/input.csv")
	assert.Contains(t, body, "Rows: 19")
	assert.Contains(t, body, "| Column Name | Size (MB) | Data Type | Missing Count | Missing (%) |")
	assert.Contains(t, body, "| patient_id |")
	assert.Contains(t, body, "### has_sbp_event")
	assert.Contains(t, body, "| [missing] | 10 | 100.0 |")
	assert.Contains(t, body, "| 0 | [REDACTED] | [REDACTED] |")
	assert.NotContains(t, body, "| 0 | 0 |", "suppressed cells must not render as zero")
}

// TestWriteMarkdownReport checks file naming and contents for the Markdown
// format.
func TestWriteMarkdownReport(t *testing.T) {
	dir := t.TempDir()
	gen, err := NewGenerator(dir, FormatMarkdown, logrus.New())
	require.NoError(t, err)

	path, err := gen.Write(sampleData())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "input.md"), path)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "### has_sbp_event")
}

// TestWriteHTMLReport checks that the HTML format embeds the converted tables
// and the run footer.
func TestWriteHTMLReport(t *testing.T) {
	dir := t.TempDir()
	gen, err := NewGenerator(dir, FormatHTML, logrus.New())
	require.NoError(t, err)

	path, err := gen.Write(sampleData())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "input.html"), path)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(contents)

	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "has_sbp_event")
	assert.Contains(t, html, "[REDACTED]")
	assert.Contains(t, html, "a3c9e2f0-run-id")
	assert.Contains(t, html, "<!DOCTYPE html>")
}

// TestNewGeneratorValidation checks the constructor guards: the output
// directory must exist, and only the two formats are accepted.
func TestNewGeneratorValidation(t *testing.T) {
	_, err := NewGenerator(filepath.Join(t.TempDir(), "absent"), FormatHTML, logrus.New())
	assert.Error(t, err, "the output directory is never created by the generator")

	_, err = NewGenerator(t.TempDir(), Format("pdf"), logrus.New())
	assert.Error(t, err)
}
