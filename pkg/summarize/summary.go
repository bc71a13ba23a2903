/*
File: summary.go
Description: Table-level and column-level summaries. The table summary carries
memory footprint, storage type and missingness per column. Column summaries
are disclosure-controlled frequency distributions, produced only for columns
that classify as boolean-like and never for the row identifier.
*/

package summarize

import (
	"github.com/meridianhealth/tabreport/pkg/classify"
	"github.com/meridianhealth/tabreport/pkg/disclosure"
	"github.com/meridianhealth/tabreport/pkg/frame"
)

// patientIDColumn is the hard-coded privacy exemption: the row identifier is
// never frequency-counted, whatever its values look like.
const patientIDColumn = "patient_id"

// ColumnStats is one row of a table summary.
type ColumnStats struct {
	Name           string
	SizeMB         float64
	Storage        string
	MissingCount   int
	MissingPercent float64
}

// TableSummary describes the shape of one input table.
type TableSummary struct {
	Source  string
	Rows    int
	Columns []ColumnStats
}

// ColumnSummary is a frequency distribution attached to a column name.
type ColumnSummary struct {
	Name string
	Dist Distribution
}

// SummarizeTable computes per-column memory footprint (decimal megabytes),
// storage type label and missingness. Pure: the input table is not touched.
func SummarizeTable(tbl *frame.Table) TableSummary {
	summary := TableSummary{
		Source: tbl.Source(),
		Rows:   tbl.Rows(),
	}

	for _, col := range tbl.Columns() {
		missing := col.CountMissing()
		stats := ColumnStats{
			Name:         col.Name(),
			SizeMB:       float64(col.SizeBytes()) / 1_000_000,
			Storage:      col.Storage().String(),
			MissingCount: missing,
		}
		if tbl.Rows() > 0 {
			stats.MissingPercent = float64(missing) / float64(tbl.Rows()) * 100
		}
		summary.Columns = append(summary.Columns, stats)
	}

	return summary
}

// SummarizeColumns computes a normalized, disclosure-controlled frequency
// distribution for every qualifying column, in table order. A column
// qualifies through one of two passes: naturally boolean storage, or an
// integer-encoded boolean. The passes are disjoint, so no column is counted
// twice. The column literally named patient_id is skipped unconditionally.
func SummarizeColumns(tbl *frame.Table, policy disclosure.Policy) []ColumnSummary {
	var out []ColumnSummary

	for _, col := range tbl.Columns() {
		if col.Name() == patientIDColumn {
			continue
		}

		var qualifies bool
		if col.Storage() == frame.Bool {
			qualifies = classify.IsBoolean(col)
		} else {
			qualifies = classify.IsBoolAsInt(col)
		}
		if !qualifies {
			continue
		}

		dist := CountValues(col, CountOptions{
			Normalize: true,
			Policy:    policy,
		})
		out = append(out, ColumnSummary{Name: col.Name(), Dist: dist})
	}

	return out
}
