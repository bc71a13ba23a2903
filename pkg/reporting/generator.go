/*
File: generator.go
Description: Report assembler for tabreport. Receives computed table and
column summaries and renders one report file per input, either as a Markdown
document or as an HTML page (the Markdown body converted with gomarkdown and
wrapped in the page template). The generator is constructed once per run and
passed by reference.
*/

package reporting

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/sirupsen/logrus"

	"github.com/meridianhealth/tabreport/pkg/summarize"
)

// Format selects the rendered output flavor.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// suppressedCell is what a suppressed count renders as. It is deliberately
// loud: an empty cell could be mistaken for a zero.
const suppressedCell = "[REDACTED]"

// ReportData is everything the generator needs for one report.
type ReportData struct {
	// Name is the report stem: the input file name before its first dot.
	Name string
	// Source is the input path, shown in the report heading.
	Source      string
	GeneratedAt time.Time
	RunID       string
	Table       summarize.TableSummary
	Columns     []summarize.ColumnSummary
}

// Generator renders summary reports into an output directory.
type Generator struct {
	outputDir string
	format    Format
	logger    *logrus.Logger
	page      *template.Template
}

// NewGenerator creates a report generator. The output directory must already
// exist; the generator never creates it.
func NewGenerator(outputDir string, format Format, logger *logrus.Logger) (*Generator, error) {
	switch format {
	case FormatHTML, FormatMarkdown:
	default:
		return nil, fmt.Errorf("unsupported report format: %q", format)
	}

	info, err := os.Stat(outputDir)
	if err != nil {
		return nil, fmt.Errorf("output directory %s: %w", outputDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("output path %s is not a directory", outputDir)
	}

	page, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	return &Generator{
		outputDir: outputDir,
		format:    format,
		logger:    logger,
		page:      page,
	}, nil
}

// Write renders one report and returns the path it was written to.
func (g *Generator) Write(data ReportData) (string, error) {
	body := buildMarkdown(data)

	var outPath string
	var contents []byte

	switch g.format {
	case FormatMarkdown:
		outPath = filepath.Join(g.outputDir, data.Name+".md")
		contents = []byte(body)
	case FormatHTML:
		outPath = filepath.Join(g.outputDir, data.Name+".html")
		rendered, err := g.renderHTML(data, body)
		if err != nil {
			return "", err
		}
		contents = rendered
	}

	if err := os.WriteFile(outPath, contents, 0644); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", outPath, err)
	}

	g.logger.WithFields(logrus.Fields{
		"report": outPath,
		"format": string(g.format),
	}).Info("Report written")

	return outPath, nil
}

// renderHTML converts the Markdown body and wraps it in the page template.
func (g *Generator) renderHTML(data ReportData, body string) ([]byte, error) {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	htmlBody := markdown.ToHTML([]byte(body), p, renderer)

	var out strings.Builder
	err := g.page.Execute(&out, struct {
		Source      string
		Body        template.HTML
		GeneratedAt string
		RunID       string
	}{
		Source:      data.Source,
		Body:        template.HTML(htmlBody),
		GeneratedAt: data.GeneratedAt.UTC().Format(time.RFC3339),
		RunID:       data.RunID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return []byte(out.String()), nil
}

// buildMarkdown assembles the report body. Summaries arrive already
// disclosure-controlled; the renderer only formats what it is handed.
func buildMarkdown(data ReportData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Dataset report: %s\n\n", data.Source)
	fmt.Fprintf(&b, "Rows: %d\n\n", data.Table.Rows)

	b.WriteString("## Table summary\n\n")
	b.WriteString("| Column Name | Size (MB) | Data Type | Missing Count | Missing (%) |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, col := range data.Table.Columns {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s |\n",
			col.Name,
			strconv.FormatFloat(col.SizeMB, 'f', 6, 64),
			col.Storage,
			col.MissingCount,
			formatPercent(col.MissingPercent),
		)
	}
	b.WriteString("\n")

	if len(data.Columns) > 0 {
		b.WriteString("## Value distributions\n\n")
		for _, cs := range data.Columns {
			fmt.Fprintf(&b, "### %s\n\n", cs.Name)
			b.WriteString("| Value | Count | Percentage |\n")
			b.WriteString("| --- | --- | --- |\n")
			for _, cell := range cs.Dist.Cells {
				fmt.Fprintf(&b, "| %s | %s | %s |\n",
					cell.Key.Label(),
					formatCount(cell),
					formatCellPercent(cell),
				)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func formatCount(cell summarize.Cell) string {
	if cell.Suppressed {
		return suppressedCell
	}
	return strconv.FormatFloat(cell.Count, 'f', -1, 64)
}

func formatCellPercent(cell summarize.Cell) string {
	if cell.Suppressed {
		return suppressedCell
	}
	return formatPercent(cell.Percentage)
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
