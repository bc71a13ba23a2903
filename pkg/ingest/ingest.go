/*
File: ingest.go
Description: Tabular file ingestion for tabreport. Dispatches on the filename
suffix to the matching decoder (csv, Stata dta, feather), transparently
unwrapping gzip where the format allows it. Unsupported suffixes produce a
classified error so the caller can decide how to handle the batch.
*/

package ingest

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/meridianhealth/tabreport/pkg/frame"
)

// UnsupportedFormatError is returned when a file's extension names no known
// tabular format. It is fatal for that input and is never silently swallowed.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("cannot read %q files", e.Ext)
}

// Extension returns the full suffix chain of a path: everything from the
// first dot of the file name onward, so "input.dta.gz" yields ".dta.gz".
func Extension(path string) string {
	name := filepath.Base(path)
	i := strings.Index(name, ".")
	if i < 0 {
		return ""
	}
	return name[i:]
}

// BaseName returns the file name text before the first dot, the stem used to
// name the rendered report ("output/input.dta.gz" -> "input").
func BaseName(path string) string {
	name := filepath.Base(path)
	if i := strings.Index(name, "."); i >= 0 {
		return name[:i]
	}
	return name
}

// ReadTable loads a tabular file fully into memory and returns it as a Table.
// The format is selected by the filename suffix: .csv and .csv.gz, .dta and
// .dta.gz, or .feather. Any other suffix is an UnsupportedFormatError.
func ReadTable(path string) (*frame.Table, error) {
	switch Extension(path) {
	case ".csv":
		return readCSV(path, false)
	case ".csv.gz":
		return readCSV(path, true)
	case ".dta":
		return readStata(path, false)
	case ".dta.gz":
		return readStata(path, true)
	case ".feather":
		return readFeather(path)
	default:
		return nil, &UnsupportedFormatError{Ext: Extension(path)}
	}
}

// gunzipAll opens a gzip-compressed file and returns its full decompressed
// contents. The Stata decoder needs random access, so compressed inputs are
// inflated into memory first; datasets are assumed to fit (see package docs).
func gunzipAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip stream %s: %w", path, err)
	}
	defer gz.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, gz); err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
	}
	return buf.Bytes(), nil
}
