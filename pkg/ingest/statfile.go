/*
File: statfile.go
Description: csv and Stata dta decoding built on github.com/kshedden/datareader.
Every series is upcast to float64/string/time and wrapped into the frame
column model; csv files are untyped, so their numeric columns always arrive
with float storage.
*/

package ingest

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kshedden/datareader"

	"github.com/meridianhealth/tabreport/pkg/frame"
)

// seriesToColumns converts a chunk of datareader series into frame columns.
func seriesToColumns(series []*datareader.Series) ([]*frame.Column, error) {
	columns := make([]*frame.Column, 0, len(series))

	for _, ser := range series {
		ser = ser.UpcastNumeric()

		var (
			col *frame.Column
			err error
		)
		switch data := ser.Data().(type) {
		case []float64:
			col, err = frame.NewColumn(ser.Name, frame.Float, data, ser.Missing())
		case []string:
			col, err = frame.NewColumn(ser.Name, frame.String, data, ser.Missing())
		case []time.Time:
			col, err = frame.NewColumn(ser.Name, frame.Time, data, ser.Missing())
		default:
			err = fmt.Errorf("series %q: unsupported data type %T", ser.Name, data)
		}
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}

	return columns, nil
}

func readCSV(path string, gzipped bool) (*frame.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rdr io.Reader = f
	if gzipped {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream %s: %w", path, err)
		}
		defer gz.Close()
		rdr = gz
	}

	csv := datareader.NewCSVReader(rdr)
	series, err := csv.Read(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv %s: %w", path, err)
	}

	columns, err := seriesToColumns(series)
	if err != nil {
		return nil, err
	}
	return frame.NewTable(path, columns)
}

func readStata(path string, gzipped bool) (*frame.Table, error) {
	var src io.ReadSeeker

	if gzipped {
		raw, err := gunzipAll(path)
		if err != nil {
			return nil, err
		}
		src = bytes.NewReader(raw)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	}

	stata, err := datareader.NewStataReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open dta %s: %w", path, err)
	}

	stata.ConvertDates = true
	stata.InsertCategoryLabels = true
	stata.InsertStrls = true

	series, err := stata.Read(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to read dta %s: %w", path, err)
	}

	columns, err := seriesToColumns(series)
	if err != nil {
		return nil, err
	}
	return frame.NewTable(path, columns)
}
