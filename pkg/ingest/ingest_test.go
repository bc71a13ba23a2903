/*
File: ingest_test.go
Description: Tests for tabular file ingestion: report base names across every
supported suffix, unsupported-extension classification, and csv / gzipped csv
/ feather round trips through temporary files.
*/

package ingest_test

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/ipc"
	"github.com/apache/arrow/go/v15/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhealth/tabreport/pkg/frame"
	"github.com/meridianhealth/tabreport/pkg/ingest"
)

// TestBaseName checks that the report stem is the text before the first dot
// for every supported suffix.
func TestBaseName(t *testing.T) {
	cases := []struct {
		path string
		name string
	}{
		{"output/input.csv", "input"},
		{"output/input.csv.gz", "input"},
		{"output/input.feather", "input"},
		{"output/input.dta", "input"},
		{"output/input.dta.gz", "input"},
		{"noext", "noext"},
	}
	for _, c := range cases {
		assert.Equal(t, c.name, ingest.BaseName(c.path), c.path)
	}
}

// TestExtension checks the full suffix chain extraction.
func TestExtension(t *testing.T) {
	assert.Equal(t, ".dta.gz", ingest.Extension("output/input.dta.gz"))
	assert.Equal(t, ".csv", ingest.Extension("input.csv"))
	assert.Equal(t, "", ingest.Extension("noext"))
}

// TestReadTableUnsupportedExtension checks the classified error: the run must
// be able to tell which extension it choked on.
func TestReadTableUnsupportedExtension(t *testing.T) {
	_, err := ingest.ReadTable("input.parquet")
	require.Error(t, err)

	var unsupported *ingest.UnsupportedFormatError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, ".parquet", unsupported.Ext)
	assert.Contains(t, err.Error(), ".parquet")
}

const csvContents = "patient_id,is_registered,stp_code\n1,1,STP0\n2,0,STP1\n3,,STP0\n"

func assertCSVTable(t *testing.T, tbl *frame.Table) {
	t.Helper()
	assert.Equal(t, 3, tbl.Rows())
	assert.Equal(t, 3, tbl.NumColumns())

	registered := tbl.Column("is_registered")
	require.NotNil(t, registered)
	assert.Equal(t, frame.Float, registered.Storage(), "csv files are untyped")
	assert.Equal(t, 1.0, registered.Value(0).Num)
	assert.Equal(t, 0.0, registered.Value(1).Num)
	assert.True(t, registered.IsMissing(2))

	stp := tbl.Column("stp_code")
	require.NotNil(t, stp)
	assert.Equal(t, frame.String, stp.Storage())
	assert.Equal(t, "STP1", stp.Value(1).Str)
}

// TestReadTableCSV round-trips a csv file through a temporary directory.
func TestReadTableCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvContents), 0644))

	tbl, err := ingest.ReadTable(path)
	require.NoError(t, err)
	assertCSVTable(t, tbl)
}

// TestReadTableGzippedCSV round-trips the same data gzip-compressed.
func TestReadTableGzippedCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(csvContents))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	tbl, err := ingest.ReadTable(path)
	require.NoError(t, err)
	assertCSVTable(t, tbl)
}

// TestReadTableFeather writes an arrow IPC file and reads it back, checking
// that feather preserves int, bool and string storage.
func TestReadTableFeather(t *testing.T) {
	pool := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "patient_id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "is_dead", Type: arrow.FixedWidthTypes.Boolean, Nullable: true},
		{Name: "stp_code", Type: arrow.BinaryTypes.String},
	}, nil)

	builder := array.NewRecordBuilder(pool, schema)
	defer builder.Release()
	builder.Field(0).(*array.Int64Builder).AppendValues([]int64{1, 2, 3}, nil)
	builder.Field(1).(*array.BooleanBuilder).AppendValues([]bool{false, true, false}, []bool{true, true, false})
	builder.Field(2).(*array.StringBuilder).AppendValues([]string{"STP0", "STP1", "STP0"}, nil)
	rec := builder.NewRecord()
	defer rec.Release()

	path := filepath.Join(t.TempDir(), "input.feather")
	f, err := os.Create(path)
	require.NoError(t, err)
	w, err := ipc.NewFileWriter(f, ipc.WithSchema(schema), ipc.WithAllocator(pool))
	require.NoError(t, err)
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	tbl, err := ingest.ReadTable(path)
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.Rows())
	assert.Equal(t, frame.Int, tbl.Column("patient_id").Storage())
	assert.Equal(t, frame.Bool, tbl.Column("is_dead").Storage())
	assert.Equal(t, frame.String, tbl.Column("stp_code").Storage())

	dead := tbl.Column("is_dead")
	assert.Equal(t, 1.0, dead.Value(1).Num)
	assert.True(t, dead.IsMissing(2))
	assert.Equal(t, 1, dead.CountMissing())
}
