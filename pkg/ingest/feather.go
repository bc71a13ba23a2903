/*
File: feather.go
Description: Feather (Arrow IPC file) decoding. Record batches are read with
the arrow ipc reader and appended column-wise into the frame model. Feather is
the only input format that preserves int, bool and categorical storage; csv
and dta inputs arrive as float/string/time.
*/

package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/ipc"
	"github.com/apache/arrow/go/v15/arrow/memory"

	"github.com/meridianhealth/tabreport/pkg/frame"
)

// columnAccum collects one column's values across record batches.
type columnAccum struct {
	name    string
	storage frame.StorageType
	ints    []int64
	floats  []float64
	bools   []bool
	strs    []string
	times   []time.Time
	missing []bool
}

func (a *columnAccum) build() (*frame.Column, error) {
	switch a.storage {
	case frame.Int:
		return frame.NewColumn(a.name, a.storage, a.ints, a.missing)
	case frame.Float:
		return frame.NewColumn(a.name, a.storage, a.floats, a.missing)
	case frame.Bool:
		return frame.NewColumn(a.name, a.storage, a.bools, a.missing)
	case frame.String, frame.Categorical:
		return frame.NewColumn(a.name, a.storage, a.strs, a.missing)
	case frame.Time:
		return frame.NewColumn(a.name, a.storage, a.times, a.missing)
	}
	return nil, fmt.Errorf("column %q: unknown storage", a.name)
}

func storageFor(dt arrow.DataType) (frame.StorageType, error) {
	switch dt.ID() {
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return frame.Int, nil
	case arrow.FLOAT32, arrow.FLOAT64:
		return frame.Float, nil
	case arrow.BOOL:
		return frame.Bool, nil
	case arrow.STRING, arrow.LARGE_STRING:
		return frame.String, nil
	case arrow.TIMESTAMP, arrow.DATE32, arrow.DATE64:
		return frame.Time, nil
	case arrow.DICTIONARY:
		return frame.Categorical, nil
	default:
		return 0, fmt.Errorf("unsupported arrow type %s", dt.Name())
	}
}

// appendArray pushes every entry of an arrow array onto the accumulator.
func appendArray(a *columnAccum, arr arrow.Array) error {
	n := arr.Len()
	for i := 0; i < n; i++ {
		a.missing = append(a.missing, arr.IsNull(i))
	}

	appendNullPadded := func(push func(i int)) {
		for i := 0; i < n; i++ {
			push(i)
		}
	}

	switch v := arr.(type) {
	case *array.Int8:
		appendNullPadded(func(i int) { a.ints = append(a.ints, int64(v.Value(i))) })
	case *array.Int16:
		appendNullPadded(func(i int) { a.ints = append(a.ints, int64(v.Value(i))) })
	case *array.Int32:
		appendNullPadded(func(i int) { a.ints = append(a.ints, int64(v.Value(i))) })
	case *array.Int64:
		appendNullPadded(func(i int) { a.ints = append(a.ints, v.Value(i)) })
	case *array.Uint8:
		appendNullPadded(func(i int) { a.ints = append(a.ints, int64(v.Value(i))) })
	case *array.Uint16:
		appendNullPadded(func(i int) { a.ints = append(a.ints, int64(v.Value(i))) })
	case *array.Uint32:
		appendNullPadded(func(i int) { a.ints = append(a.ints, int64(v.Value(i))) })
	case *array.Uint64:
		appendNullPadded(func(i int) { a.ints = append(a.ints, int64(v.Value(i))) })
	case *array.Float32:
		appendNullPadded(func(i int) { a.floats = append(a.floats, float64(v.Value(i))) })
	case *array.Float64:
		appendNullPadded(func(i int) { a.floats = append(a.floats, v.Value(i)) })
	case *array.Boolean:
		appendNullPadded(func(i int) { a.bools = append(a.bools, v.Value(i)) })
	case *array.String:
		appendNullPadded(func(i int) { a.strs = append(a.strs, v.Value(i)) })
	case *array.LargeString:
		appendNullPadded(func(i int) { a.strs = append(a.strs, v.Value(i)) })
	case *array.Timestamp:
		unit := v.DataType().(*arrow.TimestampType).Unit
		appendNullPadded(func(i int) { a.times = append(a.times, v.Value(i).ToTime(unit)) })
	case *array.Date32:
		appendNullPadded(func(i int) { a.times = append(a.times, v.Value(i).ToTime()) })
	case *array.Date64:
		appendNullPadded(func(i int) { a.times = append(a.times, v.Value(i).ToTime()) })
	case *array.Dictionary:
		dict, ok := v.Dictionary().(*array.String)
		if !ok {
			return fmt.Errorf("column %q: unsupported dictionary value type %T", a.name, v.Dictionary())
		}
		appendNullPadded(func(i int) {
			if v.IsNull(i) {
				a.strs = append(a.strs, "")
				return
			}
			a.strs = append(a.strs, dict.Value(v.GetValueIndex(i)))
		})
	default:
		return fmt.Errorf("column %q: unsupported arrow array %T", a.name, arr)
	}

	return nil
}

func readFeather(path string) (*frame.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rdr, err := ipc.NewFileReader(f, ipc.WithAllocator(memory.DefaultAllocator))
	if err != nil {
		return nil, fmt.Errorf("failed to open feather %s: %w", path, err)
	}
	defer rdr.Close()

	schema := rdr.Schema()
	accums := make([]*columnAccum, schema.NumFields())
	for j := 0; j < schema.NumFields(); j++ {
		field := schema.Field(j)
		storage, err := storageFor(field.Type)
		if err != nil {
			return nil, fmt.Errorf("feather %s, column %q: %w", path, field.Name, err)
		}
		accums[j] = &columnAccum{name: field.Name, storage: storage}
	}

	for {
		rec, err := rdr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read feather %s: %w", path, err)
		}
		for j := 0; j < int(rec.NumCols()); j++ {
			if err := appendArray(accums[j], rec.Column(j)); err != nil {
				return nil, err
			}
		}
	}

	columns := make([]*frame.Column, len(accums))
	for j, a := range accums {
		col, err := a.build()
		if err != nil {
			return nil, err
		}
		columns[j] = col
	}

	return frame.NewTable(path, columns)
}
