/*
File: column.go
Description: Column data model for tabreport. A Column is a fixed-length,
single-typed sequence of scalar values with an optional missing mask. All
summary components treat columns as read-only; metadata changes return copies.
*/

package frame

import (
	"fmt"
	"math"
	"time"
)

// StorageType is the declared physical representation of a column's values.
// It is distinct from any semantic classification (such as boolean-like).
type StorageType int

const (
	Int StorageType = iota
	Float
	Bool
	String
	Time
	Categorical
)

// String returns the label used in table summaries.
func (s StorageType) String() string {
	switch s {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "string"
	case Time:
		return "time"
	case Categorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// Numeric reports whether the storage type holds numbers.
func (s StorageType) Numeric() bool {
	return s == Int || s == Float
}

// ValueKind distinguishes the scalar families a Value can carry.
type ValueKind int

const (
	KindMissing ValueKind = iota
	KindNumber
	KindText
	KindTime
)

// Value is a single cell read out of a Column. Missing cells have
// Kind == KindMissing and carry no payload.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
	Time time.Time
}

// Column is an ordered sequence of scalar values sharing one storage type,
// plus a missing mask. The backing slice is one of []int64, []float64,
// []bool, []string or []time.Time depending on the storage type.
type Column struct {
	name    string
	storage StorageType
	length  int

	ints    []int64
	floats  []float64
	bools   []bool
	strs    []string
	times   []time.Time
	missing []bool
}

// NewColumn builds a column from a typed backing slice. The data slice must
// match the storage type (Int: []int64, Float: []float64, Bool: []bool,
// String/Categorical: []string, Time: []time.Time). The missing mask may be
// nil when no values are missing; otherwise it must have the same length as
// the data. NaN entries in a float column are treated as missing regardless
// of the mask.
func NewColumn(name string, storage StorageType, data interface{}, missing []bool) (*Column, error) {
	col := &Column{name: name, storage: storage}

	switch storage {
	case Int:
		v, ok := data.([]int64)
		if !ok {
			return nil, fmt.Errorf("column %q: int storage requires []int64, got %T", name, data)
		}
		col.ints = v
		col.length = len(v)
	case Float:
		v, ok := data.([]float64)
		if !ok {
			return nil, fmt.Errorf("column %q: float storage requires []float64, got %T", name, data)
		}
		col.floats = v
		col.length = len(v)
	case Bool:
		v, ok := data.([]bool)
		if !ok {
			return nil, fmt.Errorf("column %q: bool storage requires []bool, got %T", name, data)
		}
		col.bools = v
		col.length = len(v)
	case String, Categorical:
		v, ok := data.([]string)
		if !ok {
			return nil, fmt.Errorf("column %q: %s storage requires []string, got %T", name, storage, data)
		}
		col.strs = v
		col.length = len(v)
	case Time:
		v, ok := data.([]time.Time)
		if !ok {
			return nil, fmt.Errorf("column %q: time storage requires []time.Time, got %T", name, data)
		}
		col.times = v
		col.length = len(v)
	default:
		return nil, fmt.Errorf("column %q: unknown storage type %d", name, storage)
	}

	if missing != nil && len(missing) != col.length {
		return nil, fmt.Errorf("column %q: missing mask has length %d, want %d", name, len(missing), col.length)
	}
	col.missing = missing

	return col, nil
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Storage returns the declared storage type.
func (c *Column) Storage() StorageType { return c.storage }

// Len returns the number of entries, missing markers included.
func (c *Column) Len() int { return c.length }

// Rename returns a copy of the column carrying the new name. The receiver is
// never mutated: callers may hold borrowed columns from an input table, and
// renaming those in place would corrupt the caller's view.
func (c *Column) Rename(name string) *Column {
	cp := *c
	cp.name = name
	return &cp
}

// IsMissing reports whether the entry at position i is the missing marker.
func (c *Column) IsMissing(i int) bool {
	if c.missing != nil && c.missing[i] {
		return true
	}
	if c.storage == Float && math.IsNaN(c.floats[i]) {
		return true
	}
	return false
}

// CountMissing returns the number of missing entries.
func (c *Column) CountMissing() int {
	n := 0
	for i := 0; i < c.length; i++ {
		if c.IsMissing(i) {
			n++
		}
	}
	return n
}

// Value returns the cell at position i.
func (c *Column) Value(i int) Value {
	if c.IsMissing(i) {
		return Value{Kind: KindMissing}
	}
	switch c.storage {
	case Int:
		return Value{Kind: KindNumber, Num: float64(c.ints[i])}
	case Float:
		return Value{Kind: KindNumber, Num: c.floats[i]}
	case Bool:
		if c.bools[i] {
			return Value{Kind: KindNumber, Num: 1}
		}
		return Value{Kind: KindNumber, Num: 0}
	case String, Categorical:
		return Value{Kind: KindText, Str: c.strs[i]}
	case Time:
		return Value{Kind: KindTime, Time: c.times[i]}
	}
	return Value{Kind: KindMissing}
}

// SizeBytes estimates the memory footprint of the column's backing data.
func (c *Column) SizeBytes() int64 {
	var n int64
	switch c.storage {
	case Int, Float, Time:
		n = int64(c.length) * 8
	case Bool:
		n = int64(c.length)
	case String, Categorical:
		// Slice header per entry plus the string bytes themselves.
		n = int64(c.length) * 16
		for _, s := range c.strs {
			n += int64(len(s))
		}
	}
	if c.missing != nil {
		n += int64(len(c.missing))
	}
	return n
}
