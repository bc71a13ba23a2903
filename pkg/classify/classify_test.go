/*
File: classify_test.go
Description: Tests for boolean-likeness detection across storage types,
including columns read from untyped files and fully missing columns.
*/

package classify_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhealth/tabreport/pkg/classify"
	"github.com/meridianhealth/tabreport/pkg/frame"
)

func mustColumn(t *testing.T, name string, storage frame.StorageType, data interface{}, missing []bool) *frame.Column {
	t.Helper()
	col, err := frame.NewColumn(name, storage, data, missing)
	require.NoError(t, err)
	return col
}

// TestIsBooleanWithBoolean covers columns whose values are boolean regardless
// of how they are stored.
func TestIsBooleanWithBoolean(t *testing.T) {
	assert.True(t, classify.IsBoolean(mustColumn(t, "a", frame.Int, []int64{0, 1}, nil)))
	assert.True(t, classify.IsBoolean(mustColumn(t, "b", frame.Float, []float64{0, 1}, nil)))
	assert.True(t, classify.IsBoolean(mustColumn(t, "c", frame.Float, []float64{math.NaN(), 1}, nil)))
	assert.True(t, classify.IsBoolean(mustColumn(t, "d", frame.Bool, []bool{false, true}, nil)))
}

// TestIsBooleanWithNonBoolean covers columns that must never qualify.
func TestIsBooleanWithNonBoolean(t *testing.T) {
	assert.False(t, classify.IsBoolean(mustColumn(t, "a", frame.Int, []int64{0, 2}, nil)))
	assert.False(t, classify.IsBoolean(mustColumn(t, "b", frame.Float, []float64{0.1, 0.2}, nil)))
	assert.False(t, classify.IsBoolean(mustColumn(t, "c", frame.Float, []float64{math.NaN(), 2}, nil)))
	assert.False(t, classify.IsBoolean(mustColumn(t, "d", frame.String, []string{"0", "1"}, nil)))

	times := []time.Time{
		time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	assert.False(t, classify.IsBoolean(mustColumn(t, "e", frame.Time, times, nil)))
}

// TestIsBooleanAllMissing pins the all-missing convention: a fully missing
// numeric column cannot be disproven boolean and qualifies; a fully missing
// text column is disqualified by its storage type alone.
func TestIsBooleanAllMissing(t *testing.T) {
	allNaN := mustColumn(t, "a", frame.Float, []float64{math.NaN(), math.NaN()}, nil)
	assert.True(t, classify.IsBoolean(allNaN))
	assert.True(t, classify.IsBoolAsInt(allNaN))

	missingInts := mustColumn(t, "b", frame.Int, []int64{0, 0}, []bool{true, true})
	assert.True(t, classify.IsBoolean(missingInts))

	missingStrs := mustColumn(t, "c", frame.String, []string{"", ""}, []bool{true, true})
	assert.False(t, classify.IsBoolean(missingStrs))
	assert.False(t, classify.IsBoolAsInt(missingStrs))
}

// TestIsBoolAsIntExcludesBoolStorage checks the second heuristic: columns
// already stored as bool belong to the naturally-boolean pass and are
// excluded here, while integer-encoded booleans qualify.
func TestIsBoolAsIntExcludesBoolStorage(t *testing.T) {
	boolCol := mustColumn(t, "a", frame.Bool, []bool{true, false}, nil)
	assert.False(t, classify.IsBoolAsInt(boolCol))

	intCol := mustColumn(t, "b", frame.Int, []int64{1, 0, 1}, nil)
	assert.True(t, classify.IsBoolAsInt(intCol))

	floatCol := mustColumn(t, "c", frame.Float, []float64{1, 0, math.NaN()}, nil)
	assert.True(t, classify.IsBoolAsInt(floatCol))

	assert.False(t, classify.IsBoolAsInt(mustColumn(t, "d", frame.Int, []int64{0, 2}, nil)))
}

// TestIsBooleanLikeMatchesUnion ensures the public predicate accepts exactly
// the union of the two passes.
func TestIsBooleanLikeMatchesUnion(t *testing.T) {
	cases := []*frame.Column{
		mustColumn(t, "bool", frame.Bool, []bool{true}, nil),
		mustColumn(t, "int01", frame.Int, []int64{0, 1}, nil),
		mustColumn(t, "int02", frame.Int, []int64{0, 2}, nil),
		mustColumn(t, "text", frame.String, []string{"x"}, nil),
	}
	for _, col := range cases {
		want := classify.IsBoolean(col) || classify.IsBoolAsInt(col)
		assert.Equal(t, want, classify.IsBooleanLike(col), "column %s", col.Name())
	}
}
