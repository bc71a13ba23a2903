/*
File: classify.go
Description: Boolean-likeness detection for columns. A column read from an
untyped file (such as csv) may hold boolean data without a boolean storage
type, so detection inspects values as well as the declared type. Two
historical heuristics are kept distinct because the column selection pipeline
runs them as separate passes.
*/

package classify

import "github.com/meridianhealth/tabreport/pkg/frame"

// zeroOrOne reports whether every non-missing value of a numeric column is
// exactly 0 or 1. A column consisting entirely of missing markers satisfies
// this vacuously: an all-missing numeric column cannot be disproven boolean.
func zeroOrOne(col *frame.Column) bool {
	for i := 0; i < col.Len(); i++ {
		v := col.Value(i)
		if v.Kind == frame.KindMissing {
			continue
		}
		if v.Num != 0 && v.Num != 1 {
			return false
		}
	}
	return true
}

// IsBoolean reports whether the column's values are boolean. Columns with
// boolean storage qualify by construction. Numeric columns qualify when every
// non-missing value is exactly 0 or 1 (no tolerance). Text, timestamp and
// categorical columns never qualify, even when fully missing: their storage
// type alone disqualifies them.
func IsBoolean(col *frame.Column) bool {
	switch {
	case col.Storage() == frame.Bool:
		return true
	case col.Storage().Numeric():
		return zeroOrOne(col)
	default:
		return false
	}
}

// IsBoolAsInt reports whether the column is an integer-encoded boolean: a
// column with numeric (not boolean) storage whose non-missing values are all
// exactly 0 or 1. Columns already stored as bool are excluded here because a
// separate pass handles naturally boolean columns.
func IsBoolAsInt(col *frame.Column) bool {
	if !col.Storage().Numeric() {
		return false
	}
	return zeroOrOne(col)
}

// IsBooleanLike is the union of the two heuristics: the set of columns that
// qualify for a frequency summary.
func IsBooleanLike(col *frame.Column) bool {
	return IsBoolean(col)
}
