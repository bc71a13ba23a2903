/*
File: disclosure.go
Description: Statistical disclosure control for frequency counts. Counts are
rounded to a configured base and small counts are suppressed so that rendered
reports cannot expose low-frequency cells. Rounding always runs before
suppression within one report run.
*/

package disclosure

import (
	"fmt"
	"math"
)

// Policy binds the rounding base and the suppression threshold. The two are
// always applied together; threading them as one value keeps every call site
// within a run consistent.
type Policy struct {
	Base      int
	Threshold int
}

// DefaultPolicy is the policy applied to research extracts unless
// configuration overrides it.
var DefaultPolicy = Policy{Base: 5, Threshold: 5}

// Validate rejects bases and thresholds that cannot protect anything.
func (p Policy) Validate() error {
	if p.Base <= 0 {
		return fmt.Errorf("disclosure: rounding base must be positive, got %d", p.Base)
	}
	if p.Threshold < 0 {
		return fmt.Errorf("disclosure: suppression threshold must not be negative, got %d", p.Threshold)
	}
	return nil
}

// Count is a frequency cell after disclosure control. A suppressed cell is a
// missing value, never zero: zero is itself a disclosive statement.
type Count struct {
	Value      float64
	Suppressed bool
}

// RoundToNearest replaces each count with the nearest multiple of base,
// using round-half-to-even at the midpoint. Values already on a multiple of
// base map to themselves, so the operation is idempotent. Non-integral
// inputs are accepted; the result is then simply not integral-valued.
func RoundToNearest(counts []float64, base int) []float64 {
	out := make([]float64, len(counts))
	b := float64(base)
	for i, v := range counts {
		out[i] = math.RoundToEven(v/b) * b
	}
	return out
}

// Suppress turns every count less than or equal to threshold (inclusive)
// into a suppressed cell. Counts above the threshold survive unchanged. A
// result where every cell is suppressed is valid output.
func Suppress(counts []float64, threshold int) []Count {
	out := make([]Count, len(counts))
	t := float64(threshold)
	for i, v := range counts {
		if v <= t {
			out[i] = Count{Suppressed: true}
		} else {
			out[i] = Count{Value: v}
		}
	}
	return out
}

// Apply runs the full control: round to the policy base, then suppress at the
// policy threshold. A raw count above the threshold that rounds down to the
// threshold or below is suppressed.
func (p Policy) Apply(counts []float64) []Count {
	return Suppress(RoundToNearest(counts, p.Base), p.Threshold)
}
