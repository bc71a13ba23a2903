/*
File: distribution.go
Description: Value-frequency distributions for columns. Tallies either the
observed value set or an externally supplied fixed domain, applies disclosure
control to the raw counts, optionally normalizes to percentages, and sorts
with the missing bucket first.
*/

package summarize

import (
	"sort"
	"strconv"
	"time"

	"github.com/meridianhealth/tabreport/pkg/disclosure"
	"github.com/meridianhealth/tabreport/pkg/frame"
)

// Key identifies one distribution bucket: either a concrete value or the
// missing bucket. Columns are single-typed, so a distribution never mixes
// text and numeric keys.
type Key struct {
	Missing bool
	Text    bool
	Num     float64
	Str     string
}

// MissingKey is the bucket for the missing marker.
var MissingKey = Key{Missing: true}

// NumKey builds a numeric bucket key.
func NumKey(v float64) Key { return Key{Num: v} }

// TextKey builds a text bucket key.
func TextKey(s string) Key { return Key{Text: true, Str: s} }

// Less orders keys for rendering: the missing bucket always sorts first,
// then remaining keys ascending.
func (k Key) Less(other Key) bool {
	switch {
	case k.Missing:
		return !other.Missing
	case other.Missing:
		return false
	case k.Text:
		return k.Str < other.Str
	default:
		return k.Num < other.Num
	}
}

// Label renders the key for a report.
func (k Key) Label() string {
	switch {
	case k.Missing:
		return "[missing]"
	case k.Text:
		return k.Str
	default:
		return strconv.FormatFloat(k.Num, 'f', -1, 64)
	}
}

func keyOf(v frame.Value) Key {
	switch v.Kind {
	case frame.KindMissing:
		return MissingKey
	case frame.KindText:
		return TextKey(v.Str)
	case frame.KindTime:
		return TextKey(v.Time.Format(time.RFC3339))
	default:
		return NumKey(v.Num)
	}
}

// Cell is one row of a distribution after disclosure control. Suppressed
// cells carry no count and, when the distribution is normalized, no
// percentage either.
type Cell struct {
	Key        Key
	Count      float64
	Percentage float64
	Suppressed bool
}

// Distribution is an ordered frequency distribution: missing bucket first,
// remaining keys ascending. Normalized is set when percentages were computed.
type Distribution struct {
	Cells      []Cell
	Normalized bool
}

// Surviving returns the sum of the non-suppressed counts.
func (d Distribution) Surviving() float64 {
	var total float64
	for _, c := range d.Cells {
		if !c.Suppressed {
			total += c.Count
		}
	}
	return total
}

// CountOptions controls a CountValues run.
type CountOptions struct {
	// Domain, when non-nil, is the explicit set of buckets to tally. Values
	// outside the domain are ignored, not errored. When nil, every distinct
	// observed value is tallied, plus the missing bucket when missing values
	// were observed.
	Domain []Key

	// Normalize converts the suppressed counts to percentages of the sum of
	// surviving counts.
	Normalize bool

	Policy disclosure.Policy
}

// CountValues computes the disclosure-controlled frequency distribution of a
// column's values.
func CountValues(col *frame.Column, opts CountOptions) Distribution {
	tally := make(map[Key]float64)
	var keys []Key

	if opts.Domain != nil {
		keys = make([]Key, len(opts.Domain))
		copy(keys, opts.Domain)
		for _, k := range keys {
			tally[k] = 0
		}
		for i := 0; i < col.Len(); i++ {
			k := keyOf(col.Value(i))
			if _, ok := tally[k]; ok {
				tally[k]++
			}
		}
	} else {
		for i := 0; i < col.Len(); i++ {
			k := keyOf(col.Value(i))
			if _, seen := tally[k]; !seen {
				keys = append(keys, k)
			}
			tally[k]++
		}
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	raw := make([]float64, len(keys))
	for i, k := range keys {
		raw[i] = tally[k]
	}
	controlled := opts.Policy.Apply(raw)

	dist := Distribution{Cells: make([]Cell, len(keys))}
	for i, k := range keys {
		dist.Cells[i] = Cell{
			Key:        k,
			Count:      controlled[i].Value,
			Suppressed: controlled[i].Suppressed,
		}
	}

	if opts.Normalize {
		dist.Normalized = true
		total := dist.Surviving()
		if total > 0 {
			for i := range dist.Cells {
				if !dist.Cells[i].Suppressed {
					dist.Cells[i].Percentage = dist.Cells[i].Count / total * 100
				}
			}
		}
	}

	return dist
}
