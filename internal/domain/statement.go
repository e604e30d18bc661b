package domain

import (
	"math"
	"time"
)

// PeriodRow maps a line-item label to its reported value for one
// fiscal period. A nil value, a missing label, or NaN means the item
// was not reported. Infinite values are treated the same way.
type PeriodRow map[string]*float64

func (r PeriodRow) Get(label string) (float64, bool) {
	v, ok := r[label]
	if !ok || v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}

type Period struct {
	// End is the period-end timestamp. Zero when the provider's
	// period identifier could not be read as a date.
	End   time.Time
	Label string
	Items PeriodRow
}

type Statement struct {
	Source  string
	Symbol  string
	Periods []Period
}

func (s *Statement) Empty() bool {
	return s == nil || len(s.Periods) == 0
}
