package domain

type ResolvedPeriod struct {
	Revenue *float64 `json:"Revenue"`
	EPS     *float64 `json:"EPS"`
}

// QuarterlyResults is keyed by ISO period-end date. Keys may be an
// arbitrary provider label when the period had no parseable date.
type QuarterlyResults map[string]ResolvedPeriod
