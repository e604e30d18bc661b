package util

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// PeriodKey formats a period-end timestamp as an ISO date, falling
// back to the raw label when there is no timestamp.
func PeriodKey(end time.Time, label string) string {
	if end.IsZero() {
		return label
	}
	return end.Format(layout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(layout, s)
}

var yearQuarterPattern = regexp.MustCompile(`^(\d{4})Q([1-4])$`)

// ExtractYearAndQuarter parses labels like "2023Q4".
func ExtractYearAndQuarter(input string) (int, int, error) {
	matches := yearQuarterPattern.FindStringSubmatch(input)
	if len(matches) != 3 {
		return 0, 0, fmt.Errorf("match not found for %q", input)
	}

	year, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, err
	}
	quarter, err := strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, err
	}

	return year, quarter, nil
}

// QuarterEnd returns the last calendar day of the given quarter.
func QuarterEnd(year, quarter int) time.Time {
	// day 0 of the month after the quarter is its last day
	return time.Date(year, time.Month(quarter*3+1), 0, 0, 0, 0, 0, time.UTC)
}
