package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// monthLayout accepts both "2020-01" and "2020-1"
const monthLayout = "2006-1"

// Month is a calendar month. Months order chronologically by Index.
type Month struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// ParseMonth parses a YYYY-MM value.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, strings.TrimSpace(s))
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return Month{Year: t.Year(), Month: int(t.Month())}, nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// Index is the number of months since year zero, used for ordering and range length.
func (m Month) Index() int {
	return m.Year*12 + m.Month - 1
}

func (m Month) Before(other Month) bool {
	return m.Index() < other.Index()
}

// Next advances one calendar month, rolling December over to January.
func (m Month) Next() Month {
	if m.Month == 12 {
		return Month{Year: m.Year + 1, Month: 1}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// YearSegment and MonthSegment are the path segments used on both mirrors.
func (m Month) YearSegment() string {
	return strconv.Itoa(m.Year)
}

func (m Month) MonthSegment() string {
	return fmt.Sprintf("%02d", m.Month)
}

// MonthRange returns every month from start to end inclusive.
// The result is empty when start is after end.
func MonthRange(start, end Month) []Month {
	if end.Before(start) {
		return nil
	}

	months := make([]Month, 0, end.Index()-start.Index()+1)
	for m := start; !end.Before(m); m = m.Next() {
		months = append(months, m)
	}
	return months
}

// GenerateMonths parses both bounds and expands them into the month sequence.
func GenerateMonths(start, end string) ([]Month, error) {
	from, err := ParseMonth(start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}

	to, err := ParseMonth(end)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	return MonthRange(from, to), nil
}
