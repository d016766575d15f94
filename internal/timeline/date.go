package timeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// Present marks an ongoing entry. It resolves to a fixed point at the
	// far end of the timeline rather than the wall clock.
	Present = "Present"

	PresentYear  = 2026
	PresentMonth = 12
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// DateValue is a date as it appears in content files: a bare year, a
// "YYYY-MM" string or "Present". Numeric years keep their decimal text, so
// 2019 and "2019" compare equal.
type DateValue string

func (v *DateValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = DateValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("timeline: date must be a year or a string: %w", err)
	}
	*v = DateValue(n.String())
	return nil
}

func (v DateValue) String() string { return string(v) }

// Date is a parsed DateValue. Valid is false when the year is not numeric.
type Date struct {
	Year  int  `json:"year"`
	Month int  `json:"month"`
	Valid bool `json:"-"`
}

// ParseDate splits a DateValue into year and month. A missing, zero or
// unreadable month becomes January. Malformed years are not rejected: the
// result is marked invalid and its decimal form is NaN.
func ParseDate(v DateValue) Date {
	s := string(v)
	if s == Present {
		return Date{Year: PresentYear, Month: PresentMonth, Valid: true}
	}

	parts := strings.Split(s, "-")
	year, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Date{Month: 1}
	}

	month := 0
	if len(parts) > 1 {
		month, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	if month == 0 {
		month = 1
	}
	return Date{Year: year, Month: month, Valid: true}
}

// Decimal returns year + (month-1)/12, or NaN for an invalid date.
func (d Date) Decimal() float64 {
	if !d.Valid {
		return math.NaN()
	}
	return float64(d.Year) + float64(d.Month-1)/12
}

// Decimal is the sortable scalar used to place v on the timeline.
func Decimal(v DateValue) float64 {
	return ParseDate(v).Decimal()
}

// FormatDate renders v as "Mon YYYY", or "Present". Values that do not parse
// to a calendar month are returned as written.
func FormatDate(v DateValue) string {
	if v == Present {
		return Present
	}
	d := ParseDate(v)
	if !d.Valid || d.Month < 1 || d.Month > 12 {
		return string(v)
	}
	return fmt.Sprintf("%s %d", monthNames[d.Month-1], d.Year)
}

func FormatDateRange(start, end DateValue) string {
	return FormatDate(start) + " - " + FormatDate(end)
}
