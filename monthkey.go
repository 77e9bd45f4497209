package finances

import (
	"encoding/json"
	"fmt"
	"time"
)

// MonthKeyFormat is the format used to represent month keys as strings.
const MonthKeyFormat = "2006-01"

// MonthKey identifies a calendar month, the granularity at which budgets and
// piggy-bank entries are kept.
type MonthKey struct {
	y int        // year
	m time.Month // month
}

// NewMonthKey returns a normalized MonthKey for the given year and month.
// Out-of-range months roll over (month 13 becomes January of the next year).
func NewMonthKey(year int, month time.Month) MonthKey {
	k := MonthKey{year, month}
	t := k.time()
	return MonthKey{t.Year(), t.Month()}
}

// Year returns the key's year.
func (k MonthKey) Year() int { return k.y }

// Month returns the key's month.
func (k MonthKey) Month() time.Month { return k.m }

// String formats the key as "YYYY-MM".
func (k MonthKey) String() string { return k.time().Format(MonthKeyFormat) }

// IsZero returns true if the key is the zero value.
func (k MonthKey) IsZero() bool { return k.y == 0 && k.m == 0 }

// time returns a time.Time that is a canonical representation of that month
// (first day, midnight UTC).
func (k MonthKey) time() time.Time {
	return time.Date(k.y, k.m, 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths returns the key i months after k (i may be negative).
func (k MonthKey) AddMonths(i int) MonthKey {
	return NewMonthKey(k.y, k.m+time.Month(i))
}

// Prev returns the preceding month, rolling the year backward at January.
func (k MonthKey) Prev() MonthKey { return k.AddMonths(-1) }

// Next returns the following month.
func (k MonthKey) Next() MonthKey { return k.AddMonths(1) }

// Before reports whether k is strictly before x.
func (k MonthKey) Before(x MonthKey) bool { return k.time().Before(x.time()) }

// After reports whether k is strictly after x.
func (k MonthKey) After(x MonthKey) bool { return k.time().After(x.time()) }

// MonthKeyOf returns the key for the month containing t.
func MonthKeyOf(t time.Time) MonthKey { return NewMonthKey(t.Year(), t.Month()) }

// CurrentMonthKey returns the key for the month containing the present moment.
func CurrentMonthKey() MonthKey { return MonthKeyOf(time.Now()) }

// ParseMonthKey parses a "YYYY-MM" string. It is lenient about single-digit
// months ("2025-7").
func ParseMonthKey(str string) (MonthKey, error) {
	on, err := time.Parse("2006-1", str)
	if err != nil {
		return MonthKey{}, fmt.Errorf("invalid month key %q, want format %q: %w", str, MonthKeyFormat, err)
	}
	return NewMonthKey(on.Year(), on.Month()), nil
}

// MustParseMonthKey is like ParseMonthKey but panics on error.
func MustParseMonthKey(str string) MonthKey {
	k, err := ParseMonthKey(str)
	if err != nil {
		panic(err.Error())
	}
	return k
}

// UnmarshalJSON implements the json specific way to unmarshal a month key
// from a json string.
func (k *MonthKey) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseMonthKey(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k MonthKey) MarshalJSON() ([]byte, error) {
	str := k.String()
	return json.Marshal(&str)
}

// check that a MonthKey pointer is a valid json marshal/unmarshaller type.
var _ json.Marshaler = (*MonthKey)(nil)
var _ json.Unmarshaler = (*MonthKey)(nil)
