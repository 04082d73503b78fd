package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date layouts accepted on input. The ISO form is what the API emits; the
// DD-MMM-YYYY form ("01-Jan-2025") appears in raw GDS ticket dumps that get
// posted to the API unmodified.
const (
	dateLayoutISO = "2006-01-02"
	dateLayoutGDS = "02-Jan-2006"
)

// Date is a calendar date without a time component. It maps to the DATE
// columns of the tickets table and always marshals as YYYY-MM-DD.
type Date struct {
	time.Time
}

// ParseDate parses a date string in either accepted layout.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayoutISO, s); err == nil {
		return Date{t}, nil
	}
	if t, err := time.Parse(dateLayoutGDS, s); err == nil {
		return Date{t}, nil
	}
	return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or DD-MMM-YYYY", s)
}

// MarshalJSON renders the date as a quoted YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayoutISO) + `"`), nil
}

// UnmarshalJSON accepts a quoted date in either layout, or null.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner so DATE columns load into Date values.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}
	return fmt.Errorf("cannot scan %T into Date", src)
}

// Value implements driver.Valuer; the driver stores the underlying time.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}
