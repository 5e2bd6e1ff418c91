package entity

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar date encoded as YYYY-MM-DD in JSON.
type Date struct {
	time.Time
}

func NewDate(y int, m time.Month, d int) Date {
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string

	err := json.Unmarshal(b, &s)
	if err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	if s == "" {
		return nil
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("parse date %q: %w", s, err)
		}
	}

	d.Time = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}

	return d.Time, nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.Time = time.Time{}
	case time.Time:
		d.Time = v
	case string:
		t, err := time.Parse(DateLayout, v)
		if err != nil {
			return err
		}

		d.Time = t
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}

	return nil
}

// FlexString accepts a JSON string or number.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	var n json.Number

	err := json.Unmarshal(b, &n)
	if err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}

	*f = FlexString(n.String())

	return nil
}

func (f FlexString) Int64() (int64, error) {
	return strconv.ParseInt(string(f), 10, 64)
}

type WriteResult struct {
	InsertID     int64 `json:"insertId,omitempty"`
	AffectedRows int64 `json:"affectedRows"`
}

// Delivery is the outcome of a side-effect notification attached to a primary write.
type Delivery struct {
	Sent  bool   `json:"sent"`
	Error string `json:"error,omitempty"`
}
