package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

type ValidationError struct {
	Table  string
	Column string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s: %s", e.Table, e.Reason)
	}

	return fmt.Sprintf("%s.%s: %s", e.Table, e.Column, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return entity.ErrValidation
}

type Mode uint8

const (
	ModeInsert Mode = iota + 1
	ModeUpdate
)

// Values is a validated record: column names in a stable order with coerced values.
type Values struct {
	Columns []string
	Args    []any
}

func (v Values) Map() map[string]any {
	return lo.SliceToMap(lo.Range(len(v.Columns)), func(i int) (string, any) {
		return v.Columns[i], v.Args[i]
	})
}

func (t Table) ValidateRecord(rec entity.Record, mode Mode) (Values, error) {
	return t.validateRecord(rec, mode, nil)
}

// ValidateUpdate validates rec as the new state of the row identified by key. A primary key
// entry equal to key is dropped, so clients can send back a whole row they read.
func (t Table) ValidateUpdate(key any, rec entity.Record) (Values, error) {
	if key == nil {
		return Values{}, &ValidationError{Table: t.Name, Column: t.PrimaryKey.Name, Reason: "is required"}
	}

	return t.validateRecord(rec, ModeUpdate, key)
}

func (t Table) validateRecord(rec entity.Record, mode Mode, key any) (Values, error) {
	invalid := func(column, reason string) error {
		return &ValidationError{Table: t.Name, Column: column, Reason: reason}
	}

	if len(rec) == 0 {
		return Values{}, invalid("", "record is empty")
	}

	keys := lo.Keys(rec)
	sort.Strings(keys)

	var vals Values

	for _, k := range keys {
		if k == t.PrimaryKey.Name {
			if key == nil {
				return Values{}, invalid(k, "primary key cannot be written")
			}

			v, err := t.PrimaryKey.Coerce(rec[k])
			if err != nil || v != key {
				return Values{}, invalid(k, "primary key does not match the row being updated")
			}

			continue
		}

		col, ok := t.Column(k)
		if !ok {
			return Values{}, invalid(k, "unknown column")
		}

		if col.ReadOnly {
			return Values{}, invalid(k, "column is read-only")
		}

		v, err := col.Coerce(rec[k])
		if err != nil {
			return Values{}, invalid(k, err.Error())
		}

		vals.Columns = append(vals.Columns, k)
		vals.Args = append(vals.Args, v)
	}

	if len(vals.Columns) == 0 {
		return Values{}, invalid("", "record has no columns to write")
	}

	if mode == ModeInsert {
		for _, c := range t.Columns {
			if !c.Required {
				continue
			}

			v, ok := rec[c.Name]
			if !ok || v == nil {
				return Values{}, invalid(c.Name, "is required")
			}
		}
	}

	return vals, nil
}

// ValidateKey coerces a primary key value supplied by the caller.
func (t Table) ValidateKey(id any) (any, error) {
	if id == nil {
		return nil, &ValidationError{Table: t.Name, Column: t.PrimaryKey.Name, Reason: "is required"}
	}

	v, err := t.PrimaryKey.Coerce(id)
	if err != nil {
		return nil, &ValidationError{Table: t.Name, Column: t.PrimaryKey.Name, Reason: err.Error()}
	}

	return v, nil
}

var errNull = errors.New("must not be null")

//nolint:gocyclo,cyclop
func (c Column) Coerce(v any) (any, error) {
	if v == nil {
		if c.Nullable && !c.Required {
			return nil, nil
		}

		return nil, errNull
	}

	switch c.Kind {
	case KindText:
		var s string

		switch x := v.(type) {
		case string:
			s = x
		case json.Number:
			s = x.String()
		default:
			return nil, fmt.Errorf("expected text, got %T", v)
		}

		if c.Required && strings.TrimSpace(s) == "" {
			return nil, errors.New("must not be empty")
		}

		if c.MaxLen > 0 && utf8.RuneCountInString(s) > c.MaxLen {
			return nil, fmt.Errorf("longer than %d characters", c.MaxLen)
		}

		return s, nil

	case KindInt:
		switch x := v.(type) {
		case json.Number:
			return x.Int64()
		case float64:
			if x != math.Trunc(x) {
				return nil, errors.New("expected integer")
			}

			return int64(x), nil
		case int:
			return int64(x), nil
		case int64:
			return x, nil
		case string:
			if x == "" && c.Nullable && !c.Required {
				return nil, nil
			}

			n, err := strconv.ParseInt(x, 10, 64)
			if err != nil {
				return nil, errors.New("expected integer")
			}

			return n, nil
		default:
			return nil, fmt.Errorf("expected integer, got %T", v)
		}

	case KindDecimal:
		var (
			d   decimal.Decimal
			err error
		)

		switch x := v.(type) {
		case json.Number:
			d, err = decimal.NewFromString(x.String())
		case float64:
			d = decimal.NewFromFloat(x)
		case string:
			d, err = decimal.NewFromString(x)
		default:
			return nil, fmt.Errorf("expected decimal, got %T", v)
		}

		if err != nil {
			return nil, errors.New("expected decimal")
		}

		return d.String(), nil

	case KindBool:
		switch x := v.(type) {
		case bool:
			return x, nil
		case json.Number:
			n, err := x.Int64()
			if err != nil || (n != 0 && n != 1) {
				return nil, errors.New("expected boolean")
			}

			return n == 1, nil
		case float64:
			if x != 0 && x != 1 {
				return nil, errors.New("expected boolean")
			}

			return x == 1, nil
		default:
			return nil, fmt.Errorf("expected boolean, got %T", v)
		}

	case KindDate:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected date string, got %T", v)
		}

		d, err := time.Parse(entity.DateLayout, s)
		if err != nil {
			return nil, errors.New("expected date YYYY-MM-DD")
		}

		return d.Format(entity.DateLayout), nil
	}

	return nil, fmt.Errorf("unsupported column kind %s", c.Kind)
}
