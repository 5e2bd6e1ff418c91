// Package schema holds the allow-list of tables reachable through the dynamic
// table gateway and validates caller records against it.
package schema

import (
	"fmt"
	"regexp"

	"github.com/samber/lo"
)

type Kind uint8

const (
	KindText Kind = iota + 1
	KindInt
	KindDecimal
	KindBool
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindDecimal:
		return "decimal"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

var identRe = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

type Column struct {
	Name     string
	Kind     Kind
	Required bool
	Nullable bool
	// MaxLen limits text columns, zero means unlimited.
	MaxLen   int
	ReadOnly bool
}

type Table struct {
	Name       string
	PrimaryKey Column
	Columns    []Column
	ReadOnly   bool
}

// ColumnNames returns the primary key followed by the declared columns.
func (t Table) ColumnNames() []string {
	return append([]string{t.PrimaryKey.Name}, lo.Map(t.Columns, func(c Column, _ int) string {
		return c.Name
	})...)
}

func (t Table) Column(name string) (Column, bool) {
	if name == t.PrimaryKey.Name {
		return t.PrimaryKey, true
	}

	return lo.Find(t.Columns, func(c Column) bool {
		return c.Name == name
	})
}

func (t Table) HasColumn(name string) bool {
	_, ok := t.Column(name)
	return ok
}

func (t Table) validate() error {
	if !identRe.MatchString(t.Name) {
		return fmt.Errorf("invalid table name %q", t.Name)
	}

	if !identRe.MatchString(t.PrimaryKey.Name) {
		return fmt.Errorf("table %s: invalid primary key %q", t.Name, t.PrimaryKey.Name)
	}

	if t.PrimaryKey.Kind != KindInt {
		return fmt.Errorf("table %s: primary key must be an int column", t.Name)
	}

	seen := map[string]struct{}{t.PrimaryKey.Name: {}}

	for _, c := range t.Columns {
		if !identRe.MatchString(c.Name) {
			return fmt.Errorf("table %s: invalid column name %q", t.Name, c.Name)
		}

		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("table %s: duplicate column %q", t.Name, c.Name)
		}

		if c.Kind < KindText || c.Kind > KindDate {
			return fmt.Errorf("table %s: column %s has no kind", t.Name, c.Name)
		}

		seen[c.Name] = struct{}{}
	}

	return nil
}

type Catalog struct {
	tables map[string]Table
	order  []string
}

func NewCatalog(tables ...Table) (*Catalog, error) {
	c := &Catalog{tables: make(map[string]Table, len(tables))}

	for _, t := range tables {
		err := t.validate()
		if err != nil {
			return nil, err
		}

		if _, ok := c.tables[t.Name]; ok {
			return nil, fmt.Errorf("duplicate table %q", t.Name)
		}

		c.tables[t.Name] = t
		c.order = append(c.order, t.Name)
	}

	return c, nil
}

func MustCatalog(tables ...Table) *Catalog {
	c, err := NewCatalog(tables...)
	if err != nil {
		panic(err)
	}

	return c
}

func (c *Catalog) Table(name string) (Table, bool) {
	t, ok := c.tables[name]
	return t, ok
}

func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}
