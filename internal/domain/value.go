// Package domain holds the value types shared by the batch renderers and
// the configuration loader.
package domain

import (
	"fmt"
	"strconv"

	"github.com/tradingplatform/display-formatter/pkg/display"
)

// Kind tags how a raw value should be formatted.
type Kind string

const (
	KindCurrency Kind = "currency"
	KindPercent  Kind = "percent"
	KindNumber   Kind = "number"
	KindDate     Kind = "date"
)

// Valid reports whether k names a known formatter.
func (k Kind) Valid() bool {
	switch k {
	case KindCurrency, KindPercent, KindNumber, KindDate:
		return true
	}
	return false
}

// Value is one raw dashboard value awaiting display formatting. Numeric
// kinds read Number; the date kind reads Date.
type Value struct {
	Label  string  `yaml:"label" json:"label"`
	Kind   Kind    `yaml:"kind" json:"kind"`
	Number float64 `yaml:"number,omitempty" json:"number,omitempty"`
	Date   string  `yaml:"date,omitempty" json:"date,omitempty"`
}

// Raw returns the undecorated input as text, for diagnostic columns.
func (v Value) Raw() string {
	if v.Kind == KindDate {
		return v.Date
	}
	return strconv.FormatFloat(v.Number, 'f', -1, 64)
}

// Display formats the value through f according to its kind.
func (v Value) Display(f *display.Formatter) string {
	switch v.Kind {
	case KindCurrency:
		return f.Currency(v.Number)
	case KindPercent:
		return f.Percent(v.Number)
	case KindDate:
		return f.Date(v.Date)
	default:
		return f.Number(v.Number)
	}
}

// ValueSet is a batch of tagged values, typically one dashboard panel.
type ValueSet struct {
	Title  string  `yaml:"title" json:"title"`
	Values []Value `yaml:"values" json:"values"`
}

// Validate checks that every value carries a known kind and the payload
// field that kind reads. Unparseable date text is NOT rejected here: the
// formatter degrades it to its invalid-date sentinel at render time.
func (s *ValueSet) Validate() error {
	if len(s.Values) == 0 {
		return fmt.Errorf("no values provided")
	}
	for i, v := range s.Values {
		if v.Label == "" {
			return fmt.Errorf("value %d: label is required", i)
		}
		if !v.Kind.Valid() {
			return fmt.Errorf("value %d (%s): unknown kind %q", i, v.Label, v.Kind)
		}
		if v.Kind == KindDate && v.Date == "" {
			return fmt.Errorf("value %d (%s): date kind requires a date string", i, v.Label)
		}
	}
	return nil
}
