package output

import (
	"encoding/json"

	"github.com/tradingplatform/display-formatter/internal/domain"
	"github.com/tradingplatform/display-formatter/pkg/display"
)

// JSONRenderer serializes the formatted value set as pretty-printed JSON.
type JSONRenderer struct{}

func (j JSONRenderer) Name() string { return "json" }

// formattedValue pairs a raw value with its display string.
type formattedValue struct {
	Label   string      `json:"label"`
	Kind    domain.Kind `json:"kind"`
	Raw     string      `json:"raw"`
	Display string      `json:"display"`
}

type formattedSet struct {
	Title  string           `json:"title,omitempty"`
	Values []formattedValue `json:"values"`
}

func (j JSONRenderer) Render(set *domain.ValueSet, f *display.Formatter) ([]byte, error) {
	out := formattedSet{Title: set.Title, Values: make([]formattedValue, 0, len(set.Values))}
	for _, v := range set.Values {
		out.Values = append(out.Values, formattedValue{
			Label:   v.Label,
			Kind:    v.Kind,
			Raw:     v.Raw(),
			Display: v.Display(f),
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
