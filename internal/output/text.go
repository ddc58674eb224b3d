package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tradingplatform/display-formatter/internal/domain"
	"github.com/tradingplatform/display-formatter/pkg/display"
)

// TextRenderer provides a concise aligned-text summary via the renderer
// interface.
type TextRenderer struct{}

func (t TextRenderer) Name() string { return "text" }

func (t TextRenderer) Render(set *domain.ValueSet, f *display.Formatter) ([]byte, error) {
	var buf bytes.Buffer
	title := set.Title
	if title == "" {
		title = "FORMATTED VALUES"
	}
	fmt.Fprintln(&buf, strings.ToUpper(title))
	fmt.Fprintln(&buf, strings.Repeat("=", len(title)))

	width := 0
	for _, v := range set.Values {
		if len(v.Label) > width {
			width = len(v.Label)
		}
	}
	for _, v := range set.Values {
		fmt.Fprintf(&buf, "%-*s  %s\n", width, v.Label, v.Display(f))
	}
	return buf.Bytes(), nil
}
