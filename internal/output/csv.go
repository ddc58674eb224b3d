package output

import (
	"bytes"
	"encoding/csv"

	"github.com/tradingplatform/display-formatter/internal/domain"
	"github.com/tradingplatform/display-formatter/pkg/display"
)

// CSVRenderer implements the value export CSV output (one row per value).
type CSVRenderer struct{}

func (c CSVRenderer) Name() string { return "csv" }

func (c CSVRenderer) Render(set *domain.ValueSet, f *display.Formatter) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Label", "Kind", "Raw", "Display"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, v := range set.Values {
		row := []string{
			v.Label,
			string(v.Kind),
			v.Raw(),
			v.Display(f),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
