package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/tradingplatform/display-formatter/internal/domain"
	"github.com/tradingplatform/display-formatter/pkg/display"
)

func buildTestValueSet() *domain.ValueSet {
	return &domain.ValueSet{
		Title: "Portfolio",
		Values: []domain.Value{
			{Label: "Total Value", Kind: domain.KindCurrency, Number: 125430.5},
			{Label: "Day Change %", Kind: domain.KindPercent, Number: -0.67},
			{Label: "Volume", Kind: domain.KindNumber, Number: 48123901},
			{Label: "Opened", Kind: domain.KindDate, Date: "2024-01-05"},
		},
	}
}

func TestTextRenderer(t *testing.T) {
	out, err := TextRenderer{}.Render(buildTestValueSet(), display.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{"PORTFOLIO", "$125,430.50", "-0.67%", "48,123,901", "Jan 5, 2024"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in output, got: %s", want, content)
		}
	}
}

func TestCSVRenderer(t *testing.T) {
	out, err := CSVRenderer{}.Render(buildTestValueSet(), display.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected header + 4 rows, got %d", len(records))
	}
	if got, want := records[1][3], "$125,430.50"; got != want {
		t.Errorf("display column = %q, want %q", got, want)
	}
	if got, want := records[1][2], "125430.5"; got != want {
		t.Errorf("raw column = %q, want %q", got, want)
	}
}

func TestJSONRenderer(t *testing.T) {
	out, err := JSONRenderer{}.Render(buildTestValueSet(), display.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded struct {
		Title  string `json:"title"`
		Values []struct {
			Label   string `json:"label"`
			Display string `json:"display"`
		} `json:"values"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Title != "Portfolio" {
		t.Errorf("title = %q, want %q", decoded.Title, "Portfolio")
	}
	if len(decoded.Values) != 4 {
		t.Fatalf("expected 4 values, got %d", len(decoded.Values))
	}
	if got, want := decoded.Values[3].Display, "Jan 5, 2024"; got != want {
		t.Errorf("date display = %q, want %q", got, want)
	}
}

func TestGetRendererByName(t *testing.T) {
	for name, canonical := range map[string]string{
		"text":  "text",
		"TABLE": "text",
		"csv":   "csv",
		"json":  "json",
		" txt ": "text",
	} {
		r := GetRendererByName(name)
		if r == nil {
			t.Fatalf("no renderer for %q", name)
		}
		if r.Name() != canonical {
			t.Errorf("renderer for %q = %q, want %q", name, r.Name(), canonical)
		}
	}
	if r := GetRendererByName("parquet"); r != nil {
		t.Errorf("expected nil renderer for unknown name, got %q", r.Name())
	}
}

func TestGenerateWritesFile(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	}()

	if err := Generate(buildTestValueSet(), display.Default(), "csv"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	matches, err := os.ReadDir(".")
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, e := range matches {
		if strings.HasPrefix(e.Name(), "formatted_values_") && strings.HasSuffix(e.Name(), ".csv") {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a timestamped csv file to be written")
	}
}

func TestGenerateUnknownFormat(t *testing.T) {
	err := Generate(buildTestValueSet(), display.Default(), "parquet")
	if err == nil || !strings.Contains(err.Error(), "available") {
		t.Fatalf("expected an error listing available formats, got: %v", err)
	}
}

func TestRender(t *testing.T) {
	out, err := Render(buildTestValueSet(), display.Default(), "table")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "$125,430.50") {
		t.Fatalf("expected formatted total in output, got: %s", out)
	}
}

func TestRenderUnknownFormatMatchesGenerate(t *testing.T) {
	_, renderErr := Render(buildTestValueSet(), display.Default(), "parquet")
	generateErr := Generate(buildTestValueSet(), display.Default(), "parquet")
	if renderErr == nil || generateErr == nil {
		t.Fatal("expected errors from both entry points")
	}
	if renderErr.Error() != generateErr.Error() {
		t.Errorf("Render error %q differs from Generate error %q", renderErr, generateErr)
	}
}
