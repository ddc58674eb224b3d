package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/tradingplatform/display-formatter/internal/domain"
	"github.com/tradingplatform/display-formatter/pkg/display"
)

// Renderer defines a pluggable batch renderer that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic
// rendering of the value set).
type Renderer interface {
	Render(set *domain.ValueSet, f *display.Formatter) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// RendererFunc adapter to allow ordinary functions to act as a Renderer.
type RendererFunc struct {
	ID string
	F  func(*domain.ValueSet, *display.Formatter) ([]byte, error)
}

func (rf RendererFunc) Render(set *domain.ValueSet, f *display.Formatter) ([]byte, error) {
	return rf.F(set, f)
}
func (rf RendererFunc) Name() string { return rf.ID }

// WriteRendered runs a renderer and writes output to a timestamped file with
// the given extension, returning the filename.
func WriteRendered(r Renderer, set *domain.ValueSet, f *display.Formatter, ext string) (string, error) {
	data, err := r.Render(set, f)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("formatted_values_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInRenderers stores available renderers (extended incrementally).
var builtInRenderers = []Renderer{
	TextRenderer{},
	CSVRenderer{},
	JSONRenderer{},
}

// GetRendererByName fetches a registered renderer.
func GetRendererByName(name string) Renderer {
	n := NormalizeRendererName(name)
	for _, r := range builtInRenderers {
		if r.Name() == name {
			return r
		}
	}
	// try normalized name
	for _, r := range builtInRenderers {
		if r.Name() == n {
			return r
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for renderer names.
var aliasMap = map[string]string{
	"txt":         "text",
	"table":       "text",
	"plain":       "text",
	"csv-values":  "csv",
	"json-pretty": "json",
}

// NormalizeRendererName lowers and resolves aliases.
func NormalizeRendererName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableRendererNames returns the canonical renderer names.
func AvailableRendererNames() []string {
	names := make([]string, 0, len(builtInRenderers))
	for _, r := range builtInRenderers {
		names = append(names, r.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableRendererAliases returns the supported alias keys.
func AvailableRendererAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// extensionFor maps a canonical renderer name to a file extension.
func extensionFor(name string) string {
	if name == "text" {
		return "txt"
	}
	return name
}

// unknownFormatError lists what is available so every entry point guides the
// user identically.
func unknownFormatError(format string) error {
	return fmt.Errorf("unknown output format %q (available: %s; aliases: %s)",
		format,
		strings.Join(AvailableRendererNames(), ", "),
		strings.Join(AvailableRendererAliases(), ", "))
}

// Render runs the named renderer and returns its bytes without touching the
// filesystem.
func Render(set *domain.ValueSet, f *display.Formatter, format string) ([]byte, error) {
	r := GetRendererByName(format)
	if r == nil {
		return nil, unknownFormatError(format)
	}
	return r.Render(set, f)
}

// Generate renders the set under the named renderer and writes the result to
// a timestamped file.
func Generate(set *domain.ValueSet, f *display.Formatter, format string) error {
	r := GetRendererByName(format)
	if r == nil {
		return unknownFormatError(format)
	}
	_, err := WriteRendered(r, set, f, extensionFor(r.Name()))
	return err
}
