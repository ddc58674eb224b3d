package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tradingplatform/display-formatter/internal/domain"
	"github.com/tradingplatform/display-formatter/pkg/display"
	"github.com/tradingplatform/display-formatter/pkg/locale"
)

// Profile is a YAML-loadable formatting profile. Absent fields keep the
// locale defaults, so an empty profile reproduces the standard en-US
// behavior exactly.
type Profile struct {
	Locale            string `yaml:"locale"`
	CurrencySymbol    string `yaml:"currency_symbol"`
	CurrencyDigits    *int   `yaml:"currency_digits"`
	PercentDigits     *int   `yaml:"percent_digits"`
	NumberMaxFraction *int   `yaml:"number_max_fraction"`
	DateLayout        string `yaml:"date_layout"`
	ExplicitPlus      *bool  `yaml:"explicit_plus"`
}

// Loader handles parsing of profile and value files
type Loader struct{}

// NewLoader creates a new loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadProfile loads a formatting profile from a YAML file
func (l *Loader) LoadProfile(filename string) (*Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := l.ValidateProfile(&p); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &p, nil
}

// ValidateProfile validates a loaded profile
func (l *Loader) ValidateProfile(p *Profile) error {
	if p.Locale != "" {
		if _, ok := locale.ByTag(p.Locale); !ok {
			return fmt.Errorf("unknown locale %q (known: %v)", p.Locale, locale.Tags())
		}
	}
	if p.CurrencyDigits != nil && (*p.CurrencyDigits < 0 || *p.CurrencyDigits > 18) {
		return fmt.Errorf("currency_digits must be between 0 and 18")
	}
	if p.PercentDigits != nil && (*p.PercentDigits < 0 || *p.PercentDigits > 18) {
		return fmt.Errorf("percent_digits must be between 0 and 18")
	}
	if p.NumberMaxFraction != nil && (*p.NumberMaxFraction < 0 || *p.NumberMaxFraction > 18) {
		return fmt.Errorf("number_max_fraction must be between 0 and 18")
	}
	return nil
}

// Formatter builds a display formatter from the profile, starting from the
// locale defaults and applying the overrides that are set.
func (p *Profile) Formatter() (*display.Formatter, error) {
	loc := locale.EnUS
	if p.Locale != "" {
		l, ok := locale.ByTag(p.Locale)
		if !ok {
			return nil, fmt.Errorf("unknown locale %q", p.Locale)
		}
		loc = l
	}
	if p.CurrencySymbol != "" {
		loc.Currency.Symbol = p.CurrencySymbol
	}

	f := display.New(loc)
	if p.CurrencyDigits != nil {
		f.CurrencyDigits = *p.CurrencyDigits
	}
	if p.PercentDigits != nil {
		f.PercentDigits = *p.PercentDigits
	}
	if p.NumberMaxFraction != nil {
		f.NumberMaxFraction = *p.NumberMaxFraction
	}
	if p.DateLayout != "" {
		f.DateLayout = p.DateLayout
	}
	if p.ExplicitPlus != nil {
		f.ExplicitPlus = *p.ExplicitPlus
	}
	return f, nil
}

// LoadValueSet loads a batch of raw values from a YAML file
func (l *Loader) LoadValueSet(filename string) (*domain.ValueSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var set domain.ValueSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("value set validation failed: %w", err)
	}

	return &set, nil
}

// ExampleValueSet creates an example batch covering every value kind
func (l *Loader) ExampleValueSet() *domain.ValueSet {
	return &domain.ValueSet{
		Title: "Portfolio Snapshot",
		Values: []domain.Value{
			{Label: "Total Value", Kind: domain.KindCurrency, Number: 125430.50},
			{Label: "Day Change", Kind: domain.KindCurrency, Number: -842.10},
			{Label: "Day Change %", Kind: domain.KindPercent, Number: -0.67},
			{Label: "Total Return %", Kind: domain.KindPercent, Number: 12.345},
			{Label: "Shares Held", Kind: domain.KindNumber, Number: 1250},
			{Label: "Volume", Kind: domain.KindNumber, Number: 48123901},
			{Label: "Opened", Kind: domain.KindDate, Date: "2024-01-05"},
			{Label: "Last Trade", Kind: domain.KindDate, Date: "2026-08-28T14:32:05Z"},
		},
	}
}
