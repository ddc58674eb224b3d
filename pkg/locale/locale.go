// Package locale describes the regional display conventions the formatters
// depend on: grouping, decimal marks, and currency metadata.
package locale

// Currency represents a monetary unit with its display symbol and standard
// number of decimal places.
type Currency struct {
	Code     string // 3-letter ISO 4217 code (e.g., "USD")
	Symbol   string // display symbol (e.g., "$")
	Decimals int    // number of fraction digits (0-18)
}

// Common currency instances
var (
	USD = Currency{"USD", "$", 2} // US Dollar
	EUR = Currency{"EUR", "€", 2} // Euro
	GBP = Currency{"GBP", "£", 2} // British Pound
	JPY = Currency{"JPY", "¥", 0} // Japanese Yen
)

// IsValid checks if the currency is valid.
func (c Currency) IsValid() bool {
	if c.Decimals < 0 || c.Decimals > 18 {
		return false
	}
	if c.Symbol == "" {
		return false
	}
	return len(c.Code) == 3 &&
		c.Code[0] >= 'A' && c.Code[0] <= 'Z' &&
		c.Code[1] >= 'A' && c.Code[1] <= 'Z' &&
		c.Code[2] >= 'A' && c.Code[2] <= 'Z'
}

// String returns the currency code
func (c Currency) String() string { return c.Code }

// Locale is an immutable description of regional number and date display
// conventions. Values are plain data and safe for concurrent reads.
type Locale struct {
	Tag        string   // BCP 47 tag, e.g. "en-US"
	Group      string   // thousands grouping separator
	Decimal    string   // decimal mark
	Currency   Currency // default currency for monetary display
	DateLayout string   // reference-time layout for human-readable dates
}

// EnUS is the default locale for all formatters: comma grouping, period
// decimal mark, US dollars, "Jan 5, 2024" style dates.
var EnUS = Locale{
	Tag:        "en-US",
	Group:      ",",
	Decimal:    ".",
	Currency:   USD,
	DateLayout: "Jan 2, 2006",
}

// byTag indexes the locales available to configuration lookup.
var byTag = map[string]Locale{
	"en-US": EnUS,
}

// ByTag resolves a BCP 47 tag to a known locale.
func ByTag(tag string) (Locale, bool) {
	l, ok := byTag[tag]
	return l, ok
}

// Tags returns the tags of all known locales.
func Tags() []string {
	tags := make([]string, 0, len(byTag))
	for tag := range byTag {
		tags = append(tags, tag)
	}
	return tags
}
