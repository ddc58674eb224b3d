package display

// FormatCurrency formats a number as US dollars with 2 decimals: "$1,234.56".
// Kept as package-level helpers so callers without a custom profile can
// format without constructing anything.
func FormatCurrency(v float64) string { return std.Currency(v) }

// FormatPercent formats a percentage with 2 decimals and an explicit sign:
// "+3.50%", "-2.10%".
func FormatPercent(v float64) string { return std.Percent(v) }

// FormatNumber formats a number with comma grouping: "1,234,567".
func FormatNumber(v float64) string { return std.Number(v) }

// FormatDate renders a parseable date string as "Jan 5, 2024".
func FormatDate(s string) string { return std.Date(s) }
