package domain

import "strings"

// NormalizeIdentifier trims leading/trailing whitespace. No other normalization is applied.
func NormalizeIdentifier(s string) Identifier {
	return Identifier(strings.TrimSpace(s))
}

// NormalizeCell trims a tabular cell value. Internal whitespace is preserved.
func NormalizeCell(s string) string {
	return strings.TrimSpace(s)
}
