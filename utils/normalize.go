package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeRegionName trims the surrounding whitespace of a region name.
// Accents are kept: the boundary document's gov_name_f values carry them,
// and exact names are the primary join key.
func NormalizeRegionName(name string) string {
	return strings.TrimSpace(name)
}

// FoldRegionName lowercases a region name and strips diacritics, so that
// "Gabès" and "gabes" compare equal. Used as the fallback join key when an
// exact match fails, and for suggestion lookups.
func FoldRegionName(name string) string {
	folded, _, err := transform.String(accentStripper, NormalizeRegionName(name))
	if err != nil {
		return strings.ToLower(NormalizeRegionName(name))
	}
	return strings.ToLower(folded)
}

// SameRegion reports whether two region names refer to the same governorate,
// comparing exact normalized names first and accent-folded names second.
func SameRegion(a, b string) bool {
	if NormalizeRegionName(a) == NormalizeRegionName(b) {
		return true
	}
	return FoldRegionName(a) == FoldRegionName(b)
}
