package providers

import (
	"strconv"
	"strings"
	"unicode"
)

// unitPatterns are checked in order; more specific substrings first so
// "kg" wins over "g" and "ml" over "l"
var unitPatterns = []struct {
	match []string
	unit  string
}{
	{[]string{"lb", "pound"}, "lb"},
	{[]string{"oz", "ounce"}, "oz"},
	{[]string{"gal", "gallon"}, "gal"},
	{[]string{"qt", "quart"}, "qt"},
	{[]string{"pt", "pint"}, "pt"},
	{[]string{"cup"}, "cup"},
	{[]string{"kg", "kilogram"}, "kg"},
	{[]string{"ml", "milliliter"}, "ml"},
	{[]string{"g", "gram"}, "g"},
	{[]string{"l", "liter"}, "l"},
}

// ExtractUnit best-effort parses a measurement unit out of an item's
// name and size strings. Unrecognized items default to "each".
func ExtractUnit(name, size string) string {
	text := strings.ToLower(name + " " + size)

	for _, p := range unitPatterns {
		for _, m := range p.match {
			if strings.Contains(text, m) {
				return p.unit
			}
		}
	}
	return "each"
}

// UnitPrice derives a per-unit price from the size string's leading
// number. When the size has no usable quantity the item price is
// returned unchanged.
func UnitPrice(price float64, size string) float64 {
	size = strings.TrimSpace(size)

	end := 0
	for end < len(size) {
		c := rune(size[end])
		if !unicode.IsDigit(c) && c != '.' {
			break
		}
		end++
	}
	if end == 0 {
		return price
	}

	qty, err := strconv.ParseFloat(size[:end], 64)
	if err != nil || qty <= 0 {
		return price
	}
	return price / qty
}
