package providers

import (
	"math"
	"testing"
)

func TestExtractUnit(t *testing.T) {
	tests := []struct {
		name     string
		itemName string
		size     string
		want     string
	}{
		{"pound from size", "Chicken Breast", "1 lb", "lb"},
		{"pound spelled out", "Ground Beef", "2 pounds", "lb"},
		{"ounce", "Cheddar Cheese", "8 oz", "oz"},
		{"gallon", "Whole Milk", "1 gal", "gal"},
		{"kilogram before gram", "Rice", "2 kg", "kg"},
		{"milliliter before liter", "Vanilla Extract", "50 ml", "ml"},
		{"gram", "Saffron", "5 gram jar", "g"},
		{"unit from name", "Butter 1 lb block", "", "lb"},
		{"no unit", "Avocado", "", "each"},
		{"standard size", "Paper Towels", "Standard", "each"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractUnit(tt.itemName, tt.size)
			if got != tt.want {
				t.Errorf("ExtractUnit(%q, %q) = %q, want %q", tt.itemName, tt.size, got, tt.want)
			}
		})
	}
}

func TestUnitPrice(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		size  string
		want  float64
	}{
		{"whole quantity", 10.0, "2 lb", 5.0},
		{"fractional quantity", 4.99, "2.5 lb", 1.996},
		{"unit quantity", 8.99, "1 lb", 8.99},
		{"no leading number", 7.50, "Standard", 7.50},
		{"empty size", 3.25, "", 3.25},
		{"zero quantity", 3.25, "0 oz", 3.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnitPrice(tt.price, tt.size)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("UnitPrice(%v, %q) = %v, want %v", tt.price, tt.size, got, tt.want)
			}
		})
	}
}
