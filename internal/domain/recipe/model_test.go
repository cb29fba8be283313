package recipe

import (
	"math"
	"testing"
)

func TestTotalTime(t *testing.T) {
	r := Recipe{PrepTime: 15, CookTime: 25}
	if got := r.TotalTime(); got != 40 {
		t.Errorf("TotalTime() = %d, want 40", got)
	}
}

func TestScaledIngredients(t *testing.T) {
	r := Recipe{
		Servings: 4,
		Ingredients: []Ingredient{
			{Name: "chicken", Amount: 1, Unit: "lb"},
			{Name: "rice", Amount: 2, Unit: "cup"},
		},
	}

	t.Run("scale up", func(t *testing.T) {
		out := r.ScaledIngredients(6)
		if math.Abs(out[0].Amount-1.5) > 1e-9 || math.Abs(out[1].Amount-3) > 1e-9 {
			t.Errorf("amounts = %v, %v", out[0].Amount, out[1].Amount)
		}
		// Original is untouched
		if r.Ingredients[0].Amount != 1 {
			t.Error("scaling mutated the recipe")
		}
	})

	t.Run("same servings copies unchanged", func(t *testing.T) {
		out := r.ScaledIngredients(4)
		if out[0].Amount != 1 || out[1].Amount != 2 {
			t.Errorf("amounts = %v, %v", out[0].Amount, out[1].Amount)
		}
	})

	t.Run("invalid servings copies unchanged", func(t *testing.T) {
		out := r.ScaledIngredients(0)
		if out[0].Amount != 1 {
			t.Errorf("amount = %v", out[0].Amount)
		}
	})

	t.Run("recipe without servings copies unchanged", func(t *testing.T) {
		bare := Recipe{Ingredients: []Ingredient{{Name: "salt", Amount: 1}}}
		out := bare.ScaledIngredients(8)
		if out[0].Amount != 1 {
			t.Errorf("amount = %v", out[0].Amount)
		}
	})
}
