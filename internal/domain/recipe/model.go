package recipe

import "time"

// Difficulty mirrors the user skill levels
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Ingredient is one line of a recipe's ingredient list
type Ingredient struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Notes    string  `json:"notes,omitempty"`
	Optional bool    `json:"optional,omitempty"`
}

// Instruction is one step of a recipe
type Instruction struct {
	Step        int    `json:"step"`
	Description string `json:"description"`
	Duration    int    `json:"duration,omitempty"` // minutes
	Tips        string `json:"tips,omitempty"`
}

// Nutrition holds per-serving nutrition facts
type Nutrition struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"` // grams
	Carbs    float64 `json:"carbs"`   // grams
	Fat      float64 `json:"fat"`     // grams
	Fiber    float64 `json:"fiber"`   // grams
	Sodium   float64 `json:"sodium"`  // mg
}

// Author identifies the recipe author in the CMS
type Author struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
	Verified bool   `json:"verified,omitempty"`
}

// Recipe is the CMS-owned recipe record. It is read-only input for
// this service; the CMS remains the source of truth.
type Recipe struct {
	ID           string        `json:"id"`
	Slug         string        `json:"slug"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Ingredients  []Ingredient  `json:"ingredients,omitempty"`
	Instructions []Instruction `json:"instructions,omitempty"`
	PrepTime     int           `json:"prep_time"` // minutes
	CookTime     int           `json:"cook_time"` // minutes
	Servings     int           `json:"servings,omitempty"`
	Difficulty   Difficulty    `json:"difficulty"`
	Cuisine      string        `json:"cuisine"`
	DietaryTags  []string      `json:"dietary_tags,omitempty"`
	Nutrition    *Nutrition    `json:"nutrition,omitempty"`
	Rating       float64       `json:"rating"`
	ReviewCount  int           `json:"review_count"`
	Author       Author        `json:"author,omitempty"`
	PublishedAt  time.Time     `json:"published_at"`
}

// TotalTime returns prep plus cook time in minutes
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// ScaledIngredients returns the ingredient list scaled to the
// requested number of servings
func (r *Recipe) ScaledIngredients(servings int) []Ingredient {
	if servings <= 0 || r.Servings <= 0 || servings == r.Servings {
		out := make([]Ingredient, len(r.Ingredients))
		copy(out, r.Ingredients)
		return out
	}

	factor := float64(servings) / float64(r.Servings)
	out := make([]Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ing.Amount *= factor
		out[i] = ing
	}
	return out
}

// Filter contains recipe query filters
type Filter struct {
	Query      string
	Cuisine    string
	Dietary    []string
	Difficulty Difficulty
	MaxTime    int // minutes, prep+cook
	Limit      int
}
