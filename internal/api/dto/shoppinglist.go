package dto

// IngredientInput is one ingredient line in a list creation request
type IngredientInput struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name" validate:"required"`
	Amount   float64 `json:"amount,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Notes    string  `json:"notes,omitempty"`
	Optional bool    `json:"optional,omitempty"`
}

// CreateListRequest creates an empty manual list
type CreateListRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// CreateFromIngredientsRequest builds a priced list from raw ingredients
type CreateFromIngredientsRequest struct {
	Name        string            `json:"name,omitempty" validate:"max=255"`
	Ingredients []IngredientInput `json:"ingredients" validate:"required,min=1,dive"`
	Location    string            `json:"location,omitempty"`
}

// CreateFromRecipeRequest builds a priced list from a CMS recipe
type CreateFromRecipeRequest struct {
	RecipeID string `json:"recipe_id,omitempty"`
	Slug     string `json:"slug,omitempty"`
	Servings int    `json:"servings,omitempty" validate:"gte=0"`
	Location string `json:"location,omitempty"`
	Name     string `json:"name,omitempty" validate:"max=255"`
}

// RenameListRequest renames a list
type RenameListRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// ToggleItemRequest marks a list item completed or not
type ToggleItemRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}
