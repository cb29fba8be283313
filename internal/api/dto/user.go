package dto

// UpdatePreferencesRequest replaces the caller's saved preferences
type UpdatePreferencesRequest struct {
	Cuisines            []string `json:"cuisines,omitempty"`
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`
	SkillLevel          string   `json:"skill_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	CookingTime         string   `json:"cooking_time,omitempty" validate:"omitempty,oneof=quick medium long"`
	FavoriteIngredients []string `json:"favorite_ingredients,omitempty"`
	Allergies           []string `json:"allergies,omitempty"`
	DislikedIngredients []string `json:"disliked_ingredients,omitempty"`
}
