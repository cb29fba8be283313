package user

import "time"

// SkillLevel is the user's self-declared cooking skill
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// CookingTime buckets how long the user wants to spend cooking
type CookingTime string

const (
	CookingTimeQuick  CookingTime = "quick"  // <= 30 minutes
	CookingTimeMedium CookingTime = "medium" // <= 60 minutes
	CookingTimeLong   CookingTime = "long"   // > 60 minutes
)

// DietaryRestrictions recognized by the platform
var DietaryRestrictions = []string{
	"vegetarian", "vegan", "gluten-free", "dairy-free",
	"keto", "paleo", "low-carb", "low-sodium",
}

// User is an account record; identity is managed by the external
// auth provider, this service only mirrors profile data
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Avatar      string    `json:"avatar,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Preferences holds the signals the recommendation ranker consumes
type Preferences struct {
	UserID              string      `json:"user_id"`
	Cuisines            []string    `json:"cuisines"`
	DietaryRestrictions []string    `json:"dietary_restrictions"`
	SkillLevel          SkillLevel  `json:"skill_level"`
	CookingTime         CookingTime `json:"cooking_time"`
	FavoriteIngredients []string    `json:"favorite_ingredients,omitempty"`
	Allergies           []string    `json:"allergies,omitempty"`
	DislikedIngredients []string    `json:"disliked_ingredients,omitempty"`
	UpdatedAt           time.Time   `json:"updated_at"`
}
