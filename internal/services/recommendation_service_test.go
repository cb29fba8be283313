package services

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/umamihq/umami-backend/internal/domain/recipe"
	"github.com/umamihq/umami-backend/internal/domain/user"
	"github.com/umamihq/umami-backend/internal/testutil"
)

func samplePrefs() *user.Preferences {
	return &user.Preferences{
		UserID:              "u1",
		Cuisines:            []string{"italian", "thai"},
		DietaryRestrictions: []string{"vegetarian"},
		SkillLevel:          user.SkillIntermediate,
		CookingTime:         user.CookingTimeQuick,
	}
}

func TestScore_FullMatch(t *testing.T) {
	r := &recipe.Recipe{
		ID:          "r1",
		Cuisine:     "italian",
		DietaryTags: []string{"vegetarian", "gluten-free"},
		Difficulty:  recipe.DifficultyIntermediate,
		PrepTime:    10,
		CookTime:    20,
		Rating:      4.5,
		ReviewCount: 100,
	}

	got := Score(r, samplePrefs())
	want := 3 + 2 + 2 + 1 + 0.5*4.5 + 0.2*math.Log(101)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Score() = %v, want %v", got, want)
	}
}

func TestScore_Components(t *testing.T) {
	base := recipe.Recipe{
		ID:       "r1",
		PrepTime: 50,
		CookTime: 40, // outside the quick bucket
	}

	tests := []struct {
		name   string
		mutate func(*recipe.Recipe)
		want   float64
	}{
		{"no matches", func(r *recipe.Recipe) {}, 0},
		{"cuisine only", func(r *recipe.Recipe) { r.Cuisine = "thai" }, 3},
		{"dietary only", func(r *recipe.Recipe) { r.DietaryTags = []string{"vegan", "vegetarian"} }, 2},
		{"difficulty only", func(r *recipe.Recipe) { r.Difficulty = recipe.DifficultyIntermediate }, 2},
		{"time only", func(r *recipe.Recipe) { r.PrepTime, r.CookTime = 10, 15 }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base
			tt.mutate(&r)
			got := Score(&r, samplePrefs())
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore_NoPreferences(t *testing.T) {
	older := &recipe.Recipe{
		ID:          "old",
		Rating:      4.5,
		PublishedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := &recipe.Recipe{
		ID:          "new",
		Rating:      4.5,
		PublishedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	if Score(newer, nil) <= Score(older, nil) {
		t.Error("newer recipe of equal rating should score higher without preferences")
	}

	better := &recipe.Recipe{
		ID:          "better",
		Rating:      4.9,
		PublishedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if Score(better, nil) <= Score(newer, nil) {
		t.Error("rating should dominate the recency bonus")
	}
}

func TestTrendingScore(t *testing.T) {
	loneFive := &recipe.Recipe{Rating: 5.0, ReviewCount: 1}
	popular := &recipe.Recipe{Rating: 4.5, ReviewCount: 300}

	if TrendingScore(popular) <= TrendingScore(loneFive) {
		t.Error("well-reviewed 4.5 should outrank a lone 5.0")
	}

	if got := TrendingScore(&recipe.Recipe{Rating: 4.0, ReviewCount: 0}); got != 0 {
		t.Errorf("zero reviews should score 0, got %v", got)
	}
}

func TestRank_StableOnTies(t *testing.T) {
	recipes := []recipe.Recipe{
		{ID: "a", Cuisine: "french"},
		{ID: "b", Cuisine: "french"},
		{ID: "c", Cuisine: "italian"},
	}

	ranked := Rank(recipes, samplePrefs())
	if ranked[0].ID != "c" {
		t.Errorf("top recipe = %s, want c", ranked[0].ID)
	}
	// a and b tie at zero; catalog order holds
	if ranked[1].ID != "a" || ranked[2].ID != "b" {
		t.Errorf("tie order = %s, %s; want a, b", ranked[1].ID, ranked[2].ID)
	}
}

func TestRecommendForUser_Limit(t *testing.T) {
	repo := &testutil.MockRecipeRepository{
		Recipes: []recipe.Recipe{
			{ID: "a", Rating: 3.0},
			{ID: "b", Rating: 5.0},
			{ID: "c", Rating: 4.0},
		},
	}
	svc := NewRecommendationService(repo, testutil.NewTestLogger())

	out, err := svc.RecommendForUser(context.Background(), nil, 2)
	if err != nil {
		t.Fatalf("RecommendForUser() error = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d recipes, want 2", len(out))
	}
	if out[0].ID != "b" || out[1].ID != "c" {
		t.Errorf("order = %s, %s; want b, c", out[0].ID, out[1].ID)
	}
}

func TestTrending_Limit(t *testing.T) {
	repo := &testutil.MockRecipeRepository{
		Recipes: []recipe.Recipe{
			{ID: "a", Rating: 4.0, ReviewCount: 10},
			{ID: "b", Rating: 4.5, ReviewCount: 500},
			{ID: "c", Rating: 5.0, ReviewCount: 2},
		},
	}
	svc := NewRecommendationService(repo, testutil.NewTestLogger())

	out, err := svc.Trending(context.Background(), 1)
	if err != nil {
		t.Fatalf("Trending() error = %v", err)
	}
	if len(out) != 1 || out[0].ID != "b" {
		t.Errorf("trending top = %+v, want b", out)
	}
}
