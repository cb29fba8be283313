package services

import (
	"context"
	"math"
	"sort"

	"github.com/umamihq/umami-backend/internal/domain/recipe"
	"github.com/umamihq/umami-backend/internal/domain/user"
	"github.com/umamihq/umami-backend/internal/pkg/logger"
)

// RecommendationService ranks CMS recipes against a user's saved
// preferences. Scoring is pure and deterministic: the same catalog and
// preferences always produce the same order.
type RecommendationService struct {
	recipeRepo recipe.Repository
	logger     *logger.Logger
}

// NewRecommendationService creates a recommendation ranker
func NewRecommendationService(recipeRepo recipe.Repository, log *logger.Logger) *RecommendationService {
	return &RecommendationService{
		recipeRepo: recipeRepo,
		logger:     log,
	}
}

// RecommendForUser fetches the catalog and returns the top recipes for
// the given preferences. A nil prefs falls back to a popularity plus
// recency order.
func (s *RecommendationService) RecommendForUser(ctx context.Context, prefs *user.Preferences, limit int) ([]recipe.Recipe, error) {
	recipes, err := s.recipeRepo.List(ctx, recipe.Filter{})
	if err != nil {
		return nil, err
	}

	ranked := Rank(recipes, prefs)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// Trending fetches the catalog and returns the top recipes by review
// volume weighted rating
func (s *RecommendationService) Trending(ctx context.Context, limit int) ([]recipe.Recipe, error) {
	recipes, err := s.recipeRepo.List(ctx, recipe.Filter{})
	if err != nil {
		return nil, err
	}

	ranked := RankTrending(recipes)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// Rank orders recipes by descending preference score. The sort is
// stable, so equally scored recipes keep catalog order.
func Rank(recipes []recipe.Recipe, prefs *user.Preferences) []recipe.Recipe {
	out := make([]recipe.Recipe, len(recipes))
	copy(out, recipes)

	scores := make(map[string]float64, len(out))
	for _, r := range out {
		scores[r.ID] = Score(&r, prefs)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return scores[out[i].ID] > scores[out[j].ID]
	})
	return out
}

// RankTrending orders recipes by descending trending score
func RankTrending(recipes []recipe.Recipe) []recipe.Recipe {
	out := make([]recipe.Recipe, len(recipes))
	copy(out, recipes)

	sort.SliceStable(out, func(i, j int) bool {
		return TrendingScore(&out[i]) > TrendingScore(&out[j])
	})
	return out
}

// Score computes the preference match score for one recipe.
//
// With preferences the components are additive: +3 for a cuisine
// match, +2 for any dietary tag overlap, +2 for a difficulty matching
// the skill level, +1 when total time fits the cooking time bucket,
// plus a popularity term of 0.5*rating + 0.2*ln(reviewCount+1).
//
// Without preferences the score degrades to rating plus a small
// recency bonus so newer recipes of equal rating rank first.
func Score(r *recipe.Recipe, prefs *user.Preferences) float64 {
	if prefs == nil {
		return r.Rating + float64(r.PublishedAt.UnixMilli())/1e12
	}

	score := 0.0

	for _, c := range prefs.Cuisines {
		if c == r.Cuisine {
			score += 3
			break
		}
	}

	if hasOverlap(r.DietaryTags, prefs.DietaryRestrictions) {
		score += 2
	}

	if string(r.Difficulty) == string(prefs.SkillLevel) {
		score += 2
	}

	if timeFits(r.TotalTime(), prefs.CookingTime) {
		score += 1
	}

	score += 0.5*r.Rating + 0.2*math.Log(float64(r.ReviewCount)+1)
	return score
}

// TrendingScore weights rating by review volume so a 4.5 with hundreds
// of reviews beats a lone 5.0
func TrendingScore(r *recipe.Recipe) float64 {
	return r.Rating * math.Log(float64(r.ReviewCount)+1)
}

func hasOverlap(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func timeFits(totalMinutes int, bucket user.CookingTime) bool {
	switch bucket {
	case user.CookingTimeQuick:
		return totalMinutes <= 30
	case user.CookingTimeMedium:
		return totalMinutes <= 60
	case user.CookingTimeLong:
		return totalMinutes > 60
	default:
		return false
	}
}
