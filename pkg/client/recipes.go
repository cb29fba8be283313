package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// RecipeService accesses the recipe catalog and recommendation endpoints
type RecipeService struct {
	client *Client
}

// RecipeFilter narrows a recipe listing
type RecipeFilter struct {
	Query      string
	Cuisine    string
	Dietary    []string
	Difficulty string
	MaxTime    int
	Limit      int
}

// List fetches recipes matching the filter
func (s *RecipeService) List(ctx context.Context, filter *RecipeFilter) ([]Recipe, error) {
	values := url.Values{}
	if filter != nil {
		if filter.Query != "" {
			values.Set("q", filter.Query)
		}
		if filter.Cuisine != "" {
			values.Set("cuisine", filter.Cuisine)
		}
		if len(filter.Dietary) > 0 {
			values.Set("dietary", strings.Join(filter.Dietary, ","))
		}
		if filter.Difficulty != "" {
			values.Set("difficulty", filter.Difficulty)
		}
		if filter.MaxTime > 0 {
			values.Set("max_time", strconv.Itoa(filter.MaxTime))
		}
		if filter.Limit > 0 {
			values.Set("limit", strconv.Itoa(filter.Limit))
		}
	}

	var recipes []Recipe
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/recipes", values, nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// Get fetches a recipe by slug
func (s *RecipeService) Get(ctx context.Context, slug string) (*Recipe, error) {
	var recipe Recipe
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/recipes/"+url.PathEscape(slug), nil, nil, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Trending fetches the trending feed
func (s *RecipeService) Trending(ctx context.Context, limit int) ([]Recipe, error) {
	values := url.Values{}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}

	var recipes []Recipe
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/recipes/trending", values, nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// Recommendations fetches ranked recipes; personalized when the client
// carries a token
func (s *RecipeService) Recommendations(ctx context.Context, limit int) ([]Recipe, error) {
	values := url.Values{}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}

	var recipes []Recipe
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/recommendations", values, nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}
