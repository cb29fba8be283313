package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// GroceryService accesses the price search and comparison endpoints
type GroceryService struct {
	client *Client
}

// SearchOptions narrows a grocery search
type SearchOptions struct {
	Location string
	MaxPrice float64
	Stores   []string
	Organic  bool
	Sort     string // price, rating or availability
	Store    string // restrict to a single retailer
}

// Search searches for an ingredient across retailers
func (s *GroceryService) Search(ctx context.Context, query string, opts *SearchOptions) (*SearchResult, error) {
	values := url.Values{}
	values.Set("q", query)
	if opts != nil {
		if opts.Location != "" {
			values.Set("location", opts.Location)
		}
		if opts.MaxPrice > 0 {
			values.Set("max_price", strconv.FormatFloat(opts.MaxPrice, 'f', 2, 64))
		}
		if len(opts.Stores) > 0 {
			values.Set("stores", strings.Join(opts.Stores, ","))
		}
		if opts.Organic {
			values.Set("organic", "true")
		}
		if opts.Sort != "" {
			values.Set("sort", opts.Sort)
		}
		if opts.Store != "" {
			values.Set("store", opts.Store)
		}
	}

	var result SearchResult
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/grocery/search", values, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Compare builds a price comparison for one ingredient
func (s *GroceryService) Compare(ctx context.Context, ingredient, location string) (*PriceComparison, error) {
	values := url.Values{}
	values.Set("ingredient", ingredient)
	if location != "" {
		values.Set("location", location)
	}

	var comparison PriceComparison
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/grocery/compare", values, nil, &comparison); err != nil {
		return nil, err
	}
	return &comparison, nil
}

// Stores lists stores serving a location
func (s *GroceryService) Stores(ctx context.Context, location string) ([]Store, error) {
	values := url.Values{}
	if location != "" {
		values.Set("location", location)
	}

	var stores []Store
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/grocery/stores", values, nil, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}
