package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/umamihq/umami-backend/internal/config"
	"github.com/umamihq/umami-backend/internal/domain/grocery"
	"github.com/umamihq/umami-backend/internal/pkg/errors"
	"github.com/umamihq/umami-backend/internal/pkg/logger"
	"github.com/umamihq/umami-backend/internal/pkg/metrics"
)

const walmartKey = "walmart"

// walmartStore is the single static storefront all Walmart items map to
var walmartStore = grocery.Store{
	ID:                    walmartKey,
	Name:                  "Walmart",
	Logo:                  "/api/placeholder/50/50",
	Type:                  grocery.StoreTypeWarehouse,
	DeliveryAvailable:     true,
	PickupAvailable:       true,
	MinimumOrder:          35,
	DeliveryFee:           9.95,
	EstimatedDeliveryTime: "1-3 days",
}

// walmartCategories maps query keywords to Walmart category IDs;
// checked in order so multi-keyword queries resolve deterministically
var walmartCategories = []struct {
	keyword string
	id      string
}{
	{"chicken", "976759"},
	{"beef", "976760"},
	{"pork", "976761"},
	{"fish", "976762"},
	{"vegetables", "976781"},
	{"fruits", "976782"},
	{"dairy", "976783"},
	{"bread", "976784"},
}

// WalmartAPI adapts the Walmart product search API. Like the Instacart
// adapter it degrades to a deterministic mock fixture on any failure.
type WalmartAPI struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewWalmartAPI creates a Walmart adapter
func NewWalmartAPI(cfg config.RetailerConfig, log *logger.Logger) *WalmartAPI {
	return &WalmartAPI{
		apiKey:  cfg.WalmartAPIKey,
		baseURL: cfg.WalmartBaseURL,
		logger:  log.With("retailer", walmartKey),
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

// Key implements RetailerAPI
func (a *WalmartAPI) Key() string { return walmartKey }

// Name implements RetailerAPI
func (a *WalmartAPI) Name() string { return "Walmart" }

// walmartItem is the retailer's wire shape for a product
type walmartItem struct {
	ItemID           string  `json:"itemId"`
	Name             string  `json:"name"`
	ShortDescription string  `json:"shortDescription"`
	SalePrice        float64 `json:"salePrice"`
	MSRP             float64 `json:"msrp"`
	BrandName        string  `json:"brandName"`
	ThumbnailImage   string  `json:"thumbnailImage"`
	Stock            string  `json:"stock"`
	Size             string  `json:"size"`
	Rating           float64 `json:"customerRating"`
	ReviewCount      int     `json:"numReviews"`
}

type walmartResponse struct {
	Items        []walmartItem `json:"items"`
	TotalResults int           `json:"totalResults"`
}

// SearchItems implements RetailerAPI
func (a *WalmartAPI) SearchItems(ctx context.Context, params grocery.SearchParams) (*grocery.SearchResult, error) {
	if params.Query == "" {
		return nil, errors.BadRequest("search query must not be empty")
	}

	values := url.Values{}
	values.Set("query", params.Query)
	values.Set("categoryId", categoryID(params.Query))
	values.Set("numItems", "25")
	values.Set("sort", mapSort(params.Sort))

	start := time.Now()
	data, outcome := a.fetch(ctx, "/search", values)
	elapsed := time.Since(start)
	metrics.RecordRetailerSearch(walmartKey, outcome, elapsed)

	items := make([]grocery.Item, 0, len(data.Items))
	for _, it := range data.Items {
		items = append(items, normalizeWalmartItem(it))
	}

	totalResults := data.TotalResults
	if totalResults == 0 {
		totalResults = len(items)
	}

	return &grocery.SearchResult{
		Items:        items,
		TotalResults: totalResults,
		SearchTime:   float64(elapsed.Milliseconds()),
		Suggestions:  suggestionsFor(params.Query),
	}, nil
}

// GetStores implements RetailerAPI. Walmart has no per-location store
// API in this integration; the static storefront is always returned.
func (a *WalmartAPI) GetStores(ctx context.Context, location string) ([]grocery.Store, error) {
	return []grocery.Store{walmartStore}, nil
}

// fetch performs the retailer request with mock fallback, mirroring the
// Instacart adapter's "always degrade, never hard-fail" policy
func (a *WalmartAPI) fetch(ctx context.Context, endpoint string, values url.Values) (*walmartResponse, string) {
	if a.apiKey == "" {
		metrics.RecordRetailerFallback(walmartKey, "missing_credentials")
		return a.mockResponse(values.Get("query")), "fallback"
	}

	values.Set("apiKey", a.apiKey)
	values.Set("format", "json")

	reqURL := a.baseURL + endpoint + "?" + values.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		a.logger.ErrorWithErr(err, "failed to build Walmart request")
		metrics.RecordRetailerFallback(walmartKey, "request_failed")
		return a.mockResponse(values.Get("query")), "fallback"
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.logger.ErrorWithErr(err, "Walmart request failed")
		metrics.RecordRetailerFallback(walmartKey, "request_failed")
		return a.mockResponse(values.Get("query")), "fallback"
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := errors.RetailerAPIError("Walmart", fmt.Errorf("status %d", resp.StatusCode))
		a.logger.ErrorWithErr(err, "Walmart returned non-2xx status")
		metrics.RecordRetailerFallback(walmartKey, "bad_status")
		return a.mockResponse(values.Get("query")), "fallback"
	}

	var data walmartResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		a.logger.ErrorWithErr(err, "failed to decode Walmart response")
		metrics.RecordRetailerFallback(walmartKey, "decode_failed")
		return a.mockResponse(values.Get("query")), "fallback"
	}

	return &data, "ok"
}

// mockResponse is the fixed development fixture: a value-brand item and
// an organic item, both interpolating the query into their names
func (a *WalmartAPI) mockResponse(query string) *walmartResponse {
	if query == "" {
		query = "chicken breast"
	}

	return &walmartResponse{
		Items: []walmartItem{
			{
				ItemID:           "wm_12345",
				Name:             "Great Value " + query,
				ShortDescription: "Fresh " + query + " - Value Pack",
				SalePrice:        4.99,
				MSRP:             6.99,
				BrandName:        "Great Value",
				ThumbnailImage:   "/api/placeholder/150/150",
				Stock:            "Available",
				Size:             "2.5 lb",
				Rating:           4.2,
				ReviewCount:      512,
			},
			{
				ItemID:           "wm_12346",
				Name:             "Organic " + query,
				ShortDescription: "Organic " + query + " - Free Range",
				SalePrice:        9.99,
				MSRP:             11.99,
				BrandName:        "Marketside",
				ThumbnailImage:   "/api/placeholder/150/150",
				Stock:            "Available",
				Size:             "1.5 lb",
				Rating:           4.7,
				ReviewCount:      204,
			},
		},
		TotalResults: 2,
	}
}

func normalizeWalmartItem(it walmartItem) grocery.Item {
	size := it.Size
	if size == "" {
		size = "Standard"
	}

	availability := grocery.AvailabilityOutOfStock
	switch it.Stock {
	case "Available":
		availability = grocery.AvailabilityInStock
	case "Limited":
		availability = grocery.AvailabilityLimited
	}

	return grocery.Item{
		ID:           it.ItemID,
		Name:         it.Name,
		Brand:        it.BrandName,
		Size:         size,
		Price:        it.SalePrice,
		Currency:     "USD",
		Availability: availability,
		Store:        walmartStore,
		ImageURL:     it.ThumbnailImage,
		Rating:       it.Rating,
		ReviewCount:  it.ReviewCount,
		Unit:         ExtractUnit(it.Name, it.Size),
		UnitPrice:    UnitPrice(it.SalePrice, it.Size),
	}
}

func categoryID(query string) string {
	lower := strings.ToLower(query)
	for _, c := range walmartCategories {
		if strings.Contains(lower, c.keyword) {
			return c.id
		}
	}
	// Meat category is the catch-all default
	return "976759"
}

func mapSort(sort grocery.SortMode) string {
	switch sort {
	case grocery.SortByPrice:
		return "price_low"
	case grocery.SortByRating:
		return "best_match"
	default:
		return "relevance"
	}
}

func suggestionsFor(query string) []string {
	prefixes := []string{"organic", "fresh", "frozen"}
	out := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		out = append(out, p+" "+query)
	}
	return out
}
