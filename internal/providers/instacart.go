package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/umamihq/umami-backend/internal/config"
	"github.com/umamihq/umami-backend/internal/domain/grocery"
	"github.com/umamihq/umami-backend/internal/pkg/errors"
	"github.com/umamihq/umami-backend/internal/pkg/logger"
	"github.com/umamihq/umami-backend/internal/pkg/metrics"
)

const instacartKey = "instacart"

// InstacartAPI adapts the Instacart marketplace API. Any credential or
// transport failure degrades to the deterministic mock fixture instead
// of surfacing an error; price hints are not critical path.
type InstacartAPI struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewInstacartAPI creates an Instacart adapter
func NewInstacartAPI(cfg config.RetailerConfig, log *logger.Logger) *InstacartAPI {
	return &InstacartAPI{
		apiKey:  cfg.InstacartAPIKey,
		baseURL: cfg.InstacartBaseURL,
		logger:  log.With("retailer", instacartKey),
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

// Key implements RetailerAPI
func (a *InstacartAPI) Key() string { return instacartKey }

// Name implements RetailerAPI
func (a *InstacartAPI) Name() string { return "Instacart" }

// instacartItem is the retailer's wire shape for a product
type instacartItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Price        float64 `json:"price"`
	Size         string  `json:"size"`
	Availability bool    `json:"availability"`
	StoreID      string  `json:"store_id"`
	ImageURL     string  `json:"image_url"`
	Unit         string  `json:"unit"`
}

// instacartStore is the retailer's wire shape for a store
type instacartStore struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Logo              string  `json:"logo"`
	DeliveryAvailable bool    `json:"delivery_available"`
	PickupAvailable   bool    `json:"pickup_available"`
	DeliveryFee       float64 `json:"delivery_fee"`
	MinimumOrder      float64 `json:"minimum_order"`
}

type instacartResponse struct {
	Items  []instacartItem  `json:"items"`
	Stores []instacartStore `json:"stores"`
}

// SearchItems implements RetailerAPI
func (a *InstacartAPI) SearchItems(ctx context.Context, params grocery.SearchParams) (*grocery.SearchResult, error) {
	if params.Query == "" {
		return nil, errors.BadRequest("search query must not be empty")
	}

	start := time.Now()
	data, outcome := a.fetch(ctx, "/search", searchValues(params))
	elapsed := time.Since(start)
	metrics.RecordRetailerSearch(instacartKey, outcome, elapsed)

	stores := make(map[string]grocery.Store, len(data.Stores))
	for _, s := range data.Stores {
		stores[s.ID] = normalizeInstacartStore(s)
	}

	items := make([]grocery.Item, 0, len(data.Items))
	for _, it := range data.Items {
		items = append(items, a.normalizeItem(it, stores))
	}

	return &grocery.SearchResult{
		Items:        items,
		TotalResults: len(items),
		SearchTime:   float64(elapsed.Milliseconds()),
	}, nil
}

// GetStores implements RetailerAPI
func (a *InstacartAPI) GetStores(ctx context.Context, location string) ([]grocery.Store, error) {
	values := url.Values{}
	values.Set("location", location)

	data, _ := a.fetch(ctx, "/stores", values)

	out := make([]grocery.Store, 0, len(data.Stores))
	for _, s := range data.Stores {
		out = append(out, normalizeInstacartStore(s))
	}
	return out, nil
}

// fetch performs the retailer request, substituting the mock fixture on
// missing credentials or any request failure. The second return value
// is the outcome label: "ok" or "fallback".
func (a *InstacartAPI) fetch(ctx context.Context, endpoint string, values url.Values) (*instacartResponse, string) {
	if a.apiKey == "" {
		metrics.RecordRetailerFallback(instacartKey, "missing_credentials")
		return a.mockResponse(values.Get("q")), "fallback"
	}

	reqURL := a.baseURL + endpoint + "?" + values.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		a.logger.ErrorWithErr(err, "failed to build Instacart request")
		metrics.RecordRetailerFallback(instacartKey, "request_failed")
		return a.mockResponse(values.Get("q")), "fallback"
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.logger.ErrorWithErr(err, "Instacart request failed")
		metrics.RecordRetailerFallback(instacartKey, "request_failed")
		return a.mockResponse(values.Get("q")), "fallback"
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := errors.RetailerAPIError("Instacart", fmt.Errorf("status %d", resp.StatusCode))
		a.logger.ErrorWithErr(err, "Instacart returned non-2xx status")
		metrics.RecordRetailerFallback(instacartKey, "bad_status")
		return a.mockResponse(values.Get("q")), "fallback"
	}

	var data instacartResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		a.logger.ErrorWithErr(err, "failed to decode Instacart response")
		metrics.RecordRetailerFallback(instacartKey, "decode_failed")
		return a.mockResponse(values.Get("q")), "fallback"
	}

	return &data, "ok"
}

// mockResponse is the fixed development fixture: two items and two
// stores, names carrying the query so results stay recognizable.
func (a *InstacartAPI) mockResponse(query string) *instacartResponse {
	if query == "" {
		query = "Organic Chicken Breast"
	}

	return &instacartResponse{
		Items: []instacartItem{
			{
				ID:           "inst_1",
				Name:         query,
				Brand:        "Whole Foods",
				Price:        8.99,
				Size:         "1 lb",
				Availability: true,
				StoreID:      "wf_001",
				ImageURL:     "/api/placeholder/150/150",
				Unit:         "lb",
			},
			{
				ID:           "inst_2",
				Name:         query,
				Brand:        "Safeway",
				Price:        6.99,
				Size:         "1 lb",
				Availability: true,
				StoreID:      "sf_001",
				ImageURL:     "/api/placeholder/150/150",
				Unit:         "lb",
			},
		},
		Stores: []instacartStore{
			{
				ID:                "wf_001",
				Name:              "Whole Foods Market",
				Logo:              "/api/placeholder/50/50",
				DeliveryAvailable: true,
				PickupAvailable:   true,
				DeliveryFee:       3.99,
				MinimumOrder:      35,
			},
			{
				ID:                "sf_001",
				Name:              "Safeway",
				Logo:              "/api/placeholder/50/50",
				DeliveryAvailable: true,
				PickupAvailable:   true,
				DeliveryFee:       2.99,
				MinimumOrder:      25,
			},
		},
	}
}

func (a *InstacartAPI) normalizeItem(it instacartItem, stores map[string]grocery.Store) grocery.Item {
	store, ok := stores[it.StoreID]
	if !ok {
		store = grocery.Store{
			ID:                it.StoreID,
			Name:              "Unknown Store",
			Type:              grocery.StoreTypeGrocery,
			DeliveryAvailable: true,
			PickupAvailable:   true,
		}
	}

	availability := grocery.AvailabilityOutOfStock
	if it.Availability {
		availability = grocery.AvailabilityInStock
	}

	unit := it.Unit
	if unit == "" {
		unit = ExtractUnit(it.Name, it.Size)
	}

	return grocery.Item{
		ID:           it.ID,
		Name:         it.Name,
		Brand:        it.Brand,
		Size:         it.Size,
		Price:        it.Price,
		Currency:     "USD",
		Availability: availability,
		Store:        store,
		ImageURL:     it.ImageURL,
		Unit:         unit,
		UnitPrice:    UnitPrice(it.Price, it.Size),
	}
}

func normalizeInstacartStore(s instacartStore) grocery.Store {
	return grocery.Store{
		ID:                    s.ID,
		Name:                  s.Name,
		Logo:                  s.Logo,
		Type:                  grocery.StoreTypeGrocery,
		DeliveryAvailable:     s.DeliveryAvailable,
		PickupAvailable:       s.PickupAvailable,
		MinimumOrder:          s.MinimumOrder,
		DeliveryFee:           s.DeliveryFee,
		EstimatedDeliveryTime: "1-2 hours",
	}
}

func searchValues(params grocery.SearchParams) url.Values {
	values := url.Values{}
	values.Set("q", params.Query)
	if params.Location != "" {
		values.Set("location", params.Location)
	}
	if params.MaxPrice > 0 {
		values.Set("max_price", strconv.FormatFloat(params.MaxPrice, 'f', 2, 64))
	}
	if len(params.Stores) > 0 {
		values.Set("stores", strings.Join(params.Stores, ","))
	}
	if params.Organic {
		values.Set("organic", "true")
	}
	if params.Sort != "" {
		values.Set("sort", string(params.Sort))
	}
	return values
}
