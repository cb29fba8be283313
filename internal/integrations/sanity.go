package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/umamihq/umami-backend/internal/config"
	"github.com/umamihq/umami-backend/internal/domain/recipe"
	"github.com/umamihq/umami-backend/internal/pkg/errors"
)

// SanityClient reads recipe documents from the headless CMS through
// its GROQ query endpoint. It is a read-only collaborator; recipes are
// authored and owned in the CMS studio.
type SanityClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewSanityClient creates a CMS read client
func NewSanityClient(cfg config.CMSConfig) *SanityClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.api.sanity.io/v%s/data/query/%s",
			cfg.ProjectID, cfg.APIVersion, cfg.Dataset)
	}

	return &SanityClient{
		baseURL: baseURL,
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// recipeProjection selects the fields this service consumes
const recipeProjection = `{
  "id": _id, "slug": slug.current, title, description,
  ingredients[]{ "id": _key, name, amount, unit, notes, optional },
  instructions[]{ step, description, duration, tips },
  prepTime, cookTime, servings, difficulty, cuisine, dietaryTags,
  nutrition, rating, reviewCount,
  author->{ "id": _id, name, "avatar": avatar.asset->url, verified },
  "publishedAt": publishedAt
}`

// sanityRecipe is the CMS wire shape for a recipe document
type sanityRecipe struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Ingredients []struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Amount   float64 `json:"amount"`
		Unit     string  `json:"unit"`
		Notes    string  `json:"notes"`
		Optional bool    `json:"optional"`
	} `json:"ingredients"`
	Instructions []struct {
		Step        int    `json:"step"`
		Description string `json:"description"`
		Duration    int    `json:"duration"`
		Tips        string `json:"tips"`
	} `json:"instructions"`
	PrepTime    int               `json:"prepTime"`
	CookTime    int               `json:"cookTime"`
	Servings    int               `json:"servings"`
	Difficulty  string            `json:"difficulty"`
	Cuisine     string            `json:"cuisine"`
	DietaryTags []string          `json:"dietaryTags"`
	Nutrition   *recipe.Nutrition `json:"nutrition"`
	Rating      float64           `json:"rating"`
	ReviewCount int               `json:"reviewCount"`
	Author      struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Avatar   string `json:"avatar"`
		Verified bool   `json:"verified"`
	} `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
}

// GetBySlug implements recipe.Repository
func (c *SanityClient) GetBySlug(ctx context.Context, slug string) (*recipe.Recipe, error) {
	groq := fmt.Sprintf(`*[_type == "recipe" && slug.current == %q][0]%s`, slug, recipeProjection)

	var doc *sanityRecipe
	if err := c.query(ctx, groq, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.NotFound("recipe")
	}
	return normalizeRecipe(doc), nil
}

// GetByID implements recipe.Repository
func (c *SanityClient) GetByID(ctx context.Context, id string) (*recipe.Recipe, error) {
	groq := fmt.Sprintf(`*[_type == "recipe" && _id == %q][0]%s`, id, recipeProjection)

	var doc *sanityRecipe
	if err := c.query(ctx, groq, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.NotFound("recipe")
	}
	return normalizeRecipe(doc), nil
}

// List implements recipe.Repository
func (c *SanityClient) List(ctx context.Context, filter recipe.Filter) ([]recipe.Recipe, error) {
	conditions := []string{`_type == "recipe"`}
	if filter.Cuisine != "" {
		conditions = append(conditions, fmt.Sprintf("cuisine == %q", filter.Cuisine))
	}
	if filter.Difficulty != "" {
		conditions = append(conditions, fmt.Sprintf("difficulty == %q", string(filter.Difficulty)))
	}
	for _, tag := range filter.Dietary {
		conditions = append(conditions, fmt.Sprintf("%q in dietaryTags", tag))
	}
	if filter.MaxTime > 0 {
		conditions = append(conditions, fmt.Sprintf("prepTime + cookTime <= %d", filter.MaxTime))
	}
	if filter.Query != "" {
		conditions = append(conditions, fmt.Sprintf("title match %q", filter.Query+"*"))
	}

	groq := fmt.Sprintf(`*[%s] | order(publishedAt desc)%s`,
		strings.Join(conditions, " && "), recipeProjection)
	if filter.Limit > 0 {
		groq = fmt.Sprintf(`*[%s] | order(publishedAt desc)[0...%d]%s`,
			strings.Join(conditions, " && "), filter.Limit, recipeProjection)
	}

	var docs []*sanityRecipe
	if err := c.query(ctx, groq, &docs); err != nil {
		return nil, err
	}

	out := make([]recipe.Recipe, 0, len(docs))
	for _, doc := range docs {
		out = append(out, *normalizeRecipe(doc))
	}
	return out, nil
}

// query runs a GROQ query and decodes its result field into dst
func (c *SanityClient) query(ctx context.Context, groq string, dst interface{}) error {
	values := url.Values{}
	values.Set("query", groq)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return errors.CMSError("failed to build CMS request", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.CMSError("CMS request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.CMSError("CMS query failed", fmt.Errorf("status %d", resp.StatusCode))
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return errors.CMSError("failed to decode CMS response", err)
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}

	if err := json.Unmarshal(envelope.Result, dst); err != nil {
		return errors.CMSError("failed to decode CMS result", err)
	}
	return nil
}

func normalizeRecipe(doc *sanityRecipe) *recipe.Recipe {
	r := &recipe.Recipe{
		ID:          doc.ID,
		Slug:        doc.Slug,
		Title:       doc.Title,
		Description: doc.Description,
		PrepTime:    doc.PrepTime,
		CookTime:    doc.CookTime,
		Servings:    doc.Servings,
		Difficulty:  recipe.Difficulty(doc.Difficulty),
		Cuisine:     doc.Cuisine,
		DietaryTags: doc.DietaryTags,
		Nutrition:   doc.Nutrition,
		Rating:      doc.Rating,
		ReviewCount: doc.ReviewCount,
		Author: recipe.Author{
			ID:       doc.Author.ID,
			Name:     doc.Author.Name,
			Avatar:   doc.Author.Avatar,
			Verified: doc.Author.Verified,
		},
		PublishedAt: doc.PublishedAt,
	}

	for _, ing := range doc.Ingredients {
		r.Ingredients = append(r.Ingredients, recipe.Ingredient{
			ID:       ing.ID,
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
			Notes:    ing.Notes,
			Optional: ing.Optional,
		})
	}
	for _, ins := range doc.Instructions {
		r.Instructions = append(r.Instructions, recipe.Instruction{
			Step:        ins.Step,
			Description: ins.Description,
			Duration:    ins.Duration,
			Tips:        ins.Tips,
		})
	}
	return r
}
