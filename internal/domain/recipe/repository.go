package recipe

import "context"

// Repository reads recipes from the CMS collaborator
type Repository interface {
	GetBySlug(ctx context.Context, slug string) (*Recipe, error)
	GetByID(ctx context.Context, id string) (*Recipe, error)
	List(ctx context.Context, filter Filter) ([]Recipe, error)
}
