package shoppinglist

import "context"

// Repository persists shopping lists. Updates are last-write-wins,
// matching the document-store semantics of the user data backend.
type Repository interface {
	Create(ctx context.Context, list *List) error
	GetByID(ctx context.Context, id string) (*List, error)
	ListByUser(ctx context.Context, userID string) ([]*List, error)
	Update(ctx context.Context, list *List) error
	Delete(ctx context.Context, id string) error
}
