package user

import "context"

// Repository persists user profiles and preferences
type Repository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	Upsert(ctx context.Context, u *User) error

	GetPreferences(ctx context.Context, userID string) (*Preferences, error)
	PutPreferences(ctx context.Context, p *Preferences) error
}
