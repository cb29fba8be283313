package user

import "context"

// Service defines user profile and preference operations
type Service interface {
	GetProfile(ctx context.Context, userID string) (*User, error)

	// GetPreferences returns nil without error when the user has
	// never saved preferences
	GetPreferences(ctx context.Context, userID string) (*Preferences, error)
	UpdatePreferences(ctx context.Context, p *Preferences) error
}
