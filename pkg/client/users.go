package client

import (
	"context"
	"net/http"
)

// UserService accesses the profile and preference endpoints
type UserService struct {
	client *Client
}

// Me fetches the caller's profile
func (s *UserService) Me(ctx context.Context) (*User, error) {
	var u User
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/users/me", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Preferences fetches the caller's saved preferences; nil when none saved
func (s *UserService) Preferences(ctx context.Context) (*Preferences, error) {
	var p *Preferences
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/users/me/preferences", nil, nil, &p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePreferences replaces the caller's saved preferences
func (s *UserService) UpdatePreferences(ctx context.Context, p *Preferences) (*Preferences, error) {
	var updated Preferences
	if err := s.client.doRequest(ctx, http.MethodPut, "/api/v1/users/me/preferences", nil, p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
