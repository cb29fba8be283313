package services

import (
	"context"
	"time"

	"github.com/umamihq/umami-backend/internal/domain/user"
	"github.com/umamihq/umami-backend/internal/pkg/errors"
	"github.com/umamihq/umami-backend/internal/pkg/logger"
)

// UserService implements user.Service
type UserService struct {
	repo   user.Repository
	logger *logger.Logger
}

// NewUserService creates a user service
func NewUserService(repo user.Repository, log *logger.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: log,
	}
}

// GetProfile implements user.Service
func (s *UserService) GetProfile(ctx context.Context, userID string) (*user.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// GetPreferences implements user.Service. A user who never saved
// preferences gets nil, nil; callers treat that as "use the fallback
// ranking".
func (s *UserService) GetPreferences(ctx context.Context, userID string) (*user.Preferences, error) {
	return s.repo.GetPreferences(ctx, userID)
}

// UpdatePreferences implements user.Service
func (s *UserService) UpdatePreferences(ctx context.Context, p *user.Preferences) error {
	if p.UserID == "" {
		return errors.BadRequest("preferences must carry a user id")
	}
	if err := validatePreferences(p); err != nil {
		return err
	}

	p.UpdatedAt = time.Now().UTC()
	return s.repo.PutPreferences(ctx, p)
}

func validatePreferences(p *user.Preferences) error {
	switch p.SkillLevel {
	case "", user.SkillBeginner, user.SkillIntermediate, user.SkillAdvanced:
	default:
		return errors.BadRequest("unknown skill level: " + string(p.SkillLevel))
	}

	switch p.CookingTime {
	case "", user.CookingTimeQuick, user.CookingTimeMedium, user.CookingTimeLong:
	default:
		return errors.BadRequest("unknown cooking time: " + string(p.CookingTime))
	}

	for _, d := range p.DietaryRestrictions {
		if !knownDietary(d) {
			return errors.BadRequest("unknown dietary restriction: " + d)
		}
	}
	return nil
}

func knownDietary(d string) bool {
	for _, known := range user.DietaryRestrictions {
		if d == known {
			return true
		}
	}
	return false
}
