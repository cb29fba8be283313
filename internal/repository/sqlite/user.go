package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/umamihq/umami-backend/internal/domain/user"
	"github.com/umamihq/umami-backend/internal/pkg/errors"
)

// UserRepository implements user.Repository
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) user.Repository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	query := `
		SELECT id, email, display_name, avatar, created_at, updated_at
		FROM users WHERE id = ?
	`

	var u user.User
	var avatar sql.NullString
	var createdAt, updatedAt int64

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.DisplayName, &avatar, &createdAt, &updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NotFound("user")
	}
	if err != nil {
		return nil, errors.DatabaseError("failed to get user", err)
	}

	if avatar.Valid {
		u.Avatar = avatar.String
	}
	u.CreatedAt = time.Unix(createdAt, 0)
	u.UpdatedAt = time.Unix(updatedAt, 0)

	return &u, nil
}

// Upsert creates or updates a user profile
func (r *UserRepository) Upsert(ctx context.Context, u *user.User) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	query := `
		INSERT INTO users (id, email, display_name, avatar, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			email = excluded.email,
			display_name = excluded.display_name,
			avatar = excluded.avatar,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Email, u.DisplayName, u.Avatar, u.CreatedAt.Unix(), u.UpdatedAt.Unix(),
	)
	if err != nil {
		return errors.DatabaseError("failed to upsert user", err)
	}
	return nil
}

// GetPreferences retrieves a user's saved preferences. A user who
// never saved any gets nil, nil.
func (r *UserRepository) GetPreferences(ctx context.Context, userID string) (*user.Preferences, error) {
	query := `SELECT data, updated_at FROM user_preferences WHERE user_id = ?`

	var data []byte
	var updatedAt int64

	err := r.db.QueryRowContext(ctx, query, userID).Scan(&data, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.DatabaseError("failed to get preferences", err)
	}

	var p user.Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.DatabaseError("failed to decode preferences", err)
	}
	p.UserID = userID
	p.UpdatedAt = time.Unix(updatedAt, 0)

	return &p, nil
}

// PutPreferences stores a user's preferences, replacing any prior set
func (r *UserRepository) PutPreferences(ctx context.Context, p *user.Preferences) error {
	data, err := json.Marshal(p)
	if err != nil {
		return errors.DatabaseError("failed to encode preferences", err)
	}

	query := `
		INSERT INTO user_preferences (user_id, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`

	_, err = r.db.ExecContext(ctx, query, p.UserID, data, p.UpdatedAt.Unix())
	if err != nil {
		return errors.DatabaseError("failed to store preferences", err)
	}
	return nil
}
