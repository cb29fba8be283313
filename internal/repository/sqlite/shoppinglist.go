package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/umamihq/umami-backend/internal/domain/shoppinglist"
	"github.com/umamihq/umami-backend/internal/pkg/errors"
)

// ShoppingListRepository implements shoppinglist.Repository. List items
// are stored as a JSON document column; lists are small and always
// read and written whole.
type ShoppingListRepository struct {
	db *sql.DB
}

// NewShoppingListRepository creates a new shopping list repository
func NewShoppingListRepository(db *sql.DB) shoppinglist.Repository {
	return &ShoppingListRepository{db: db}
}

// Create stores a new shopping list
func (r *ShoppingListRepository) Create(ctx context.Context, list *shoppinglist.List) error {
	items, err := json.Marshal(list.Items)
	if err != nil {
		return errors.DatabaseError("failed to encode list items", err)
	}

	query := `
		INSERT INTO shopping_lists (id, user_id, name, items, total_price, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		list.ID, list.UserID, list.Name, items, list.TotalPrice,
		list.CreatedAt.Unix(), list.UpdatedAt.Unix(),
	)
	if err != nil {
		return errors.DatabaseError("failed to create shopping list", err)
	}
	return nil
}

// GetByID retrieves a shopping list by ID
func (r *ShoppingListRepository) GetByID(ctx context.Context, id string) (*shoppinglist.List, error) {
	query := `
		SELECT id, user_id, name, items, total_price, created_at, updated_at
		FROM shopping_lists WHERE id = ?
	`

	list, err := scanList(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("shopping list")
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListByUser retrieves all lists owned by a user, newest first
func (r *ShoppingListRepository) ListByUser(ctx context.Context, userID string) ([]*shoppinglist.List, error) {
	query := `
		SELECT id, user_id, name, items, total_price, created_at, updated_at
		FROM shopping_lists WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, errors.DatabaseError("failed to list shopping lists", err)
	}
	defer rows.Close()

	var out []*shoppinglist.List
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, list)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("failed to iterate shopping lists", err)
	}
	return out, nil
}

// Update replaces a stored list. Last write wins.
func (r *ShoppingListRepository) Update(ctx context.Context, list *shoppinglist.List) error {
	items, err := json.Marshal(list.Items)
	if err != nil {
		return errors.DatabaseError("failed to encode list items", err)
	}

	query := `
		UPDATE shopping_lists
		SET name = ?, items = ?, total_price = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		list.Name, items, list.TotalPrice, list.UpdatedAt.Unix(), list.ID,
	)
	if err != nil {
		return errors.DatabaseError("failed to update shopping list", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("failed to check update result", err)
	}
	if affected == 0 {
		return errors.NotFound("shopping list")
	}
	return nil
}

// Delete removes a shopping list
func (r *ShoppingListRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM shopping_lists WHERE id = ?`, id)
	if err != nil {
		return errors.DatabaseError("failed to delete shopping list", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("failed to check delete result", err)
	}
	if affected == 0 {
		return errors.NotFound("shopping list")
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanList(row rowScanner) (*shoppinglist.List, error) {
	var list shoppinglist.List
	var items []byte
	var createdAt, updatedAt int64

	err := row.Scan(
		&list.ID, &list.UserID, &list.Name, &items, &list.TotalPrice,
		&createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, errors.DatabaseError("failed to scan shopping list", err)
	}

	if err := json.Unmarshal(items, &list.Items); err != nil {
		return nil, errors.DatabaseError("failed to decode list items", err)
	}
	list.CreatedAt = time.Unix(createdAt, 0)
	list.UpdatedAt = time.Unix(updatedAt, 0)

	return &list, nil
}
