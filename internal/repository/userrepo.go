// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/jhpk/purchtrac/internal/model"
)

// UserRepository provides CRUD access for users and their composite projections.
type UserRepository interface {
	// All returns a snapshot of every user, unordered.
	All(ctx context.Context) ([]model.User, error)
	// ByType returns users with the given role.
	ByType(ctx context.Context, typ model.UserType) ([]model.User, error)
	// ByID loads a user by id; nil when absent.
	ByID(ctx context.Context, id int64) (*model.User, error)
	// Insert stores a user, assigning an id when the sentinel 0 is passed.
	Insert(ctx context.Context, u model.User) (int64, error)
	// Update overwrites the full record by id.
	Update(ctx context.Context, u model.User) error
	// Delete removes a user by id; a missing id is a silent no-op. Dependent
	// accounts, products and memos cascade.
	Delete(ctx context.Context, id int64) error
	// WatchAll streams a fresh snapshot after every change to the user set.
	WatchAll(ctx context.Context) (<-chan []model.User, <-chan error)
	// AllWithAccounts returns every user joined with its accounts.
	AllWithAccounts(ctx context.Context) ([]model.UserWithAccounts, error)
	// WithAccounts returns one user joined with its accounts; nil when absent.
	WithAccounts(ctx context.Context, id int64) (*model.UserWithAccounts, error)
	// AllWithProducts returns every user joined with its products.
	AllWithProducts(ctx context.Context) ([]model.UserWithProducts, error)
	// WithProducts returns one user joined with its products; nil when absent.
	WithProducts(ctx context.Context, id int64) (*model.UserWithProducts, error)
}
