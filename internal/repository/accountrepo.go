package repository

import (
	"context"

	"github.com/jhpk/purchtrac/internal/model"
)

// AccountRepository provides domain-level access to site credential records.
// Reads behind the authentication gate go through this interface only.
type AccountRepository interface {
	// All returns a snapshot of every account, unordered.
	All(ctx context.Context) ([]model.Account, error)
	// ByUser returns the accounts owned by one user.
	ByUser(ctx context.Context, userID int64) ([]model.Account, error)
	// ByID loads an account by id; nil when absent.
	ByID(ctx context.Context, id int64) (*model.Account, error)
	// Search matches the query as a substring of site name or username.
	Search(ctx context.Context, query string) ([]model.Account, error)
	// Insert stores an account, assigning an id when the sentinel 0 is passed.
	Insert(ctx context.Context, a model.Account) (int64, error)
	// Update overwrites the full record by id.
	Update(ctx context.Context, a model.Account) error
	// Delete removes an account by id; a missing id is a silent no-op.
	Delete(ctx context.Context, id int64) error
	// WatchAll streams a fresh snapshot after every change to the account set.
	WatchAll(ctx context.Context) (<-chan []model.Account, <-chan error)
	// WatchSearch streams fresh filtered snapshots for the query.
	WatchSearch(ctx context.Context, query string) (<-chan []model.Account, <-chan error)
}
