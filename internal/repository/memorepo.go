package repository

import (
	"context"

	"github.com/jhpk/purchtrac/internal/model"
)

// MemoRepository provides domain-level access to memos. Snapshots are ordered
// by most recently updated first.
type MemoRepository interface {
	// All returns a snapshot of every memo.
	All(ctx context.Context) ([]model.Memo, error)
	// ByUser returns the memos owned by one user.
	ByUser(ctx context.Context, userID int64) ([]model.Memo, error)
	// Important returns memos flagged important.
	Important(ctx context.Context) ([]model.Memo, error)
	// ByID loads a memo by id; nil when absent.
	ByID(ctx context.Context, id int64) (*model.Memo, error)
	// Search matches the query as a substring of title or content.
	Search(ctx context.Context, query string) ([]model.Memo, error)
	// Insert stores a memo, assigning an id when the sentinel 0 is passed.
	Insert(ctx context.Context, m model.Memo) (int64, error)
	// Update overwrites the full record by id.
	Update(ctx context.Context, m model.Memo) error
	// Delete removes a memo by id; a missing id is a silent no-op.
	Delete(ctx context.Context, id int64) error
	// WatchAll streams a fresh snapshot after every change to the memo set.
	WatchAll(ctx context.Context) (<-chan []model.Memo, <-chan error)
	// WatchSearch streams fresh filtered snapshots for the query.
	WatchSearch(ctx context.Context, query string) (<-chan []model.Memo, <-chan error)
}
