package repository

import (
	"context"
	"time"

	"github.com/jhpk/purchtrac/internal/model"
)

// ProductRepository provides domain-level access to tracked purchases.
// Snapshots are ordered by release date ascending.
type ProductRepository interface {
	// All returns a snapshot of every product.
	All(ctx context.Context) ([]model.Product, error)
	// ByUser returns the products owned by one user.
	ByUser(ctx context.Context, userID int64) ([]model.Product, error)
	// ByStatus returns products in the given purchase state.
	ByStatus(ctx context.Context, status model.ProductStatus) ([]model.Product, error)
	// ByDateRange returns products releasing inside [from, to].
	ByDateRange(ctx context.Context, from, to time.Time) ([]model.Product, error)
	// ByID loads a product by id; nil when absent.
	ByID(ctx context.Context, id int64) (*model.Product, error)
	// Search matches the query as a substring of name or site name.
	Search(ctx context.Context, query string) ([]model.Product, error)
	// Insert stores a product, assigning an id when the sentinel 0 is passed.
	Insert(ctx context.Context, p model.Product) (int64, error)
	// Update overwrites the full record by id.
	Update(ctx context.Context, p model.Product) error
	// Delete removes a product by id; a missing id is a silent no-op.
	Delete(ctx context.Context, id int64) error
	// WatchAll streams a fresh snapshot after every change to the product set.
	WatchAll(ctx context.Context) (<-chan []model.Product, <-chan error)
	// WatchSearch streams fresh filtered snapshots for the query.
	WatchSearch(ctx context.Context, query string) (<-chan []model.Product, <-chan error)
}
