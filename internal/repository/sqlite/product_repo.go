package sqlite

import (
	"context"
	"time"

	"github.com/jhpk/purchtrac/internal/convert"
	"github.com/jhpk/purchtrac/internal/model"
	"github.com/jhpk/purchtrac/internal/repository"
	storage "github.com/jhpk/purchtrac/internal/storage/sqlite"
)

// ProductRepo implements ProductRepository over the sqlite store.
type ProductRepo struct {
	db  *storage.DB
	dao *storage.ProductDAO
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

// NewProductRepo constructs a product repository.
func NewProductRepo(db *storage.DB) *ProductRepo {
	return &ProductRepo{db: db, dao: storage.NewProductDAO(db)}
}

func (r *ProductRepo) All(ctx context.Context) ([]model.Product, error) {
	rows, err := r.dao.All(ctx)
	if err != nil {
		return nil, err
	}
	return convert.ProductsToDomain(rows)
}

func (r *ProductRepo) ByUser(ctx context.Context, userID int64) ([]model.Product, error) {
	rows, err := r.dao.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return convert.ProductsToDomain(rows)
}

func (r *ProductRepo) ByStatus(ctx context.Context, status model.ProductStatus) ([]model.Product, error) {
	rows, err := r.dao.ByStatus(ctx, string(status))
	if err != nil {
		return nil, err
	}
	return convert.ProductsToDomain(rows)
}

func (r *ProductRepo) ByDateRange(ctx context.Context, from, to time.Time) ([]model.Product, error) {
	rows, err := r.dao.ByDateRange(ctx, from.UnixMilli(), to.UnixMilli())
	if err != nil {
		return nil, err
	}
	return convert.ProductsToDomain(rows)
}

func (r *ProductRepo) ByID(ctx context.Context, id int64) (*model.Product, error) {
	row, err := r.dao.ByID(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	p, err := convert.ProductToDomain(*row)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) Search(ctx context.Context, query string) ([]model.Product, error) {
	rows, err := r.dao.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return convert.ProductsToDomain(rows)
}

func (r *ProductRepo) Insert(ctx context.Context, p model.Product) (int64, error) {
	return r.dao.Insert(ctx, convert.ProductToRow(p))
}

func (r *ProductRepo) Update(ctx context.Context, p model.Product) error {
	return r.dao.Update(ctx, convert.ProductToRow(p))
}

// Delete looks the row up first so a vanished id stays a no-op instead of an
// error on double-delete.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	row, err := r.dao.ByID(ctx, id)
	if err != nil || row == nil {
		return err
	}
	return r.dao.Delete(ctx, *row)
}

func (r *ProductRepo) WatchAll(ctx context.Context) (<-chan []model.Product, <-chan error) {
	return watch(ctx, r.db, storage.TableProducts, r.All)
}

func (r *ProductRepo) WatchSearch(ctx context.Context, query string) (<-chan []model.Product, <-chan error) {
	return watch(ctx, r.db, storage.TableProducts, func(ctx context.Context) ([]model.Product, error) {
		return r.Search(ctx, query)
	})
}
