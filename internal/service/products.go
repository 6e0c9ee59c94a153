package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jhpk/purchtrac/internal/model"
	"github.com/jhpk/purchtrac/internal/repository"
)

// ProductService defines the tracked-purchase use cases.
type ProductService interface {
	// Save inserts when the id is the sentinel 0 and returns the new id;
	// otherwise it overwrites the stored record and returns the id unchanged.
	Save(ctx context.Context, p model.Product) (int64, error)
	// Delete removes a product; a missing id is a no-op.
	Delete(ctx context.Context, id int64) error
	// ToggleReminder flips the reminder flag via read-then-write; a missing id
	// is a no-op.
	ToggleReminder(ctx context.Context, id int64) error
	// List returns all products by release date ascending.
	List(ctx context.Context) ([]model.Product, error)
	// ListByUser returns one user's products.
	ListByUser(ctx context.Context, userID int64) ([]model.Product, error)
	// ListByStatus returns products in the given purchase state.
	ListByStatus(ctx context.Context, status model.ProductStatus) ([]model.Product, error)
	// ListByDateRange returns products releasing inside [from, to].
	ListByDateRange(ctx context.Context, from, to time.Time) ([]model.Product, error)
	// Get loads one product; nil when absent.
	Get(ctx context.Context, id int64) (*model.Product, error)
	// Search filters products by name or site name substring.
	Search(ctx context.Context, query string) ([]model.Product, error)
	// Watch streams product snapshots until ctx is done.
	Watch(ctx context.Context) (<-chan []model.Product, <-chan error)
	// WatchSearch streams filtered product snapshots until ctx is done.
	WatchSearch(ctx context.Context, query string) (<-chan []model.Product, <-chan error)
}

type ProductServiceImpl struct {
	repo     repository.ProductRepository
	validate *validator.Validate
}

var _ ProductService = (*ProductServiceImpl)(nil)

// NewProductService constructs ProductService.
func NewProductService(repo repository.ProductRepository) *ProductServiceImpl {
	return &ProductServiceImpl{repo: repo, validate: newValidator()}
}

func (s *ProductServiceImpl) Save(ctx context.Context, p model.Product) (int64, error) {
	if err := checkStruct(s.validate, p); err != nil {
		return 0, err
	}
	if p.ID == 0 {
		return s.repo.Insert(ctx, p)
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (s *ProductServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *ProductServiceImpl) ToggleReminder(ctx context.Context, id int64) error {
	p, err := s.repo.ByID(ctx, id)
	if err != nil || p == nil {
		return err
	}
	p.ReminderEnabled = !p.ReminderEnabled
	return s.repo.Update(ctx, *p)
}

func (s *ProductServiceImpl) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.All(ctx)
}

func (s *ProductServiceImpl) ListByUser(ctx context.Context, userID int64) ([]model.Product, error) {
	return s.repo.ByUser(ctx, userID)
}

func (s *ProductServiceImpl) ListByStatus(ctx context.Context, status model.ProductStatus) ([]model.Product, error) {
	return s.repo.ByStatus(ctx, status)
}

func (s *ProductServiceImpl) ListByDateRange(ctx context.Context, from, to time.Time) ([]model.Product, error) {
	return s.repo.ByDateRange(ctx, from, to)
}

func (s *ProductServiceImpl) Get(ctx context.Context, id int64) (*model.Product, error) {
	return s.repo.ByID(ctx, id)
}

func (s *ProductServiceImpl) Search(ctx context.Context, query string) ([]model.Product, error) {
	return s.repo.Search(ctx, query)
}

func (s *ProductServiceImpl) Watch(ctx context.Context) (<-chan []model.Product, <-chan error) {
	return s.repo.WatchAll(ctx)
}

func (s *ProductServiceImpl) WatchSearch(ctx context.Context, query string) (<-chan []model.Product, <-chan error) {
	return s.repo.WatchSearch(ctx, query)
}
