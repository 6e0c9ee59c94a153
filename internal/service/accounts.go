package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/jhpk/purchtrac/internal/model"
	"github.com/jhpk/purchtrac/internal/repository"
)

// AccountService defines the site-credential use cases. Passwords pass through
// this layer as opaque encrypted text; list reads are invoked only after the
// authentication gate admits the caller.
type AccountService interface {
	// Save inserts when the id is the sentinel 0 and returns the new id;
	// otherwise it overwrites the stored record and returns the id unchanged.
	Save(ctx context.Context, a model.Account) (int64, error)
	// Delete removes an account; a missing id is a no-op.
	Delete(ctx context.Context, id int64) error
	// List returns all accounts.
	List(ctx context.Context) ([]model.Account, error)
	// ListByUser returns one user's accounts.
	ListByUser(ctx context.Context, userID int64) ([]model.Account, error)
	// Get loads one account; nil when absent.
	Get(ctx context.Context, id int64) (*model.Account, error)
	// Search filters accounts by site name or username substring.
	Search(ctx context.Context, query string) ([]model.Account, error)
	// Watch streams account snapshots until ctx is done.
	Watch(ctx context.Context) (<-chan []model.Account, <-chan error)
	// WatchSearch streams filtered account snapshots until ctx is done.
	WatchSearch(ctx context.Context, query string) (<-chan []model.Account, <-chan error)
}

type AccountServiceImpl struct {
	repo     repository.AccountRepository
	validate *validator.Validate
}

var _ AccountService = (*AccountServiceImpl)(nil)

// NewAccountService constructs AccountService.
func NewAccountService(repo repository.AccountRepository) *AccountServiceImpl {
	return &AccountServiceImpl{repo: repo, validate: newValidator()}
}

func (s *AccountServiceImpl) Save(ctx context.Context, a model.Account) (int64, error) {
	if err := checkStruct(s.validate, a); err != nil {
		return 0, err
	}
	if a.ID == 0 {
		return s.repo.Insert(ctx, a)
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return 0, err
	}
	return a.ID, nil
}

func (s *AccountServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *AccountServiceImpl) List(ctx context.Context) ([]model.Account, error) {
	return s.repo.All(ctx)
}

func (s *AccountServiceImpl) ListByUser(ctx context.Context, userID int64) ([]model.Account, error) {
	return s.repo.ByUser(ctx, userID)
}

func (s *AccountServiceImpl) Get(ctx context.Context, id int64) (*model.Account, error) {
	return s.repo.ByID(ctx, id)
}

func (s *AccountServiceImpl) Search(ctx context.Context, query string) ([]model.Account, error) {
	return s.repo.Search(ctx, query)
}

func (s *AccountServiceImpl) Watch(ctx context.Context) (<-chan []model.Account, <-chan error) {
	return s.repo.WatchAll(ctx)
}

func (s *AccountServiceImpl) WatchSearch(ctx context.Context, query string) (<-chan []model.Account, <-chan error) {
	return s.repo.WatchSearch(ctx, query)
}
