package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/jhpk/purchtrac/internal/model"
	"github.com/jhpk/purchtrac/internal/repository"
)

// UserService defines the user use cases, including the composite projections.
type UserService interface {
	// Save inserts when the id is the sentinel 0 and returns the new id;
	// otherwise it overwrites the stored record and returns the id unchanged.
	Save(ctx context.Context, u model.User) (int64, error)
	// Delete removes a user and, by cascade, everything it owns; a missing id
	// is a no-op.
	Delete(ctx context.Context, id int64) error
	// List returns all users.
	List(ctx context.Context) ([]model.User, error)
	// ListByType returns users with the given role.
	ListByType(ctx context.Context, typ model.UserType) ([]model.User, error)
	// Get loads one user; nil when absent.
	Get(ctx context.Context, id int64) (*model.User, error)
	// Watch streams user snapshots until ctx is done.
	Watch(ctx context.Context) (<-chan []model.User, <-chan error)
	// WithAccounts returns one user joined with its accounts; nil when absent.
	WithAccounts(ctx context.Context, id int64) (*model.UserWithAccounts, error)
	// WithProducts returns one user joined with its products; nil when absent.
	WithProducts(ctx context.Context, id int64) (*model.UserWithProducts, error)
	// ListWithAccounts returns every user joined with its accounts.
	ListWithAccounts(ctx context.Context) ([]model.UserWithAccounts, error)
	// ListWithProducts returns every user joined with its products.
	ListWithProducts(ctx context.Context) ([]model.UserWithProducts, error)
}

type UserServiceImpl struct {
	repo     repository.UserRepository
	validate *validator.Validate
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService constructs UserService.
func NewUserService(repo repository.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{repo: repo, validate: newValidator()}
}

func (s *UserServiceImpl) Save(ctx context.Context, u model.User) (int64, error) {
	if err := checkStruct(s.validate, u); err != nil {
		return 0, err
	}
	if u.ID == 0 {
		return s.repo.Insert(ctx, u)
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return 0, err
	}
	return u.ID, nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *UserServiceImpl) List(ctx context.Context) ([]model.User, error) {
	return s.repo.All(ctx)
}

func (s *UserServiceImpl) ListByType(ctx context.Context, typ model.UserType) ([]model.User, error) {
	return s.repo.ByType(ctx, typ)
}

func (s *UserServiceImpl) Get(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.ByID(ctx, id)
}

func (s *UserServiceImpl) Watch(ctx context.Context) (<-chan []model.User, <-chan error) {
	return s.repo.WatchAll(ctx)
}

func (s *UserServiceImpl) WithAccounts(ctx context.Context, id int64) (*model.UserWithAccounts, error) {
	return s.repo.WithAccounts(ctx, id)
}

func (s *UserServiceImpl) WithProducts(ctx context.Context, id int64) (*model.UserWithProducts, error) {
	return s.repo.WithProducts(ctx, id)
}

func (s *UserServiceImpl) ListWithAccounts(ctx context.Context) ([]model.UserWithAccounts, error) {
	return s.repo.AllWithAccounts(ctx)
}

func (s *UserServiceImpl) ListWithProducts(ctx context.Context) ([]model.UserWithProducts, error) {
	return s.repo.AllWithProducts(ctx)
}
