package service

import (
	"context"

	"github.com/jhpk/purchtrac/internal/model"
	"github.com/jhpk/purchtrac/internal/repository"
)

// DefaultUser describes one bootstrap user. The exact names and roles are an
// external policy choice supplied by configuration.
type DefaultUser struct {
	Name string
	Type model.UserType
}

// AppService performs first-run initialization.
type AppService interface {
	// Initialize seeds the default users when the user set is empty. Safe to
	// call on every start: later calls are no-ops.
	Initialize(ctx context.Context) error
}

type AppServiceImpl struct {
	users    repository.UserRepository
	defaults []DefaultUser
}

var _ AppService = (*AppServiceImpl)(nil)

// NewAppService constructs AppService with the bootstrap user policy.
func NewAppService(users repository.UserRepository, defaults []DefaultUser) *AppServiceImpl {
	return &AppServiceImpl{users: users, defaults: defaults}
}

func (s *AppServiceImpl) Initialize(ctx context.Context) error {
	existing, err := s.users.All(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, d := range s.defaults {
		u := model.User{Name: d.Name, Type: d.Type}
		if _, err := s.users.Insert(ctx, u); err != nil {
			return err
		}
	}
	return nil
}
