package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jhpk/purchtrac/internal/errs"
	"github.com/jhpk/purchtrac/internal/model"
	"github.com/jhpk/purchtrac/internal/repository"
)

type fakeUserRepo struct {
	users  map[int64]model.User
	nextID int64

	insertCalls int
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]model.User), nextID: 1}
}

func (f *fakeUserRepo) All(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) ByType(_ context.Context, typ model.UserType) ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		if u.Type == typ {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) ByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUserRepo) Insert(_ context.Context, u model.User) (int64, error) {
	f.insertCalls++
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = u
	return u.ID, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u model.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) WatchAll(_ context.Context) (<-chan []model.User, <-chan error) {
	return nil, nil
}

func (f *fakeUserRepo) AllWithAccounts(_ context.Context) ([]model.UserWithAccounts, error) {
	return nil, nil
}

func (f *fakeUserRepo) WithAccounts(_ context.Context, _ int64) (*model.UserWithAccounts, error) {
	return nil, nil
}

func (f *fakeUserRepo) AllWithProducts(_ context.Context) ([]model.UserWithProducts, error) {
	return nil, nil
}

func (f *fakeUserRepo) WithProducts(_ context.Context, _ int64) (*model.UserWithProducts, error) {
	return nil, nil
}

var testDefaults = []DefaultUser{
	{Name: "나", Type: model.UserTypeSelf},
	{Name: "어머니", Type: model.UserTypeMother},
	{Name: "아버지", Type: model.UserTypeFather},
}

func TestAppService_Initialize_SeedsEmptyStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeUserRepo()
	s := NewAppService(repo, testDefaults)

	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if len(repo.users) != 3 {
		t.Fatalf("users=%d, want 3", len(repo.users))
	}
}

func TestAppService_Initialize_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeUserRepo()
	s := NewAppService(repo, testDefaults)

	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("first Initialize: %v", err)
	}
	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("second Initialize: %v", err)
	}
	if repo.insertCalls != 3 {
		t.Fatalf("inserts=%d, want 3 (second call must be a no-op)", repo.insertCalls)
	}
}

func TestAppService_Initialize_SkipsNonEmptyStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeUserRepo()
	if _, err := repo.Insert(ctx, model.User{Name: "기존", Type: model.UserTypeSelf}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	repo.insertCalls = 0

	s := NewAppService(repo, testDefaults)
	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if repo.insertCalls != 0 {
		t.Fatal("non-empty store must not be reseeded")
	}
}

func TestUserService_Save_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewUserService(newFakeUserRepo())

	if _, err := s.Save(ctx, model.User{Type: model.UserTypeSelf}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("missing name: err=%v, want ErrValidation", err)
	}
	if _, err := s.Save(ctx, model.User{Name: "x", Type: "ALIEN"}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("bad type: err=%v, want ErrValidation", err)
	}
	id, err := s.Save(ctx, model.User{Name: "x", Type: model.UserTypeSelf})
	if err != nil || id == 0 {
		t.Fatalf("valid save: id=%d err=%v", id, err)
	}
}
