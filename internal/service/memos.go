package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/jhpk/purchtrac/internal/model"
	"github.com/jhpk/purchtrac/internal/repository"
)

// MemoService defines the memo use cases.
type MemoService interface {
	// Save inserts when the id is the sentinel 0 and returns the new id;
	// otherwise it overwrites the stored record and returns the id unchanged.
	Save(ctx context.Context, m model.Memo) (int64, error)
	// Delete removes a memo; a missing id is a no-op.
	Delete(ctx context.Context, id int64) error
	// ToggleImportant flips the importance flag via read-then-write; a missing
	// id is a no-op.
	ToggleImportant(ctx context.Context, id int64) error
	// List returns all memos, most recently updated first.
	List(ctx context.Context) ([]model.Memo, error)
	// ListByUser returns one user's memos.
	ListByUser(ctx context.Context, userID int64) ([]model.Memo, error)
	// ListImportant returns memos flagged important.
	ListImportant(ctx context.Context) ([]model.Memo, error)
	// Get loads one memo; nil when absent.
	Get(ctx context.Context, id int64) (*model.Memo, error)
	// Search filters memos by title or content substring.
	Search(ctx context.Context, query string) ([]model.Memo, error)
	// Watch streams memo snapshots until ctx is done.
	Watch(ctx context.Context) (<-chan []model.Memo, <-chan error)
	// WatchSearch streams filtered memo snapshots until ctx is done.
	WatchSearch(ctx context.Context, query string) (<-chan []model.Memo, <-chan error)
}

type MemoServiceImpl struct {
	repo     repository.MemoRepository
	validate *validator.Validate
}

var _ MemoService = (*MemoServiceImpl)(nil)

// NewMemoService constructs MemoService.
func NewMemoService(repo repository.MemoRepository) *MemoServiceImpl {
	return &MemoServiceImpl{repo: repo, validate: newValidator()}
}

func (s *MemoServiceImpl) Save(ctx context.Context, m model.Memo) (int64, error) {
	if err := checkStruct(s.validate, m); err != nil {
		return 0, err
	}
	if m.ID == 0 {
		return s.repo.Insert(ctx, m)
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return 0, err
	}
	return m.ID, nil
}

func (s *MemoServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *MemoServiceImpl) ToggleImportant(ctx context.Context, id int64) error {
	m, err := s.repo.ByID(ctx, id)
	if err != nil || m == nil {
		return err
	}
	m.Important = !m.Important
	return s.repo.Update(ctx, *m)
}

func (s *MemoServiceImpl) List(ctx context.Context) ([]model.Memo, error) {
	return s.repo.All(ctx)
}

func (s *MemoServiceImpl) ListByUser(ctx context.Context, userID int64) ([]model.Memo, error) {
	return s.repo.ByUser(ctx, userID)
}

func (s *MemoServiceImpl) ListImportant(ctx context.Context) ([]model.Memo, error) {
	return s.repo.Important(ctx)
}

func (s *MemoServiceImpl) Get(ctx context.Context, id int64) (*model.Memo, error) {
	return s.repo.ByID(ctx, id)
}

func (s *MemoServiceImpl) Search(ctx context.Context, query string) ([]model.Memo, error) {
	return s.repo.Search(ctx, query)
}

func (s *MemoServiceImpl) Watch(ctx context.Context) (<-chan []model.Memo, <-chan error) {
	return s.repo.WatchAll(ctx)
}

func (s *MemoServiceImpl) WatchSearch(ctx context.Context, query string) (<-chan []model.Memo, <-chan error) {
	return s.repo.WatchSearch(ctx, query)
}
