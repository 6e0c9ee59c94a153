package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jhpk/purchtrac/internal/errs"
	"github.com/jhpk/purchtrac/internal/model"
	"github.com/jhpk/purchtrac/internal/repository"
)

type fakeMemoRepo struct {
	memos  map[int64]model.Memo
	nextID int64

	insertCalls int
	updateCalls int
}

var _ repository.MemoRepository = (*fakeMemoRepo)(nil)

func newFakeMemoRepo() *fakeMemoRepo {
	return &fakeMemoRepo{memos: make(map[int64]model.Memo), nextID: 1}
}

func (f *fakeMemoRepo) All(_ context.Context) ([]model.Memo, error) {
	out := make([]model.Memo, 0, len(f.memos))
	for _, m := range f.memos {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMemoRepo) ByUser(_ context.Context, userID int64) ([]model.Memo, error) {
	var out []model.Memo
	for _, m := range f.memos {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMemoRepo) Important(_ context.Context) ([]model.Memo, error) {
	var out []model.Memo
	for _, m := range f.memos {
		if m.Important {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMemoRepo) ByID(_ context.Context, id int64) (*model.Memo, error) {
	m, ok := f.memos[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (f *fakeMemoRepo) Search(_ context.Context, _ string) ([]model.Memo, error) { return nil, nil }

func (f *fakeMemoRepo) Insert(_ context.Context, m model.Memo) (int64, error) {
	f.insertCalls++
	m.ID = f.nextID
	f.nextID++
	f.memos[m.ID] = m
	return m.ID, nil
}

func (f *fakeMemoRepo) Update(_ context.Context, m model.Memo) error {
	f.updateCalls++
	f.memos[m.ID] = m
	return nil
}

func (f *fakeMemoRepo) Delete(_ context.Context, id int64) error {
	delete(f.memos, id)
	return nil
}

func (f *fakeMemoRepo) WatchAll(_ context.Context) (<-chan []model.Memo, <-chan error) {
	return nil, nil
}

func (f *fakeMemoRepo) WatchSearch(_ context.Context, _ string) (<-chan []model.Memo, <-chan error) {
	return nil, nil
}

func TestMemoService_Save_InsertsWhenIDZero(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeMemoRepo()
	s := NewMemoService(repo)

	id, err := s.Save(ctx, model.Memo{UserID: 1, Title: "note"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id == 0 {
		t.Fatal("want assigned id")
	}
	if repo.insertCalls != 1 || repo.updateCalls != 0 {
		t.Fatalf("inserts=%d updates=%d", repo.insertCalls, repo.updateCalls)
	}
}

func TestMemoService_Save_UpdatesWhenIDSet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeMemoRepo()
	s := NewMemoService(repo)

	id, _ := s.Save(ctx, model.Memo{UserID: 1, Title: "note"})
	got, err := s.Save(ctx, model.Memo{ID: id, UserID: 1, Title: "edited"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got != id {
		t.Fatalf("id changed on update: %d != %d", got, id)
	}
	if repo.updateCalls != 1 {
		t.Fatalf("updates=%d, want 1", repo.updateCalls)
	}
	if repo.memos[id].Title != "edited" {
		t.Fatalf("title=%q", repo.memos[id].Title)
	}
}

func TestMemoService_Save_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoService(newFakeMemoRepo())

	if _, err := s.Save(ctx, model.Memo{UserID: 1}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("missing title: err=%v, want ErrValidation", err)
	}
	if _, err := s.Save(ctx, model.Memo{Title: "t"}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("missing user: err=%v, want ErrValidation", err)
	}
}

func TestMemoService_ToggleImportant(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeMemoRepo()
	s := NewMemoService(repo)

	id, _ := s.Save(ctx, model.Memo{UserID: 1, Title: "note"})

	if err := s.ToggleImportant(ctx, id); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !repo.memos[id].Important {
		t.Fatal("first toggle must set the flag")
	}
	if err := s.ToggleImportant(ctx, id); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if repo.memos[id].Important {
		t.Fatal("second toggle must clear the flag")
	}
	if repo.memos[id].Title != "note" {
		t.Fatal("toggle must leave other fields alone")
	}
}

func TestMemoService_ToggleImportant_MissingIsNoop(t *testing.T) {
	t.Parallel()
	repo := newFakeMemoRepo()
	s := NewMemoService(repo)
	if err := s.ToggleImportant(context.Background(), 404); err != nil {
		t.Fatalf("toggle missing: %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatal("no write expected for a missing id")
	}
}
