package sqlite

import (
	"context"

	"github.com/jhpk/purchtrac/internal/convert"
	"github.com/jhpk/purchtrac/internal/model"
	"github.com/jhpk/purchtrac/internal/repository"
	storage "github.com/jhpk/purchtrac/internal/storage/sqlite"
)

// MemoRepo implements MemoRepository over the sqlite store.
type MemoRepo struct {
	db  *storage.DB
	dao *storage.MemoDAO
}

var _ repository.MemoRepository = (*MemoRepo)(nil)

// NewMemoRepo constructs a memo repository.
func NewMemoRepo(db *storage.DB) *MemoRepo {
	return &MemoRepo{db: db, dao: storage.NewMemoDAO(db)}
}

func (r *MemoRepo) All(ctx context.Context) ([]model.Memo, error) {
	rows, err := r.dao.All(ctx)
	if err != nil {
		return nil, err
	}
	return convert.MemosToDomain(rows), nil
}

func (r *MemoRepo) ByUser(ctx context.Context, userID int64) ([]model.Memo, error) {
	rows, err := r.dao.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return convert.MemosToDomain(rows), nil
}

func (r *MemoRepo) Important(ctx context.Context) ([]model.Memo, error) {
	rows, err := r.dao.Important(ctx)
	if err != nil {
		return nil, err
	}
	return convert.MemosToDomain(rows), nil
}

func (r *MemoRepo) ByID(ctx context.Context, id int64) (*model.Memo, error) {
	row, err := r.dao.ByID(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	m := convert.MemoToDomain(*row)
	return &m, nil
}

func (r *MemoRepo) Search(ctx context.Context, query string) ([]model.Memo, error) {
	rows, err := r.dao.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return convert.MemosToDomain(rows), nil
}

func (r *MemoRepo) Insert(ctx context.Context, m model.Memo) (int64, error) {
	return r.dao.Insert(ctx, convert.MemoToRow(m))
}

func (r *MemoRepo) Update(ctx context.Context, m model.Memo) error {
	return r.dao.Update(ctx, convert.MemoToRow(m))
}

// Delete looks the row up first so a vanished id stays a no-op instead of an
// error on double-delete.
func (r *MemoRepo) Delete(ctx context.Context, id int64) error {
	row, err := r.dao.ByID(ctx, id)
	if err != nil || row == nil {
		return err
	}
	return r.dao.Delete(ctx, *row)
}

func (r *MemoRepo) WatchAll(ctx context.Context) (<-chan []model.Memo, <-chan error) {
	return watch(ctx, r.db, storage.TableMemos, r.All)
}

func (r *MemoRepo) WatchSearch(ctx context.Context, query string) (<-chan []model.Memo, <-chan error) {
	return watch(ctx, r.db, storage.TableMemos, func(ctx context.Context) ([]model.Memo, error) {
		return r.Search(ctx, query)
	})
}
