package sqlite

import (
	"context"

	"github.com/jhpk/purchtrac/internal/convert"
	"github.com/jhpk/purchtrac/internal/model"
	"github.com/jhpk/purchtrac/internal/repository"
	storage "github.com/jhpk/purchtrac/internal/storage/sqlite"
)

// AccountRepo implements AccountRepository over the sqlite store.
type AccountRepo struct {
	db  *storage.DB
	dao *storage.AccountDAO
}

var _ repository.AccountRepository = (*AccountRepo)(nil)

// NewAccountRepo constructs an account repository.
func NewAccountRepo(db *storage.DB) *AccountRepo {
	return &AccountRepo{db: db, dao: storage.NewAccountDAO(db)}
}

func (r *AccountRepo) All(ctx context.Context) ([]model.Account, error) {
	rows, err := r.dao.All(ctx)
	if err != nil {
		return nil, err
	}
	return convert.AccountsToDomain(rows), nil
}

func (r *AccountRepo) ByUser(ctx context.Context, userID int64) ([]model.Account, error) {
	rows, err := r.dao.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return convert.AccountsToDomain(rows), nil
}

func (r *AccountRepo) ByID(ctx context.Context, id int64) (*model.Account, error) {
	row, err := r.dao.ByID(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	a := convert.AccountToDomain(*row)
	return &a, nil
}

func (r *AccountRepo) Search(ctx context.Context, query string) ([]model.Account, error) {
	rows, err := r.dao.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return convert.AccountsToDomain(rows), nil
}

func (r *AccountRepo) Insert(ctx context.Context, a model.Account) (int64, error) {
	return r.dao.Insert(ctx, convert.AccountToRow(a))
}

func (r *AccountRepo) Update(ctx context.Context, a model.Account) error {
	return r.dao.Update(ctx, convert.AccountToRow(a))
}

// Delete looks the row up first so a vanished id stays a no-op instead of an
// error on double-delete.
func (r *AccountRepo) Delete(ctx context.Context, id int64) error {
	row, err := r.dao.ByID(ctx, id)
	if err != nil || row == nil {
		return err
	}
	return r.dao.Delete(ctx, *row)
}

func (r *AccountRepo) WatchAll(ctx context.Context) (<-chan []model.Account, <-chan error) {
	return watch(ctx, r.db, storage.TableAccounts, r.All)
}

func (r *AccountRepo) WatchSearch(ctx context.Context, query string) (<-chan []model.Account, <-chan error) {
	return watch(ctx, r.db, storage.TableAccounts, func(ctx context.Context) ([]model.Account, error) {
		return r.Search(ctx, query)
	})
}
