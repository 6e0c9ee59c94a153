package sqlite

import (
	"context"

	"github.com/jhpk/purchtrac/internal/convert"
	"github.com/jhpk/purchtrac/internal/model"
	"github.com/jhpk/purchtrac/internal/repository"
	storage "github.com/jhpk/purchtrac/internal/storage/sqlite"
)

// UserRepo implements UserRepository over the sqlite store.
type UserRepo struct {
	db        *storage.DB
	dao       *storage.UserDAO
	relations *storage.RelationDAO
}

var _ repository.UserRepository = (*UserRepo)(nil)

// NewUserRepo constructs a user repository.
func NewUserRepo(db *storage.DB) *UserRepo {
	return &UserRepo{db: db, dao: storage.NewUserDAO(db), relations: storage.NewRelationDAO(db)}
}

func (r *UserRepo) All(ctx context.Context) ([]model.User, error) {
	rows, err := r.dao.All(ctx)
	if err != nil {
		return nil, err
	}
	return convert.UsersToDomain(rows)
}

func (r *UserRepo) ByType(ctx context.Context, typ model.UserType) ([]model.User, error) {
	rows, err := r.dao.ByType(ctx, string(typ))
	if err != nil {
		return nil, err
	}
	return convert.UsersToDomain(rows)
}

func (r *UserRepo) ByID(ctx context.Context, id int64) (*model.User, error) {
	row, err := r.dao.ByID(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	u, err := convert.UserToDomain(*row)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Insert(ctx context.Context, u model.User) (int64, error) {
	return r.dao.Insert(ctx, convert.UserToRow(u))
}

func (r *UserRepo) Update(ctx context.Context, u model.User) error {
	return r.dao.Update(ctx, convert.UserToRow(u))
}

// Delete looks the row up first so a vanished id stays a no-op instead of an
// error on double-delete.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	row, err := r.dao.ByID(ctx, id)
	if err != nil || row == nil {
		return err
	}
	return r.dao.Delete(ctx, *row)
}

func (r *UserRepo) WatchAll(ctx context.Context) (<-chan []model.User, <-chan error) {
	return watch(ctx, r.db, storage.TableUsers, r.All)
}

func (r *UserRepo) AllWithAccounts(ctx context.Context) ([]model.UserWithAccounts, error) {
	rows, err := r.relations.UsersWithAccounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.UserWithAccounts, 0, len(rows))
	for _, row := range rows {
		ua, err := convert.UserWithAccountsToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, ua)
	}
	return out, nil
}

func (r *UserRepo) WithAccounts(ctx context.Context, id int64) (*model.UserWithAccounts, error) {
	row, err := r.relations.UserWithAccounts(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	ua, err := convert.UserWithAccountsToDomain(*row)
	if err != nil {
		return nil, err
	}
	return &ua, nil
}

func (r *UserRepo) AllWithProducts(ctx context.Context) ([]model.UserWithProducts, error) {
	rows, err := r.relations.UsersWithProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.UserWithProducts, 0, len(rows))
	for _, row := range rows {
		up, err := convert.UserWithProductsToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, up)
	}
	return out, nil
}

func (r *UserRepo) WithProducts(ctx context.Context, id int64) (*model.UserWithProducts, error) {
	row, err := r.relations.UserWithProducts(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	up, err := convert.UserWithProductsToDomain(*row)
	if err != nil {
		return nil, err
	}
	return &up, nil
}
