package sqlite

import "context"

// RelationDAO reads the composite user projections. The projections are
// derived per read, never persisted.
type RelationDAO struct {
	users    *UserDAO
	accounts *AccountDAO
	products *ProductDAO
}

// NewRelationDAO constructs a relation DAO over the shared handle.
func NewRelationDAO(db *DB) *RelationDAO {
	return &RelationDAO{
		users:    NewUserDAO(db),
		accounts: NewAccountDAO(db),
		products: NewProductDAO(db),
	}
}

// UsersWithAccounts returns every user joined with its account rows.
func (d *RelationDAO) UsersWithAccounts(ctx context.Context) ([]UserWithAccountsRow, error) {
	users, err := d.users.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserWithAccountsRow, 0, len(users))
	for _, u := range users {
		accounts, err := d.accounts.ByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, UserWithAccountsRow{User: u, Accounts: accounts})
	}
	return out, nil
}

// UserWithAccounts returns one user joined with its account rows, or nil when
// the user is absent.
func (d *RelationDAO) UserWithAccounts(ctx context.Context, userID int64) (*UserWithAccountsRow, error) {
	u, err := d.users.ByID(ctx, userID)
	if err != nil || u == nil {
		return nil, err
	}
	accounts, err := d.accounts.ByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return &UserWithAccountsRow{User: *u, Accounts: accounts}, nil
}

// UsersWithProducts returns every user joined with its product rows.
func (d *RelationDAO) UsersWithProducts(ctx context.Context) ([]UserWithProductsRow, error) {
	users, err := d.users.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserWithProductsRow, 0, len(users))
	for _, u := range users {
		products, err := d.products.ByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, UserWithProductsRow{User: u, Products: products})
	}
	return out, nil
}

// UserWithProducts returns one user joined with its product rows, or nil when
// the user is absent.
func (d *RelationDAO) UserWithProducts(ctx context.Context, userID int64) (*UserWithProductsRow, error) {
	u, err := d.users.ByID(ctx, userID)
	if err != nil || u == nil {
		return nil, err
	}
	products, err := d.products.ByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return &UserWithProductsRow{User: *u, Products: products}, nil
}
