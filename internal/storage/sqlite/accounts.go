package sqlite

import (
	"context"
	"database/sql"
	"errors"
)

// AccountDAO provides row-level access to the accounts table.
type AccountDAO struct{ db *DB }

// NewAccountDAO constructs an account DAO.
func NewAccountDAO(db *DB) *AccountDAO { return &AccountDAO{db: db} }

const accountCols = `id, user_id, site_name, site_url, username, password, notes`

func scanAccount(row interface{ Scan(...any) error }) (AccountRow, error) {
	var r AccountRow
	err := row.Scan(&r.ID, &r.UserID, &r.SiteName, &r.SiteURL, &r.Username, &r.Password, &r.Notes)
	return r, err
}

// All returns every account row, unordered.
func (d *AccountDAO) All(ctx context.Context) ([]AccountRow, error) {
	return d.query(ctx, `SELECT `+accountCols+` FROM accounts`)
}

// ByUser returns the accounts owned by one user.
func (d *AccountDAO) ByUser(ctx context.Context, userID int64) ([]AccountRow, error) {
	return d.query(ctx, `SELECT `+accountCols+` FROM accounts WHERE user_id = ?`, userID)
}

// ByID returns a single account, or nil when absent.
func (d *AccountDAO) ByID(ctx context.Context, id int64) (*AccountRow, error) {
	r, err := scanAccount(d.db.QueryRowContext(ctx,
		`SELECT `+accountCols+` FROM accounts WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Search returns accounts whose site name or username contains the query.
func (d *AccountDAO) Search(ctx context.Context, query string) ([]AccountRow, error) {
	return d.query(ctx,
		`SELECT `+accountCols+` FROM accounts
		 WHERE site_name LIKE '%' || ? || '%' OR username LIKE '%' || ? || '%'`,
		query, query)
}

// Insert writes a row, replacing on primary-key conflict. ID 0 assigns a new id.
func (d *AccountDAO) Insert(ctx context.Context, r AccountRow) (int64, error) {
	res, err := d.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO accounts (id, user_id, site_name, site_url, username, password, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		nullableID(r.ID), r.UserID, r.SiteName, r.SiteURL, r.Username, r.Password, r.Notes)
	if err != nil {
		return 0, mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	d.db.notify(TableAccounts)
	return id, nil
}

// Update overwrites the full row by id.
func (d *AccountDAO) Update(ctx context.Context, r AccountRow) error {
	_, err := d.db.ExecContext(ctx,
		`UPDATE accounts SET user_id = ?, site_name = ?, site_url = ?, username = ?, password = ?, notes = ?
		 WHERE id = ?`,
		r.UserID, r.SiteName, r.SiteURL, r.Username, r.Password, r.Notes, r.ID)
	if err != nil {
		return mapErr(err)
	}
	d.db.notify(TableAccounts)
	return nil
}

// Delete removes the row by identity.
func (d *AccountDAO) Delete(ctx context.Context, r AccountRow) error {
	_, err := d.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, r.ID)
	if err != nil {
		return mapErr(err)
	}
	d.db.notify(TableAccounts)
	return nil
}

func (d *AccountDAO) query(ctx context.Context, q string, args ...any) ([]AccountRow, error) {
	rows, err := d.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AccountRow
	for rows.Next() {
		r, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
