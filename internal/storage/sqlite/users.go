package sqlite

import (
	"context"
	"database/sql"
	"errors"
)

// UserDAO provides row-level access to the users table.
type UserDAO struct{ db *DB }

// NewUserDAO constructs a user DAO.
func NewUserDAO(db *DB) *UserDAO { return &UserDAO{db: db} }

const userCols = `id, name, type`

func scanUser(row interface{ Scan(...any) error }) (UserRow, error) {
	var r UserRow
	err := row.Scan(&r.ID, &r.Name, &r.Type)
	return r, err
}

// All returns every user row, unordered.
func (d *UserDAO) All(ctx context.Context) ([]UserRow, error) {
	return d.query(ctx, `SELECT `+userCols+` FROM users`)
}

// ByType returns users with the given type name.
func (d *UserDAO) ByType(ctx context.Context, typ string) ([]UserRow, error) {
	return d.query(ctx, `SELECT `+userCols+` FROM users WHERE type = ?`, typ)
}

// ByID returns a single user, or nil when absent.
func (d *UserDAO) ByID(ctx context.Context, id int64) (*UserRow, error) {
	r, err := scanUser(d.db.QueryRowContext(ctx, `SELECT `+userCols+` FROM users WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Insert writes a row, replacing on primary-key conflict. ID 0 assigns a new id.
func (d *UserDAO) Insert(ctx context.Context, r UserRow) (int64, error) {
	res, err := d.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO users (id, name, type) VALUES (?, ?, ?)`,
		nullableID(r.ID), r.Name, r.Type)
	if err != nil {
		return 0, mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	d.db.notify(TableUsers)
	return id, nil
}

// Update overwrites the full row by id.
func (d *UserDAO) Update(ctx context.Context, r UserRow) error {
	_, err := d.db.ExecContext(ctx,
		`UPDATE users SET name = ?, type = ? WHERE id = ?`, r.Name, r.Type, r.ID)
	if err != nil {
		return mapErr(err)
	}
	d.db.notify(TableUsers)
	return nil
}

// Delete removes the row by identity. Dependent accounts, products and memos
// cascade, so watchers of those tables are notified too.
func (d *UserDAO) Delete(ctx context.Context, r UserRow) error {
	_, err := d.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, r.ID)
	if err != nil {
		return mapErr(err)
	}
	d.db.notify(TableUsers, TableAccounts, TableProducts, TableMemos)
	return nil
}

func (d *UserDAO) query(ctx context.Context, q string, args ...any) ([]UserRow, error) {
	rows, err := d.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []UserRow
	for rows.Next() {
		r, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
