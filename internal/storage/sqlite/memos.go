package sqlite

import (
	"context"
	"database/sql"
	"errors"
)

// MemoDAO provides row-level access to the memos table.
type MemoDAO struct{ db *DB }

// NewMemoDAO constructs a memo DAO.
func NewMemoDAO(db *DB) *MemoDAO { return &MemoDAO{db: db} }

const memoCols = `id, user_id, title, content, created_at, updated_at, is_important`

func scanMemo(row interface{ Scan(...any) error }) (MemoRow, error) {
	var r MemoRow
	err := row.Scan(&r.ID, &r.UserID, &r.Title, &r.Content, &r.CreatedAt, &r.UpdatedAt, &r.Important)
	return r, err
}

// All returns every memo row ordered by most recently updated first.
func (d *MemoDAO) All(ctx context.Context) ([]MemoRow, error) {
	return d.query(ctx, `SELECT `+memoCols+` FROM memos ORDER BY updated_at DESC`)
}

// ByUser returns the memos owned by one user, most recently updated first.
func (d *MemoDAO) ByUser(ctx context.Context, userID int64) ([]MemoRow, error) {
	return d.query(ctx,
		`SELECT `+memoCols+` FROM memos WHERE user_id = ? ORDER BY updated_at DESC`, userID)
}

// Important returns memos flagged important, most recently updated first.
func (d *MemoDAO) Important(ctx context.Context) ([]MemoRow, error) {
	return d.query(ctx,
		`SELECT `+memoCols+` FROM memos WHERE is_important = 1 ORDER BY updated_at DESC`)
}

// ByID returns a single memo, or nil when absent.
func (d *MemoDAO) ByID(ctx context.Context, id int64) (*MemoRow, error) {
	r, err := scanMemo(d.db.QueryRowContext(ctx, `SELECT `+memoCols+` FROM memos WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Search returns memos whose title or content contains the query.
func (d *MemoDAO) Search(ctx context.Context, query string) ([]MemoRow, error) {
	return d.query(ctx,
		`SELECT `+memoCols+` FROM memos
		 WHERE title LIKE '%' || ? || '%' OR content LIKE '%' || ? || '%'
		 ORDER BY updated_at DESC`,
		query, query)
}

// Insert writes a row, replacing on primary-key conflict. ID 0 assigns a new id.
func (d *MemoDAO) Insert(ctx context.Context, r MemoRow) (int64, error) {
	res, err := d.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO memos (id, user_id, title, content, created_at, updated_at, is_important)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		nullableID(r.ID), r.UserID, r.Title, r.Content, r.CreatedAt, r.UpdatedAt, r.Important)
	if err != nil {
		return 0, mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	d.db.notify(TableMemos)
	return id, nil
}

// Update overwrites the full row by id.
func (d *MemoDAO) Update(ctx context.Context, r MemoRow) error {
	_, err := d.db.ExecContext(ctx,
		`UPDATE memos SET user_id = ?, title = ?, content = ?, created_at = ?, updated_at = ?, is_important = ?
		 WHERE id = ?`,
		r.UserID, r.Title, r.Content, r.CreatedAt, r.UpdatedAt, r.Important, r.ID)
	if err != nil {
		return mapErr(err)
	}
	d.db.notify(TableMemos)
	return nil
}

// Delete removes the row by identity.
func (d *MemoDAO) Delete(ctx context.Context, r MemoRow) error {
	_, err := d.db.ExecContext(ctx, `DELETE FROM memos WHERE id = ?`, r.ID)
	if err != nil {
		return mapErr(err)
	}
	d.db.notify(TableMemos)
	return nil
}

func (d *MemoDAO) query(ctx context.Context, q string, args ...any) ([]MemoRow, error) {
	rows, err := d.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MemoRow
	for rows.Next() {
		r, err := scanMemo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
