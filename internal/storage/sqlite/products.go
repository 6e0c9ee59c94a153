package sqlite

import (
	"context"
	"database/sql"
	"errors"
)

// ProductDAO provides row-level access to the products table.
type ProductDAO struct{ db *DB }

// NewProductDAO constructs a product DAO.
func NewProductDAO(db *DB) *ProductDAO { return &ProductDAO{db: db} }

const productCols = `id, user_id, name, description, price, site_name, site_url, image_url,
	release_date, purchase_date, reminder_enabled, reminder_time, status, created, updated`

func scanProduct(row interface{ Scan(...any) error }) (ProductRow, error) {
	var r ProductRow
	err := row.Scan(
		&r.ID, &r.UserID, &r.Name, &r.Description, &r.Price, &r.SiteName, &r.SiteURL, &r.ImageURL,
		&r.ReleaseDate, &r.PurchaseDate, &r.ReminderEnabled, &r.ReminderTime, &r.Status,
		&r.Created, &r.Updated,
	)
	return r, err
}

// All returns every product row ordered by release date ascending.
func (d *ProductDAO) All(ctx context.Context) ([]ProductRow, error) {
	return d.query(ctx, `SELECT `+productCols+` FROM products ORDER BY release_date ASC`)
}

// ByUser returns the products owned by one user, release date ascending.
func (d *ProductDAO) ByUser(ctx context.Context, userID int64) ([]ProductRow, error) {
	return d.query(ctx,
		`SELECT `+productCols+` FROM products WHERE user_id = ? ORDER BY release_date ASC`, userID)
}

// ByStatus returns products with the given status name, release date ascending.
func (d *ProductDAO) ByStatus(ctx context.Context, status string) ([]ProductRow, error) {
	return d.query(ctx,
		`SELECT `+productCols+` FROM products WHERE status = ? ORDER BY release_date ASC`, status)
}

// ByDateRange returns products whose release date falls inside [from, to].
func (d *ProductDAO) ByDateRange(ctx context.Context, from, to int64) ([]ProductRow, error) {
	return d.query(ctx,
		`SELECT `+productCols+` FROM products WHERE release_date BETWEEN ? AND ? ORDER BY release_date ASC`,
		from, to)
}

// ByID returns a single product, or nil when absent.
func (d *ProductDAO) ByID(ctx context.Context, id int64) (*ProductRow, error) {
	r, err := scanProduct(d.db.QueryRowContext(ctx,
		`SELECT `+productCols+` FROM products WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Search returns products whose name or site name contains the query.
func (d *ProductDAO) Search(ctx context.Context, query string) ([]ProductRow, error) {
	return d.query(ctx,
		`SELECT `+productCols+` FROM products
		 WHERE name LIKE '%' || ? || '%' OR site_name LIKE '%' || ? || '%'`,
		query, query)
}

// Insert writes a row, replacing on primary-key conflict. ID 0 assigns a new id.
func (d *ProductDAO) Insert(ctx context.Context, r ProductRow) (int64, error) {
	res, err := d.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO products (id, user_id, name, description, price, site_name, site_url,
			image_url, release_date, purchase_date, reminder_enabled, reminder_time, status, created, updated)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		nullableID(r.ID), r.UserID, r.Name, r.Description, r.Price, r.SiteName, r.SiteURL,
		r.ImageURL, r.ReleaseDate, r.PurchaseDate, r.ReminderEnabled, r.ReminderTime, r.Status,
		r.Created, r.Updated)
	if err != nil {
		return 0, mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	d.db.notify(TableProducts)
	return id, nil
}

// Update overwrites the full row by id.
func (d *ProductDAO) Update(ctx context.Context, r ProductRow) error {
	_, err := d.db.ExecContext(ctx,
		`UPDATE products SET user_id = ?, name = ?, description = ?, price = ?, site_name = ?,
			site_url = ?, image_url = ?, release_date = ?, purchase_date = ?, reminder_enabled = ?,
			reminder_time = ?, status = ?, created = ?, updated = ?
		 WHERE id = ?`,
		r.UserID, r.Name, r.Description, r.Price, r.SiteName, r.SiteURL, r.ImageURL,
		r.ReleaseDate, r.PurchaseDate, r.ReminderEnabled, r.ReminderTime, r.Status,
		r.Created, r.Updated, r.ID)
	if err != nil {
		return mapErr(err)
	}
	d.db.notify(TableProducts)
	return nil
}

// Delete removes the row by identity.
func (d *ProductDAO) Delete(ctx context.Context, r ProductRow) error {
	_, err := d.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, r.ID)
	if err != nil {
		return mapErr(err)
	}
	d.db.notify(TableProducts)
	return nil
}

func (d *ProductDAO) query(ctx context.Context, q string, args ...any) ([]ProductRow, error) {
	rows, err := d.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProductRow
	for rows.Next() {
		r, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
