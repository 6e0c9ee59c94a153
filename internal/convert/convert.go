// Package convert maps stored rows to domain values and back. The two
// directions are mutual inverses on every field; the only failure mode is an
// unknown persisted enum name.
package convert

import (
	"database/sql"
	"time"

	"github.com/jhpk/purchtrac/internal/model"
	storage "github.com/jhpk/purchtrac/internal/storage/sqlite"
)

func optTime(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.UnixMilli(v.Int64)
	return &t
}

func optMs(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}

// UserToDomain decodes a user row.
func UserToDomain(r storage.UserRow) (model.User, error) {
	typ, err := model.ParseUserType(r.Type)
	if err != nil {
		return model.User{}, err
	}
	return model.User{ID: r.ID, Name: r.Name, Type: typ}, nil
}

// UserToRow encodes a user for storage.
func UserToRow(u model.User) storage.UserRow {
	return storage.UserRow{ID: u.ID, Name: u.Name, Type: string(u.Type)}
}

// UsersToDomain decodes a slice of user rows, failing on the first corrupt row.
func UsersToDomain(rows []storage.UserRow) ([]model.User, error) {
	out := make([]model.User, 0, len(rows))
	for _, r := range rows {
		u, err := UserToDomain(r)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

// AccountToDomain decodes an account row.
func AccountToDomain(r storage.AccountRow) model.Account {
	return model.Account{
		ID:       r.ID,
		UserID:   r.UserID,
		SiteName: r.SiteName,
		SiteURL:  r.SiteURL,
		Username: r.Username,
		Password: r.Password,
		Notes:    r.Notes,
	}
}

// AccountToRow encodes an account for storage.
func AccountToRow(a model.Account) storage.AccountRow {
	return storage.AccountRow{
		ID:       a.ID,
		UserID:   a.UserID,
		SiteName: a.SiteName,
		SiteURL:  a.SiteURL,
		Username: a.Username,
		Password: a.Password,
		Notes:    a.Notes,
	}
}

// AccountsToDomain decodes a slice of account rows.
func AccountsToDomain(rows []storage.AccountRow) []model.Account {
	out := make([]model.Account, 0, len(rows))
	for _, r := range rows {
		out = append(out, AccountToDomain(r))
	}
	return out
}

// ProductToDomain decodes a product row.
func ProductToDomain(r storage.ProductRow) (model.Product, error) {
	status, err := model.ParseProductStatus(r.Status)
	if err != nil {
		return model.Product{}, err
	}
	return model.Product{
		ID:              r.ID,
		UserID:          r.UserID,
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		SiteName:        r.SiteName,
		SiteURL:         r.SiteURL,
		ImageURL:        r.ImageURL,
		ReleaseDate:     time.UnixMilli(r.ReleaseDate),
		PurchaseDate:    optTime(r.PurchaseDate),
		ReminderEnabled: r.ReminderEnabled,
		ReminderTime:    optTime(r.ReminderTime),
		Status:          status,
		Created:         time.UnixMilli(r.Created),
		Updated:         time.UnixMilli(r.Updated),
	}, nil
}

// ProductToRow encodes a product for storage.
func ProductToRow(p model.Product) storage.ProductRow {
	return storage.ProductRow{
		ID:              p.ID,
		UserID:          p.UserID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		SiteName:        p.SiteName,
		SiteURL:         p.SiteURL,
		ImageURL:        p.ImageURL,
		ReleaseDate:     p.ReleaseDate.UnixMilli(),
		PurchaseDate:    optMs(p.PurchaseDate),
		ReminderEnabled: p.ReminderEnabled,
		ReminderTime:    optMs(p.ReminderTime),
		Status:          string(p.Status),
		Created:         p.Created.UnixMilli(),
		Updated:         p.Updated.UnixMilli(),
	}
}

// ProductsToDomain decodes a slice of product rows, failing on the first
// corrupt row.
func ProductsToDomain(rows []storage.ProductRow) ([]model.Product, error) {
	out := make([]model.Product, 0, len(rows))
	for _, r := range rows {
		p, err := ProductToDomain(r)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// MemoToDomain decodes a memo row.
func MemoToDomain(r storage.MemoRow) model.Memo {
	return model.Memo{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: time.UnixMilli(r.CreatedAt),
		UpdatedAt: time.UnixMilli(r.UpdatedAt),
		Important: r.Important,
	}
}

// MemoToRow encodes a memo for storage.
func MemoToRow(m model.Memo) storage.MemoRow {
	return storage.MemoRow{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.UnixMilli(),
		UpdatedAt: m.UpdatedAt.UnixMilli(),
		Important: m.Important,
	}
}

// MemosToDomain decodes a slice of memo rows.
func MemosToDomain(rows []storage.MemoRow) []model.Memo {
	out := make([]model.Memo, 0, len(rows))
	for _, r := range rows {
		out = append(out, MemoToDomain(r))
	}
	return out
}

// UserWithAccountsToDomain decodes a composite projection row.
func UserWithAccountsToDomain(r storage.UserWithAccountsRow) (model.UserWithAccounts, error) {
	u, err := UserToDomain(r.User)
	if err != nil {
		return model.UserWithAccounts{}, err
	}
	return model.UserWithAccounts{User: u, Accounts: AccountsToDomain(r.Accounts)}, nil
}

// UserWithProductsToDomain decodes a composite projection row.
func UserWithProductsToDomain(r storage.UserWithProductsRow) (model.UserWithProducts, error) {
	u, err := UserToDomain(r.User)
	if err != nil {
		return model.UserWithProducts{}, err
	}
	products, err := ProductsToDomain(r.Products)
	if err != nil {
		return model.UserWithProducts{}, err
	}
	return model.UserWithProducts{User: u, Products: products}, nil
}
