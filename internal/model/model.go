// Package model defines domain entities used by services and repositories.
package model

import (
	"fmt"
	"time"

	"github.com/jhpk/purchtrac/internal/errs"
)

// UserType is the closed set of roles a User can carry.
type UserType string

// Known user types, persisted by name.
const (
	UserTypeSelf   UserType = "SELF"
	UserTypeMother UserType = "MOTHER"
	UserTypeFather UserType = "FATHER"
)

// ParseUserType decodes a persisted user type name. Unknown names are a
// corrupt-row condition.
func ParseUserType(s string) (UserType, error) {
	switch t := UserType(s); t {
	case UserTypeSelf, UserTypeMother, UserTypeFather:
		return t, nil
	default:
		return "", fmt.Errorf("user type %q: %w", s, errs.ErrUnknownEnum)
	}
}

// ProductStatus is the closed set of purchase states for a Product.
type ProductStatus string

// Known product statuses, persisted by name.
const (
	StatusPlanned   ProductStatus = "PLANNED"
	StatusPurchased ProductStatus = "PURCHASED"
	StatusCanceled  ProductStatus = "CANCELED"
)

// ParseProductStatus decodes a persisted product status name.
func ParseProductStatus(s string) (ProductStatus, error) {
	switch st := ProductStatus(s); st {
	case StatusPlanned, StatusPurchased, StatusCanceled:
		return st, nil
	default:
		return "", fmt.Errorf("product status %q: %w", s, errs.ErrUnknownEnum)
	}
}

// User is an owner of accounts, products and memos. ID 0 means "not yet persisted".
type User struct {
	ID   int64
	Name string   `validate:"required"`
	Type UserType `validate:"required,oneof=SELF MOTHER FATHER"`
}

// Account is a site credential record. Password is opaque encrypted text,
// produced by the encryption provider before it reaches this layer.
type Account struct {
	ID       int64
	UserID   int64  `validate:"required"`
	SiteName string `validate:"required"`
	SiteURL  string
	Username string `validate:"required"`
	Password string `validate:"required"`
	Notes    string
}

// Product is a tracked planned purchase.
type Product struct {
	ID              int64
	UserID          int64  `validate:"required"`
	Name            string `validate:"required"`
	Description     string
	Price           float64 `validate:"gte=0"`
	SiteName        string  `validate:"required"`
	SiteURL         string
	ImageURL        string
	ReleaseDate     time.Time `validate:"required"`
	PurchaseDate    *time.Time
	ReminderEnabled bool
	ReminderTime    *time.Time
	Status          ProductStatus `validate:"required,oneof=PLANNED PURCHASED CANCELED"`
	Created         time.Time
	Updated         time.Time
}

// Memo is a free-form note with an importance flag.
type Memo struct {
	ID        int64
	UserID    int64  `validate:"required"`
	Title     string `validate:"required"`
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
	Important bool
}

// UserWithAccounts is a read-only projection of a user and its accounts.
type UserWithAccounts struct {
	User     User
	Accounts []Account
}

// UserWithProducts is a read-only projection of a user and its products.
type UserWithProducts struct {
	User     User
	Products []Product
}
