package sqlite

import "database/sql"

// Row structs mirror table columns one to one. Enum columns hold the canonical
// name; timestamps are Unix milliseconds.

// UserRow mirrors one row of the users table.
type UserRow struct {
	ID   int64
	Name string
	Type string
}

// AccountRow mirrors one row of the accounts table. Password holds opaque
// encrypted text.
type AccountRow struct {
	ID       int64
	UserID   int64
	SiteName string
	SiteURL  string
	Username string
	Password string
	Notes    string
}

// ProductRow mirrors one row of the products table.
type ProductRow struct {
	ID              int64
	UserID          int64
	Name            string
	Description     string
	Price           float64
	SiteName        string
	SiteURL         string
	ImageURL        string
	ReleaseDate     int64
	PurchaseDate    sql.NullInt64
	ReminderEnabled bool
	ReminderTime    sql.NullInt64
	Status          string
	Created         int64
	Updated         int64
}

// MemoRow mirrors one row of the memos table.
type MemoRow struct {
	ID        int64
	UserID    int64
	Title     string
	Content   string
	CreatedAt int64
	UpdatedAt int64
	Important bool
}

// UserWithAccountsRow is the composite read of a user and its account rows.
type UserWithAccountsRow struct {
	User     UserRow
	Accounts []AccountRow
}

// UserWithProductsRow is the composite read of a user and its product rows.
type UserWithProductsRow struct {
	User     UserRow
	Products []ProductRow
}
