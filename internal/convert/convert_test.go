package convert

import (
	"database/sql"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jhpk/purchtrac/internal/errs"
	"github.com/jhpk/purchtrac/internal/model"
	storage "github.com/jhpk/purchtrac/internal/storage/sqlite"
)

func ms(v int64) time.Time { return time.UnixMilli(v) }

func msPtr(v int64) *time.Time {
	t := time.UnixMilli(v)
	return &t
}

func TestUser_RoundTrip(t *testing.T) {
	t.Parallel()
	u := model.User{ID: 3, Name: "나", Type: model.UserTypeSelf}
	back, err := UserToDomain(UserToRow(u))
	if err != nil {
		t.Fatalf("UserToDomain: %v", err)
	}
	if back != u {
		t.Fatalf("round trip changed user: %+v != %+v", back, u)
	}
}

func TestUserToDomain_CorruptType(t *testing.T) {
	t.Parallel()
	_, err := UserToDomain(storage.UserRow{ID: 1, Name: "x", Type: "ALIEN"})
	if !errors.Is(err, errs.ErrUnknownEnum) {
		t.Fatalf("err=%v, want ErrUnknownEnum", err)
	}
	if _, err := UsersToDomain([]storage.UserRow{
		{ID: 1, Name: "ok", Type: "SELF"},
		{ID: 2, Name: "bad", Type: "ALIEN"},
	}); !errors.Is(err, errs.ErrUnknownEnum) {
		t.Fatalf("slice decode err=%v, want ErrUnknownEnum", err)
	}
}

func TestAccount_RoundTrip(t *testing.T) {
	t.Parallel()
	a := model.Account{
		ID: 7, UserID: 1, SiteName: "shop", SiteURL: "https://shop.example",
		Username: "me", Password: "opaque==", Notes: "2fa via app",
	}
	if back := AccountToDomain(AccountToRow(a)); back != a {
		t.Fatalf("round trip changed account: %+v != %+v", back, a)
	}
}

func TestProduct_RoundTrip(t *testing.T) {
	t.Parallel()
	p := model.Product{
		ID: 11, UserID: 2, Name: "console", Description: "limited edition",
		Price: 499.99, SiteName: "shop", SiteURL: "https://shop.example",
		ImageURL: "https://img.example/c.png",
		ReleaseDate: ms(1_700_000_000_000), PurchaseDate: msPtr(1_700_100_000_000),
		ReminderEnabled: true, ReminderTime: msPtr(1_699_999_000_000),
		Status:  model.StatusPurchased,
		Created: ms(1_690_000_000_000), Updated: ms(1_700_100_000_001),
	}
	back, err := ProductToDomain(ProductToRow(p))
	if err != nil {
		t.Fatalf("ProductToDomain: %v", err)
	}
	if !reflect.DeepEqual(back, p) {
		t.Fatalf("round trip changed product:\n got %+v\nwant %+v", back, p)
	}
}

func TestProduct_RoundTrip_NilOptionals(t *testing.T) {
	t.Parallel()
	p := model.Product{
		ID: 1, UserID: 1, Name: "n", Price: 0, SiteName: "s",
		ReleaseDate: ms(1), Status: model.StatusPlanned,
		Created: ms(2), Updated: ms(3),
	}
	row := ProductToRow(p)
	if row.PurchaseDate.Valid || row.ReminderTime.Valid {
		t.Fatalf("nil optionals must encode as NULL: %+v", row)
	}
	back, err := ProductToDomain(row)
	if err != nil {
		t.Fatalf("ProductToDomain: %v", err)
	}
	if back.PurchaseDate != nil || back.ReminderTime != nil {
		t.Fatalf("NULL must decode to nil: %+v", back)
	}
}

func TestProductToDomain_CorruptStatus(t *testing.T) {
	t.Parallel()
	_, err := ProductToDomain(storage.ProductRow{ID: 1, Status: "BOUGHT"})
	if !errors.Is(err, errs.ErrUnknownEnum) {
		t.Fatalf("err=%v, want ErrUnknownEnum", err)
	}
}

func TestMemo_RoundTrip(t *testing.T) {
	t.Parallel()
	m := model.Memo{
		ID: 5, UserID: 1, Title: "wishlist", Content: "buy before release",
		CreatedAt: ms(1_000), UpdatedAt: ms(2_000), Important: true,
	}
	if back := MemoToDomain(MemoToRow(m)); !reflect.DeepEqual(back, m) {
		t.Fatalf("round trip changed memo: %+v != %+v", back, m)
	}
}

func TestOptTime(t *testing.T) {
	t.Parallel()
	if got := optTime(sql.NullInt64{}); got != nil {
		t.Fatalf("optTime(NULL)=%v, want nil", got)
	}
	got := optTime(sql.NullInt64{Int64: 42, Valid: true})
	if got == nil || got.UnixMilli() != 42 {
		t.Fatalf("optTime(42)=%v", got)
	}
	if v := optMs(nil); v.Valid {
		t.Fatalf("optMs(nil)=%+v, want NULL", v)
	}
}

func TestUserWithProductsToDomain_CorruptChild(t *testing.T) {
	t.Parallel()
	_, err := UserWithProductsToDomain(storage.UserWithProductsRow{
		User:     storage.UserRow{ID: 1, Name: "x", Type: "SELF"},
		Products: []storage.ProductRow{{ID: 2, Status: "???"}},
	})
	if !errors.Is(err, errs.ErrUnknownEnum) {
		t.Fatalf("err=%v, want ErrUnknownEnum", err)
	}
}
