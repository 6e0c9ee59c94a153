package model

import (
	"errors"
	"testing"

	"github.com/jhpk/purchtrac/internal/errs"
)

func TestParseUserType(t *testing.T) {
	t.Parallel()
	for _, want := range []UserType{UserTypeSelf, UserTypeMother, UserTypeFather} {
		got, err := ParseUserType(string(want))
		if err != nil {
			t.Fatalf("ParseUserType(%q): %v", want, err)
		}
		if got != want {
			t.Fatalf("ParseUserType(%q)=%q", want, got)
		}
	}
}

func TestParseUserType_Unknown(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"", "self", "GRANDMA", "SELF "} {
		if _, err := ParseUserType(s); !errors.Is(err, errs.ErrUnknownEnum) {
			t.Fatalf("ParseUserType(%q): err=%v, want ErrUnknownEnum", s, err)
		}
	}
}

func TestParseProductStatus(t *testing.T) {
	t.Parallel()
	for _, want := range []ProductStatus{StatusPlanned, StatusPurchased, StatusCanceled} {
		got, err := ParseProductStatus(string(want))
		if err != nil {
			t.Fatalf("ParseProductStatus(%q): %v", want, err)
		}
		if got != want {
			t.Fatalf("ParseProductStatus(%q)=%q", want, got)
		}
	}
}

func TestParseProductStatus_Unknown(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"", "planned", "BOUGHT"} {
		if _, err := ParseProductStatus(s); !errors.Is(err, errs.ErrUnknownEnum) {
			t.Fatalf("ParseProductStatus(%q): err=%v, want ErrUnknownEnum", s, err)
		}
	}
}
