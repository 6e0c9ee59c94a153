// Package service contains application use cases composed from the repository
// contracts. Each operation is a single request/response over one repository.
package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jhpk/purchtrac/internal/errs"
)

func newValidator() *validator.Validate {
	return validator.New()
}

func checkStruct(v *validator.Validate, s any) error {
	if err := v.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrValidation, err)
	}
	return nil
}
