// Package services contains the five entity services. Each one instantiates
// the generic list repository for its record kind and adds domain-specific
// validation and derived read views.
package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lifekeeper/internal/common"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkStruct runs struct-tag validation and maps failures onto the shared
// validation sentinel so callers can match with errors.Is.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return fmt.Errorf("%w: field %s failed on '%s'", common.ErrValidation, f.Field(), f.Tag())
	}
	return fmt.Errorf("%w: %s", common.ErrValidation, err)
}
