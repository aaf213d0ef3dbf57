package validator

import (
	"github.com/go-playground/validator/v10"

	apperrors "github.com/quickmom/quickmom/errors"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()
	return &CustomValidator{v: v}
}

// Validate performs struct validation. Failures surface as a 400
// ValidationError so handlers can return them directly.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.v.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.ErrValidation(err.Error())
	}

	appErr := apperrors.ErrMissingFields()
	for _, fe := range fieldErrs {
		appErr = appErr.WithDetail(fe.Field(), fe.Tag())
	}
	return appErr
}
