package calculator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/segyhp/loan-earnings/internal/domain"
	customError "github.com/segyhp/loan-earnings/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks every loan parameter against its allowed range. All
// violations are returned together as FieldRangeErrors.
func Validate(params domain.LoanParameters) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate loan parameters: %w", err)
	}

	fieldErrors := make(FieldRangeErrors, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, FieldRangeError{
			Field: fe.Field(),
			Value: fe.Value(),
			Rule:  fe.Tag(),
			Limit: fe.Param(),
		})
	}
	return fieldErrors
}

// ValidateSelection checks the category choice. A primary category is
// required; the comparison is optional and is dropped when it repeats the
// primary.
func ValidateSelection(selection domain.Selection) (domain.Selection, error) {
	selection.Primary = strings.TrimSpace(selection.Primary)
	selection.Comparison = strings.TrimSpace(selection.Comparison)

	if selection.Primary == "" {
		return domain.Selection{}, customError.ErrMissingPrimaryCategory
	}
	if selection.Comparison == selection.Primary {
		selection.Comparison = ""
	}
	return selection, nil
}

// ValidateDataset checks the earnings level of an income dataset.
func ValidateDataset(dataset domain.Dataset) error {
	if err := validate.Struct(dataset); err != nil {
		return fmt.Errorf("%w: %q", customError.ErrInvalidDataset, dataset.EarningsLevel)
	}
	return nil
}
