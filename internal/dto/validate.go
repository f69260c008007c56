package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/budgeteer-app/backend/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for request DTOs. Struct tags
// cover the transport-shape checks (required fields, string lengths); domain
// invariants that need arithmetic or storage reads live on the entities and
// in the services.
var validate = validator.New(validator.WithRequiredStructEnabled())

// checkStruct runs the validator on a request and translates failures into an
// apperrors.ValidationError keyed the same way the domain entities key their
// failures, so callers see one naming scheme regardless of which layer
// rejected the field.
func checkStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("request validation: %w", err)
	}

	verr := apperrors.NewValidationError()
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			verr.Add(fieldKey(fe.Field()), failureMessage(fe))
		}
	}
	return verr.ErrOrNil()
}

// fieldKey maps a Go struct field name to the key the domain layer uses for
// the same field.
func fieldKey(field string) string {
	switch field {
	case "CategoryID":
		return "category"
	case "AccountID":
		return "account"
	case "SheetID":
		return "sheet"
	default:
		return strings.ToLower(field)
	}
}

func failureMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must be set"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
