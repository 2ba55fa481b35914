package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	apierrors "github.com/narender/product-console/common/apierrors"
)

// Singleton validator instance
var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// report json/query names instead of Go field names
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
}

// ValidateRequest performs validation on the struct payload.
// Returns nil on success, or an AppError with ErrCodeRequestValidation whose
// message lists every failed field.
func ValidateRequest(payload any) *apierrors.AppError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var messages []string
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		for _, vErr := range vErrs {
			messages = append(messages, describe(vErr))
		}
	} else {
		messages = append(messages, err.Error())
	}

	errMsg := "Validation failed: " + strings.Join(messages, "; ")
	return apierrors.NewBusinessError(apierrors.ErrCodeRequestValidation, errMsg, err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must not be below %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must not exceed %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation on '%s'", fe.Field(), fe.Tag())
	}
}
