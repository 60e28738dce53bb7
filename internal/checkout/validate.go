package checkout

import (
	"fmt"
	"reflect"
	"strings"

	pkgerrors "github.com/cafeoro/storefront/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// fieldViolation pairs the first failing field with a shopper-facing message.
type fieldViolation struct {
	Field   string
	Message string
}

// checkStruct validates dest and returns the first violation in declaration
// order, which drives focus placement on the offending input.
func checkStruct(dest any) *fieldViolation {
	err := validate.Struct(dest)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		first := errs[0]
		return &fieldViolation{Field: first.Field(), Message: validationMessage(first)}
	}
	return &fieldViolation{Message: "is invalid"}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	}
	return "is invalid"
}

func validationError(v *fieldViolation, message string) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeValidation, message).WithDetails(map[string]string{
		v.Field: v.Message,
	})
}
