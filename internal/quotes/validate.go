package quotes

import (
	"fmt"
	"reflect"
	"strings"

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

// Validate checks the required fields and returns every violation as a
// human-readable message, not just the first.
func Validate(req *QuoteRequest) []string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		details = append(details, validationMessage(fieldErr))
	}
	return details
}

func validationMessage(fe validator.FieldError) string {
	field := fieldPath(fe)
	if fe.Kind() == reflect.Slice {
		return fmt.Sprintf("%s must contain at least one item.", field)
	}
	return fmt.Sprintf("%s is required.", field)
}

// fieldPath turns validator's namespace ("QuoteRequest.customer.name") into
// the payload path ("customer.name").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
