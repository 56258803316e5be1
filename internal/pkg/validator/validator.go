package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"starwars/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Error lists the failing fields and their validation tags.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+e.Fields[k])
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, ", "))
}

func (e *Error) Unwrap() error { return domain.ErrInvalidInput }

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

// Struct is Validate as an error value.
func Struct(v interface{}) error {
	if fields := Validate(v); fields != nil {
		return &Error{Fields: fields}
	}
	return nil
}
