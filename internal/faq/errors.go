package faq

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrItemIDRequired     = errors.New("faq: item id required")
	ErrCategoryIDRequired = errors.New("faq: category id required")
	ErrCategoryNotEmpty   = errors.New("faq: category still has items")
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("faq %s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether the error chain contains a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// IsValidation reports whether the error chain carries field validation
// failures.
func IsValidation(err error) bool {
	var fields validation.Errors
	return errors.As(err, &fields)
}
