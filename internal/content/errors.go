package content

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrPostIDRequired     = errors.New("content: post id required")
	ErrCategoryIDRequired = errors.New("content: category id required")
	ErrSlugExists         = errors.New("content: slug already exists")
	ErrSlugConflict       = errors.New("content: slug conflict after retry")
	ErrStatusInvalid      = errors.New("content: status invalid")
	ErrStatusTransition   = errors.New("content: status transition not allowed")
	ErrScheduleInvalid    = errors.New("content: scheduled_at must be in the future")
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether the error chain contains a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// IsValidation reports whether the error chain carries field validation
// failures. The error value is an ozzo validation.Errors keyed by the flat
// form field names so the admin UI can highlight the offending inputs.
func IsValidation(err error) bool {
	var fields validation.Errors
	return errors.As(err, &fields)
}

func requiredFieldError(field string) error {
	return validation.NewError(
		"content."+field+"_required",
		fmt.Sprintf("%s is required", field),
	)
}
