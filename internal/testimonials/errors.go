package testimonials

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrTestimonialIDRequired = errors.New("testimonials: testimonial id required")
	ErrAlreadyModerated      = errors.New("testimonials: testimonial already moderated")
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("testimonial %q not found", e.Key)
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
