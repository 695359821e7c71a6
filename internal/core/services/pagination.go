package services

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/vncsmyrnk/blog/internal/core/domain"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
	DefaultStart = 1
)

// pageOffset validates a 1-based start position and a limit and returns the
// zero-based offset they describe.
func pageOffset(limit, start int) (int, error) {
	err := validation.Errors{
		"limit": validation.Validate(limit, validation.Required, validation.Min(1), validation.Max(MaxLimit)),
		"start": validation.Validate(start, validation.Required, validation.Min(1)),
	}.Filter()
	if err != nil {
		return 0, domain.NewValidationError(err)
	}
	return start - 1, nil
}
