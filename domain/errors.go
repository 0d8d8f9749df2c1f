package domain

import (
	"errors"
	"fmt"
)

// ErrStructureNotFound indicates that the header, the day row or the day
// column origin could not be located within the scanned bounds.
var ErrStructureNotFound = errors.New("template structure not found")

// ErrUnknownMonth indicates a header month word outside the known vocabulary.
var ErrUnknownMonth = errors.New("unknown month")

// ErrNoWorkersFound indicates that no worker rows follow the day row.
var ErrNoWorkersFound = errors.New("no worker rows found")

// ErrInvalidMonth indicates a month number outside 1..12.
var ErrInvalidMonth = errors.New("invalid month")

// LocateError reports which template region could not be located.
type LocateError struct {
	Region string // "header", "day row", "day column", "workers"
	Limit  int    // last row or column that was scanned, 0 if unbounded
	Err    error
}

func (e *LocateError) Error() string {
	if e.Limit > 0 {
		return fmt.Sprintf("locate %s (scanned up to %d): %v", e.Region, e.Limit, e.Err)
	}
	return fmt.Sprintf("locate %s: %v", e.Region, e.Err)
}

func (e *LocateError) Unwrap() error {
	return e.Err
}

// NewLocateError creates a new LocateError.
func NewLocateError(region string, limit int, err error) *LocateError {
	return &LocateError{
		Region: region,
		Limit:  limit,
		Err:    err,
	}
}

// IsTemplateError reports whether err was caused by a malformed template
// rather than by I/O or an internal failure.
func IsTemplateError(err error) bool {
	return errors.Is(err, ErrStructureNotFound) ||
		errors.Is(err, ErrUnknownMonth) ||
		errors.Is(err, ErrNoWorkersFound) ||
		errors.Is(err, ErrInvalidMonth)
}
