package tilecode

import (
	"errors"
	"fmt"

	"github.com/hupe1980/tilecode/iht"
)

// ErrInvalidCapacity indicates a non-positive table or stateless-resolver
// capacity.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidCapacity struct {
	Size  int
	cause error
}

func (e *ErrInvalidCapacity) Error() string {
	return fmt.Sprintf("invalid capacity: %d", e.Size)
}

func (e *ErrInvalidCapacity) Unwrap() error { return e.cause }

// ErrInvalidTilingCount indicates a non-positive number of tilings; no
// tiling scheme is defined for one.
type ErrInvalidTilingCount struct {
	NumTilings int
}

func (e *ErrInvalidTilingCount) Error() string {
	return fmt.Sprintf("invalid tiling count: %d", e.NumTilings)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ec *iht.ErrInvalidCapacity
	if errors.As(err, &ec) {
		return &ErrInvalidCapacity{Size: ec.Size, cause: err}
	}

	return err
}
