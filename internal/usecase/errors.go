package usecase

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/performance"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/store"
)

var (
	ErrInvalidInput          = crerr.New("invalid input")
	ErrNotFound              = crerr.New("resource not found")
	ErrDuplicateEntry        = crerr.New("duplicate entry")
	ErrUnauthorized          = crerr.New("unauthorized")
	ErrDependencyUnavailable = crerr.New("dependency unavailable")
)

// translateStoreError maps errors marked by storage adapters onto use case
// sentinels. Errors that already carry a sentinel pass through unchanged.
func translateStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case crerr.Is(err, ErrInvalidInput), crerr.Is(err, ErrNotFound),
		crerr.Is(err, ErrDuplicateEntry), crerr.Is(err, ErrDependencyUnavailable):
		return err
	case crerr.Is(err, performance.ErrDuplicate):
		return fmt.Errorf("%w: %v", ErrDuplicateEntry, err)
	case crerr.Is(err, store.ErrUnavailable):
		return fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
	default:
		return err
	}
}
