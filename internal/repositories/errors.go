package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Failure taxonomy surfaced by the data-access layer. Controllers map these
// onto HTTP codes; nothing below this package retries them.
var (
	// ErrConflict reports a uniqueness or constraint violation on write.
	ErrConflict = errors.New("conflicts with existing entry")

	// ErrUnavailable reports any other data-access failure (connectivity,
	// driver error). An absent row is not a failure; reads report it as an
	// empty result and the caller decides whether that is a not-found.
	ErrUnavailable = errors.New("data store unavailable")

	// ErrInvalidArgument reports a precondition violation on repository call
	// inputs. It is a programmer error, raised before the store is touched,
	// and never wrapped as ErrUnavailable.
	ErrInvalidArgument = errors.New("invalid argument")
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint failures.
const uniqueViolation = "23505"

// TranslateError maps a gorm/driver error onto the taxonomy.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	// Already classified errors pass through untouched.
	if errors.Is(err, ErrConflict) || errors.Is(err, ErrUnavailable) || errors.Is(err, ErrInvalidArgument) {
		return err
	}

	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolation:
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}

func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsUnavailableError(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

func IsInvalidArgumentError(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
