package storage

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrConflict reports a natural-key uniqueness violation. Callers that
	// replay chain events should treat it as "row already exists" and switch
	// to an upsert by natural key.
	ErrConflict = errors.New("storage: conflict")

	// ErrValidation reports a field failing validation before any write
	// reaches the database.
	ErrValidation = errors.New("storage: validation")
)

const pgUniqueViolation = "23505"

// classify maps driver errors onto the storage taxonomy. Anything not
// recognized passes through unchanged, to be retried (or not) by the caller.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", ErrConflict, err)
	}

	// TranslateError does not cover every path, e.g. raw statements
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", ErrConflict, err)
	}

	return err
}
