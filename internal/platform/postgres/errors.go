package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/RoxyKang/share-my-place-backend/internal/store"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes the stores translate.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"
)

// constraintErrors names schema constraints whose violation has a more specific
// store error than the SQLSTATE class alone.
var constraintErrors = map[string]error{
	"users_email_key": store.ErrEmailExists,
}

// codeErrors maps a SQLSTATE code to the store error for its class.
var codeErrors = map[string]error{
	uniqueViolationCode:     store.ErrDuplicate,
	foreignKeyViolationCode: store.ErrInvalidEntity,
	checkViolationCode:      store.ErrInvalidEntity,
	notNullViolationCode:    store.ErrInvalidEntity,
}

// MapError translates a driver error into a store error. The result wraps both
// the store sentinel and the original error, so errors.Is works for each.
// Errors the stores have no mapping for are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	if target, ok := constraintErrors[pgErr.ConstraintName]; ok {
		return fmt.Errorf("%w: %w", target, err)
	}
	if target, ok := codeErrors[pgErr.Code]; ok {
		return fmt.Errorf("%w: %s: %w", target, violatedObject(pgErr), err)
	}
	return err
}

// violatedObject names the constraint or column a violation refers to.
func violatedObject(pgErr *pgconn.PgError) string {
	switch {
	case pgErr.ConstraintName != "":
		return "constraint " + pgErr.ConstraintName
	case pgErr.ColumnName != "":
		return "column " + pgErr.ColumnName
	default:
		return "code " + pgErr.Code
	}
}

// CheckRowsAffected returns notFound (store.ErrNotFound when nil) if result
// reports that no row was touched.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return errors.New("nil result provided to CheckRowsAffected")
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}
	if notFound == nil {
		return store.ErrNotFound
	}
	return notFound
}
