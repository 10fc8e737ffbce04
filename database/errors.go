package database

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// Constraint violations surfaced to callers. Use errors.Is to detect them.
var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
)

// translateError maps driver-level constraint failures onto the sentinel
// errors above so callers don't have to import the sqlite3 driver.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return errors.Join(ErrUniqueViolation, err)
		case sqlite3.ErrConstraintForeignKey:
			return errors.Join(ErrForeignKeyViolation, err)
		}
	}

	return err
}
