package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// Error kinds returned by every repository, independent of the driver in use.
var (
	// ErrNotFound is returned when the targeted row does not exist
	ErrNotFound = errors.New("record not found")

	// ErrConstraintViolation is returned when a write references a missing row
	// or collides with a unique key
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrTransient is returned for failures that may succeed when retried:
	// lock contention, serialization conflicts, dropped connections, timeouts
	ErrTransient = errors.New("transient store failure")
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgSerialization       = "40001"
	pgDeadlock            = "40P01"
	pgConnectionClass     = "08"
)

// translate maps driver errors onto the repository error kinds. Errors of any
// other kind are returned unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConstraintViolation) || errors.Is(err, ErrTransient) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTransient, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation, pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrConstraintViolation, pgErr.ConstraintName)
		case pgSerialization, pgDeadlock:
			return fmt.Errorf("%w: %w", ErrTransient, err)
		}
		if strings.HasPrefix(pgErr.Code, pgConnectionClass) {
			return fmt.Errorf("%w: %w", ErrTransient, err)
		}
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrConstraint:
			switch sqliteErr.ExtendedCode {
			case sqlite3.ErrConstraintForeignKey, sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
				return fmt.Errorf("%w: %s", ErrConstraintViolation, sqliteErr.Error())
			}
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return fmt.Errorf("%w: %w", ErrTransient, err)
		}
	}

	return err
}
