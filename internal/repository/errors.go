package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"navio/internal/apperror"
)

// classify maps driver errors onto the application error taxonomy.
func classify(err error, notFound string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.NotFound(notFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return apperror.Conflict(err)
		case "23503", "22P02": // foreign_key_violation, malformed uuid reference
			return apperror.Reference(err)
		}
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return apperror.Conflict(err)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return apperror.Reference(err)
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "duplicate key"), strings.Contains(msg, "UNIQUE constraint failed"):
		return apperror.Conflict(err)
	case strings.Contains(msg, "violates foreign key"), strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return apperror.Reference(err)
	}
	return err
}

// logQueryError logs a failed statement unless it simply matched no rows.
func logQueryError(logger *zap.Logger, msg string, err error, fields ...zap.Field) {
	if errors.Is(err, sql.ErrNoRows) {
		return
	}
	logger.Error(msg, append(fields, zap.Error(err))...)
}
