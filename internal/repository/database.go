package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver, registered as "sqlite"

	"navio/internal/apperror"
	"navio/internal/config"
)

// NewDB establishes a new connection to the configured database.
func NewDB(driver, dataSourceName string, logger *zap.Logger) (*sqlx.DB, error) {
	if driver == config.DriverSQLite {
		dataSourceName = withSQLitePragmas(dataSourceName)
	}

	db, err := sqlx.Connect(driver, dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	if driver == config.DriverSQLite {
		// One writer at a time; also keeps transactions from waiting on SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("Successfully connected to the database!", zap.String("driver", driver))
	return db, nil
}

// withSQLitePragmas turns on foreign key enforcement for every pooled connection.
func withSQLitePragmas(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func now() time.Time {
	return time.Now().UTC()
}

// deleteByID removes one row and reports NotFound when nothing matched.
func deleteByID(ctx context.Context, db *sqlx.DB, table, id, notFound string) error {
	res, err := db.ExecContext(ctx, db.Rebind("DELETE FROM "+table+" WHERE id = ?"), id)
	if err != nil {
		return classify(err, notFound)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.NotFound(notFound)
	}
	return nil
}

// increment bumps a counter column by one and returns its new value.
func increment(ctx context.Context, db *sqlx.DB, table, column, id, notFound string) (int, error) {
	var n int
	query := db.Rebind("UPDATE " + table + " SET " + column + " = " + column + " + 1 WHERE id = ? RETURNING " + column)
	if err := db.GetContext(ctx, &n, query, id); err != nil {
		return 0, classify(err, notFound)
	}
	return n, nil
}
