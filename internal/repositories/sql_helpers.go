package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

const (
	mysqlErrDuplicateEntry   = 1062
	mysqlErrNoReferencedRow  = 1216
	mysqlErrNoReferencedRow2 = 1452
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func isMySQLError(err error, numbers ...uint16) bool {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return false
	}
	for _, n := range numbers {
		if mysqlErr.Number == n {
			return true
		}
	}
	return false
}

func isDuplicateEntry(err error) bool {
	return isMySQLError(err, mysqlErrDuplicateEntry)
}

func isMissingReference(err error) bool {
	return isMySQLError(err, mysqlErrNoReferencedRow, mysqlErrNoReferencedRow2)
}

// placeholders returns n comma separated copies of group, e.g. "(?, ?),(?, ?)"
func placeholders(group string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = group
	}
	return strings.Join(parts, ",")
}

func nullIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
