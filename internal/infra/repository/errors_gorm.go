package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ユニーク制約違反かどうか（PostgreSQL 23505）
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
