package store

import (
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/gcsolar/usinas-backend/internal/pkg/constants"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	tableUsinas   = "usinas"
	tableGeracoes = "geracoes_diarias"
)

// postgres SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

// wrapErr converts driver failures into the typed sentinels the services
// branch on. Classification is by error value and SQLSTATE, never by message.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return constants.ErrDBConflict
		case pgForeignKeyViolation:
			return constants.ErrDBNotFound
		}
	}
	return err
}

// builder returns a squirrel builder with postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func columnList(columns []string) string {
	return strings.Join(columns, ", ")
}
