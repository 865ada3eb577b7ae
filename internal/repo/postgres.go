package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/SergeyBogomolovv/store-service/internal/entities"
	"github.com/SergeyBogomolovv/store-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	numericOutOfRange   = "22003"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return trm.Conn(ctx, r.db).ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	return trm.Conn(ctx, r.db).GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	return trm.Conn(ctx, r.db).SelectContext(ctx, dest, query, args...)
}

// execAffecting runs a statement and reports notFound when no row matched.
func (r *postgresRepo) execAffecting(ctx context.Context, notFound error, query string, args ...any) error {
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// checkRange reports a value the column type cannot hold as a validation error.
func checkRange(err error) error {
	if pqCode(err) == numericOutOfRange {
		return entities.ErrValueOutOfRange
	}
	return err
}

// touch keeps updated_at monotonic even if the database clock steps back.
var touch = sq.Expr("GREATEST(now(), updated_at)")

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
