package xpgx

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the squirrel-aware surface the store works against. Getx scans a
// single row (struct or scalar), Selectx a slice, Execx runs a statement.
type Pool interface {
	Getx(ctx context.Context, dest any, q squirrel.Sqlizer) error
	Selectx(ctx context.Context, dest any, q squirrel.Sqlizer) error
	Execx(ctx context.Context, q squirrel.Sqlizer) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

type pool struct {
	db *pgxpool.Pool
}

func NewPool(ctx context.Context, dsn string) (Pool, error) {
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &pool{db: db}, nil
}

func (p *pool) Getx(ctx context.Context, dest any, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}
	return pgxscan.Get(ctx, p.db, dest, sql, args...)
}

func (p *pool) Selectx(ctx context.Context, dest any, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}
	return pgxscan.Select(ctx, p.db, dest, sql, args...)
}

func (p *pool) Execx(ctx context.Context, q squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build sql: %w", err)
	}
	return p.db.Exec(ctx, sql, args...)
}

func (p *pool) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}

func (p *pool) Close() {
	p.db.Close()
}
