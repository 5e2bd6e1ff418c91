package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/Surajsachintha/itams-haci-project/migrations"
)

const DefaultMaxConns = 10

func Connect(ctx context.Context, dsn string, maxConns int32) (*pgxpool.Pool, error) {
	const (
		connectTimeout = time.Second * 5
		pingAttempts   = 10
		pingInterval   = time.Millisecond * 500
	)

	dbCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if maxConns <= 0 {
		maxConns = DefaultMaxConns
	}

	dbCfg.MaxConns = maxConns
	dbCfg.ConnConfig.ConnectTimeout = connectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}

	for i := 0; i < pingAttempts; i++ {
		err = pool.Ping(ctx)
		if err == nil {
			return pool, nil
		}

		if i < pingAttempts-1 {
			time.Sleep(pingInterval)
		}
	}

	pool.Close()

	return nil, fmt.Errorf("ping: %w", err)
}

// OpenDB exposes the pool as *sql.DB. Connections stay owned by the pool.
func OpenDB(pool *pgxpool.Pool) *sql.DB {
	return stdlib.OpenDBFromPool(pool)
}

func UpMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())

	err := goose.SetDialect("postgres")
	if err != nil {
		return err
	}

	err = goose.Up(db, ".")
	if err != nil && !errors.Is(err, goose.ErrNoNextVersion) {
		return err
	}

	return nil
}
