package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
	"github.com/Surajsachintha/itams-haci-project/internal/schema"
)

// SQLExecutor is satisfied by *sql.DB and *sql.Tx.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TableGateway runs CRUD statements against tables described by schema descriptors.
// Identifiers are taken from the descriptor only; every value is a bound parameter.
type TableGateway struct {
	db     SQLExecutor
	format sq.PlaceholderFormat
}

func NewTableGateway(db SQLExecutor, format sq.PlaceholderFormat) *TableGateway {
	return &TableGateway{
		db:     db,
		format: format,
	}
}

func (g *TableGateway) Select(ctx context.Context, t schema.Table) ([]entity.Record, error) {
	query, args, err := sq.Select(t.ColumnNames()...).
		From(t.Name).
		OrderBy(t.PrimaryKey.Name).
		PlaceholderFormat(g.format).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	return g.query(ctx, query, args)
}

func (g *TableGateway) Pairs(ctx context.Context, t schema.Table, idColumn, labelColumn string) ([]entity.Record, error) {
	if !t.HasColumn(idColumn) {
		return nil, &schema.ValidationError{Table: t.Name, Column: idColumn, Reason: "unknown column"}
	}

	if !t.HasColumn(labelColumn) {
		return nil, &schema.ValidationError{Table: t.Name, Column: labelColumn, Reason: "unknown column"}
	}

	query, args, err := sq.Select(idColumn, labelColumn).
		From(t.Name).
		OrderBy(labelColumn).
		PlaceholderFormat(g.format).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	return g.query(ctx, query, args)
}

func (g *TableGateway) Insert(ctx context.Context, t schema.Table, v schema.Values) (int64, error) {
	query, args, err := sq.Insert(t.Name).
		Columns(v.Columns...).
		Values(v.Args...).
		Suffix("RETURNING " + t.PrimaryKey.Name).
		PlaceholderFormat(g.format).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}

	defer g.trace(ctx, query, time.Now())

	var id int64

	err = g.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert into %s: %w", t.Name, err)
	}

	return id, nil
}

func (g *TableGateway) Update(ctx context.Context, t schema.Table, id any, v schema.Values) (int64, error) {
	stmt := sq.Update(t.Name).PlaceholderFormat(g.format)

	for i, c := range v.Columns {
		stmt = stmt.Set(c, v.Args[i])
	}

	query, args, err := stmt.Where(sq.Eq{t.PrimaryKey.Name: id}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build update: %w", err)
	}

	return g.exec(ctx, t, query, args)
}

func (g *TableGateway) Delete(ctx context.Context, t schema.Table, id any) (int64, error) {
	query, args, err := sq.Delete(t.Name).
		Where(sq.Eq{t.PrimaryKey.Name: id}).
		PlaceholderFormat(g.format).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	return g.exec(ctx, t, query, args)
}

func (g *TableGateway) exec(ctx context.Context, t schema.Table, query string, args []any) (int64, error) {
	defer g.trace(ctx, query, time.Now())

	res, err := g.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("exec on %s: %w", t.Name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	return n, nil
}

func (g *TableGateway) query(ctx context.Context, query string, args []any) ([]entity.Record, error) {
	defer g.trace(ctx, query, time.Now())

	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	records := make([]entity.Record, 0)

	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))

		for i := range values {
			ptrs[i] = &values[i]
		}

		err = rows.Scan(ptrs...)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		rec := make(entity.Record, len(cols))

		for i, c := range cols {
			if b, ok := values[i].([]byte); ok {
				rec[c] = string(b)
				continue
			}

			rec[c] = values[i]
		}

		records = append(records, rec)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return records, nil
}

func (g *TableGateway) trace(ctx context.Context, query string, start time.Time) {
	slog.DebugContext(ctx, "gateway sql", "query", query, "duration", time.Since(start).String())
}
