package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pilgrim-travel/internal/domain"
)

// Schema describes how a catalog entity maps onto its table. The same value
// drives the Postgres and in-memory implementations.
type Schema[T any] struct {
	Resource string
	Table    string
	// Columns lists the writable columns in the order Values returns them.
	Columns []string
	Values  func(*T) []any
	Meta    func(*T) *domain.Meta

	// ParentColumn, when set, enables ListFilter.ParentID.
	ParentColumn string
	Parent       func(*T) string

	// VisibleColumn, when set, enables ListFilter.OnlyVisible.
	VisibleColumn string
	Visible       func(*T) bool

	OrderBy string
	// Less orders in-memory listings; nil means newest first.
	Less func(a, b *T) bool
}

// ListFilter narrows catalog listings.
type ListFilter struct {
	ParentID    string
	OnlyVisible bool
	Limit       int
	Offset      int
}

// CatalogRepository is the CRUD contract shared by every catalog resource.
type CatalogRepository[T any] interface {
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	GetByID(ctx context.Context, id string) (*T, error)
	List(ctx context.Context, filter ListFilter) ([]T, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
	Delete(ctx context.Context, id string) error
}

type catalogRepository[T any] struct {
	pool   *pgxpool.Pool
	schema Schema[T]
}

// NewCatalogRepository returns a Postgres-backed implementation for schema.
func NewCatalogRepository[T any](pool *pgxpool.Pool, schema Schema[T]) CatalogRepository[T] {
	return &catalogRepository[T]{pool: pool, schema: schema}
}

func (r *catalogRepository[T]) Create(ctx context.Context, item *T) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING *`,
		r.schema.Table,
		strings.Join(r.schema.Columns, ", "),
		placeholders(1, len(r.schema.Columns)),
	)
	return r.queryInto(ctx, item, query, r.schema.Values(item)...)
}

func (r *catalogRepository[T]) Update(ctx context.Context, item *T) error {
	sets := make([]string, 0, len(r.schema.Columns)+1)
	for i, col := range r.schema.Columns {
		sets = append(sets, fmt.Sprintf("%s=$%d", col, i+1))
	}
	sets = append(sets, "updated_at=NOW()")

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id=$%d RETURNING *`,
		r.schema.Table,
		strings.Join(sets, ", "),
		len(r.schema.Columns)+1,
	)
	args := append(r.schema.Values(item), r.schema.Meta(item).ID)
	return r.queryInto(ctx, item, query, args...)
}

func (r *catalogRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var item T
	query := fmt.Sprintf(`SELECT * FROM %s WHERE id=$1`, r.schema.Table)
	if err := r.queryInto(ctx, &item, query, id); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepository[T]) List(ctx context.Context, filter ListFilter) ([]T, error) {
	where, args := r.where(filter)
	query := fmt.Sprintf(`SELECT * FROM %s%s ORDER BY %s`, r.schema.Table, where, r.orderBy())
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

func (r *catalogRepository[T]) Count(ctx context.Context, filter ListFilter) (int, error) {
	where, args := r.where(filter)
	var count int
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, r.schema.Table, where), args...).Scan(&count)
	return count, err
}

func (r *catalogRepository[T]) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id=$1`, r.schema.Table), id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *catalogRepository[T]) queryInto(ctx context.Context, dst *T, query string, args ...any) error {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return err
	}
	*dst = row
	return nil
}

func (r *catalogRepository[T]) where(filter ListFilter) (string, []any) {
	var clauses []string
	var args []any
	if filter.ParentID != "" && r.schema.ParentColumn != "" {
		args = append(args, filter.ParentID)
		clauses = append(clauses, fmt.Sprintf("%s=$%d", r.schema.ParentColumn, len(args)))
	}
	if filter.OnlyVisible && r.schema.VisibleColumn != "" {
		clauses = append(clauses, r.schema.VisibleColumn+" = TRUE")
	}
	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *catalogRepository[T]) orderBy() string {
	if r.schema.OrderBy != "" {
		return r.schema.OrderBy
	}
	return "created_at DESC"
}

func placeholders(start, n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("$%d", start+i)
	}
	return strings.Join(parts, ", ")
}
