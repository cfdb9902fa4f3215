package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/snovatour/guideshop/internal/model"
)

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type field struct {
	column string
	value  any
}

// fields хранит упорядоченные пары колонка/значение для INSERT, UPDATE и WHERE.
type fields []field

func (f *fields) set(column string, value any) {
	*f = append(*f, field{column: column, value: value})
}

// setIf добавляет поле только если значение передано.
func setIf[T any](f *fields, column string, v *T) {
	if v != nil {
		f.set(column, *v)
	}
}

func (f fields) columns() []string {
	cols := make([]string, 0, len(f))
	for _, fl := range f {
		cols = append(cols, fl.column)
	}
	return cols
}

func (f fields) values() []any {
	vals := make([]any, 0, len(f))
	for _, fl := range f {
		vals = append(vals, fl.value)
	}
	return vals
}

// table описывает таблицу сущности T и реализует общие CRUD-операции.
// Колонки T сопоставляются по тегам db.
type table[T any] struct {
	name    string
	columns string
	orderBy string
}

func (t table[T]) get(ctx context.Context, q querier, key string, value any) (*T, error) {
	rows, err := q.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, t.columns, t.name, key),
		value,
	)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", t.name, err)
	}
	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
}

func (t table[T]) list(ctx context.Context, q querier, where fields, page model.Page) ([]T, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `SELECT %s FROM %s`, t.columns, t.name)

	args := where.values()
	for i, col := range where.columns() {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		fmt.Fprintf(&sb, "%s = $%d", col, i+1)
	}

	fmt.Fprintf(&sb, " ORDER BY %s LIMIT $%d OFFSET $%d", t.orderBy, len(args)+1, len(args)+2)
	args = append(args, page.Limit, page.Offset)

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", t.name, err)
	}

	res, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", t.name, err)
	}
	if res == nil {
		res = []T{}
	}
	return res, nil
}

func (t table[T]) insert(ctx context.Context, q querier, values fields) (*T, error) {
	placeholders := make([]string, len(values))
	for i := range values {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	rows, err := q.Query(ctx,
		fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
			t.name, strings.Join(values.columns(), ", "), strings.Join(placeholders, ", "), t.columns),
		values.values()...,
	)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", t.name, err)
	}
	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
}

// update применяет только переданные поля. Пустой набор возвращает текущую запись.
func (t table[T]) update(ctx context.Context, q querier, id int64, changes fields) (*T, error) {
	if len(changes) == 0 {
		return t.get(ctx, q, "id", id)
	}

	sets := make([]string, 0, len(changes)+1)
	for i, col := range changes.columns() {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
	}
	sets = append(sets, "updated_at = now()")

	args := append(changes.values(), id)
	rows, err := q.Query(ctx,
		fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d RETURNING %s`,
			t.name, strings.Join(sets, ", "), len(args), t.columns),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", t.name, err)
	}
	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
}

func (t table[T]) delete(ctx context.Context, q querier, id int64) (bool, error) {
	tag, err := q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.name), id)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", t.name, err)
	}
	return tag.RowsAffected() == 1, nil
}
