package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "no rows",
			err:  pgx.ErrNoRows,
			want: ErrNotFound,
		},
		{
			name: "unique violation",
			err:  fmt.Errorf("insert products: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation, Detail: "Key (product_code)=(G001) already exists."}),
			want: ErrConflict,
		},
		{
			name: "foreign key violation",
			err:  &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, Message: "violates foreign key constraint"},
			want: ErrConflict,
		},
		{
			name: "check violation",
			err:  &pgconn.PgError{Code: pgerrcode.CheckViolation},
			want: ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateError(tt.err), tt.want)
		})
	}
}

func TestTranslateError_PassesOtherErrors(t *testing.T) {
	other := errors.New("connection reset by peer")
	assert.Equal(t, other, translateError(other))

	syntax := &pgconn.PgError{Code: pgerrcode.SyntaxError}
	err := translateError(syntax)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestTranslateError_KeepsDetail(t *testing.T) {
	err := translateError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, Detail: "Key (product_id, lang)=(1, en) already exists."})
	assert.Contains(t, err.Error(), "(product_id, lang)=(1, en)")
}

func TestSetIf_SkipsNil(t *testing.T) {
	name := "Paris Guide"
	var price *int64

	var f fields
	setIf(&f, "name", &name)
	setIf(&f, "price", price)

	assert.Equal(t, []string{"name"}, f.columns())
	assert.Equal(t, []any{"Paris Guide"}, f.values())
}
