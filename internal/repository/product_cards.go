package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/snovatour/guideshop/internal/model"
)

var productCards = table[model.ProductCard]{
	name:    "product_card",
	columns: "id, product_id, lang, name, description, created_at, updated_at",
	orderBy: "id",
}

// CreateProductCard создаёт карточку. Пара (product_id, lang) уникальна.
func (r *PostgresRepository) CreateProductCard(ctx context.Context, in model.ProductCardCreate) (*model.ProductCard, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (*model.ProductCard, error) {
		var f fields
		f.set("product_id", in.ProductID)
		f.set("lang", in.Lang)
		f.set("name", in.Name)
		f.set("description", in.Description)
		return productCards.insert(ctx, tx, f)
	})
}

// GetProductCard возвращает карточку по идентификатору.
func (r *PostgresRepository) GetProductCard(ctx context.Context, id int64) (*model.ProductCard, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (*model.ProductCard, error) {
		return productCards.get(ctx, tx, "id", id)
	})
}

// ListProductCards возвращает страницу карточек с необязательными фильтрами.
func (r *PostgresRepository) ListProductCards(ctx context.Context, filter model.ProductCardFilter, page model.Page) ([]model.ProductCard, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) ([]model.ProductCard, error) {
		var where fields
		setIf(&where, "product_id", filter.ProductID)
		setIf(&where, "lang", filter.Lang)
		return productCards.list(ctx, tx, where, page)
	})
}

// UpdateProductCard частично обновляет карточку. product_id не меняется.
func (r *PostgresRepository) UpdateProductCard(ctx context.Context, id int64, in model.ProductCardUpdate) (*model.ProductCard, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (*model.ProductCard, error) {
		var f fields
		setIf(&f, "lang", in.Lang)
		setIf(&f, "name", in.Name)
		setIf(&f, "description", in.Description)
		return productCards.update(ctx, tx, id, f)
	})
}

// DeleteProductCard удаляет карточку.
func (r *PostgresRepository) DeleteProductCard(ctx context.Context, id int64) (bool, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (bool, error) {
		return productCards.delete(ctx, tx, id)
	})
}
