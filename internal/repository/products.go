package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/snovatour/guideshop/internal/model"
)

var products = table[model.Product]{
	name:    "products",
	columns: "id, product_code, price, currency, created_at, updated_at",
	orderBy: "id",
}

// CreateProduct создаёт товар. Повторный product_code приводит к ErrConflict.
func (r *PostgresRepository) CreateProduct(ctx context.Context, in model.ProductCreate) (*model.Product, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (*model.Product, error) {
		var f fields
		f.set("product_code", in.ProductCode)
		f.set("price", in.Price)
		f.set("currency", in.Currency)
		return products.insert(ctx, tx, f)
	})
}

// GetProduct возвращает товар по идентификатору.
func (r *PostgresRepository) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (*model.Product, error) {
		return products.get(ctx, tx, "id", id)
	})
}

// GetProductByCode возвращает товар по бизнес-коду.
func (r *PostgresRepository) GetProductByCode(ctx context.Context, code string) (*model.Product, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (*model.Product, error) {
		return products.get(ctx, tx, "product_code", code)
	})
}

// ListProducts возвращает страницу товаров в порядке возрастания id.
func (r *PostgresRepository) ListProducts(ctx context.Context, page model.Page) ([]model.Product, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) ([]model.Product, error) {
		return products.list(ctx, tx, nil, page)
	})
}

// UpdateProduct частично обновляет товар.
func (r *PostgresRepository) UpdateProduct(ctx context.Context, id int64, in model.ProductUpdate) (*model.Product, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (*model.Product, error) {
		var f fields
		setIf(&f, "product_code", in.ProductCode)
		setIf(&f, "price", in.Price)
		setIf(&f, "currency", in.Currency)
		return products.update(ctx, tx, id, f)
	})
}

// DeleteProduct удаляет товар. Наличие зависимых карточек или файлов приводит к ErrConflict.
func (r *PostgresRepository) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (bool, error) {
		return products.delete(ctx, tx, id)
	})
}
