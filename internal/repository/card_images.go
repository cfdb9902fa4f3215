package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/snovatour/guideshop/internal/model"
)

var cardImages = table[model.ProductCardImage]{
	name:    "product_card_images",
	columns: "id, product_card_id, url, alt, description, position, created_at, updated_at",
	orderBy: "position, id",
}

// CreateProductCardImage добавляет изображение в галерею карточки.
func (r *PostgresRepository) CreateProductCardImage(ctx context.Context, in model.ProductCardImageCreate) (*model.ProductCardImage, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (*model.ProductCardImage, error) {
		var f fields
		f.set("product_card_id", in.ProductCardID)
		f.set("url", in.URL)
		f.set("alt", in.Alt)
		f.set("description", in.Description)
		f.set("position", in.Position)
		return cardImages.insert(ctx, tx, f)
	})
}

// GetProductCardImage возвращает изображение по идентификатору.
func (r *PostgresRepository) GetProductCardImage(ctx context.Context, id int64) (*model.ProductCardImage, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (*model.ProductCardImage, error) {
		return cardImages.get(ctx, tx, "id", id)
	})
}

// ListProductCardImages возвращает изображения в порядке позиции в галерее.
func (r *PostgresRepository) ListProductCardImages(ctx context.Context, productCardID *int64, page model.Page) ([]model.ProductCardImage, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) ([]model.ProductCardImage, error) {
		var where fields
		setIf(&where, "product_card_id", productCardID)
		return cardImages.list(ctx, tx, where, page)
	})
}

// UpdateProductCardImage частично обновляет изображение. product_card_id не меняется.
func (r *PostgresRepository) UpdateProductCardImage(ctx context.Context, id int64, in model.ProductCardImageUpdate) (*model.ProductCardImage, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (*model.ProductCardImage, error) {
		var f fields
		setIf(&f, "url", in.URL)
		setIf(&f, "alt", in.Alt)
		setIf(&f, "description", in.Description)
		setIf(&f, "position", in.Position)
		return cardImages.update(ctx, tx, id, f)
	})
}

// DeleteProductCardImage удаляет изображение.
func (r *PostgresRepository) DeleteProductCardImage(ctx context.Context, id int64) (bool, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (bool, error) {
		return cardImages.delete(ctx, tx, id)
	})
}
