package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/snovatour/guideshop/internal/model"
)

var productFiles = table[model.ProductFile]{
	name:    "product_files",
	columns: "id, product_id, lang, file_link, description, created_at, updated_at",
	orderBy: "id",
}

// CreateProductFile создаёт файл товара. Пара (product_id, lang) уникальна.
func (r *PostgresRepository) CreateProductFile(ctx context.Context, in model.ProductFileCreate) (*model.ProductFile, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (*model.ProductFile, error) {
		var f fields
		f.set("product_id", in.ProductID)
		f.set("lang", in.Lang)
		f.set("file_link", in.FileLink)
		f.set("description", in.Description)
		return productFiles.insert(ctx, tx, f)
	})
}

// GetProductFile возвращает файл по идентификатору.
func (r *PostgresRepository) GetProductFile(ctx context.Context, id int64) (*model.ProductFile, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (*model.ProductFile, error) {
		return productFiles.get(ctx, tx, "id", id)
	})
}

// GetProductFileByLang возвращает файл товара для указанного языка.
func (r *PostgresRepository) GetProductFileByLang(ctx context.Context, productID int64, lang model.Lang) (*model.ProductFile, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (*model.ProductFile, error) {
		var where fields
		where.set("product_id", productID)
		where.set("lang", lang)

		files, err := productFiles.list(ctx, tx, where, model.Page{Limit: 1})
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, ErrNotFound
		}
		return &files[0], nil
	})
}

// ListProductFiles возвращает страницу файлов, при необходимости только для одного товара.
func (r *PostgresRepository) ListProductFiles(ctx context.Context, productID *int64, page model.Page) ([]model.ProductFile, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) ([]model.ProductFile, error) {
		var where fields
		setIf(&where, "product_id", productID)
		return productFiles.list(ctx, tx, where, page)
	})
}

// UpdateProductFile частично обновляет файл. product_id не меняется.
func (r *PostgresRepository) UpdateProductFile(ctx context.Context, id int64, in model.ProductFileUpdate) (*model.ProductFile, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (*model.ProductFile, error) {
		var f fields
		setIf(&f, "lang", in.Lang)
		setIf(&f, "file_link", in.FileLink)
		setIf(&f, "description", in.Description)
		return productFiles.update(ctx, tx, id, f)
	})
}

// DeleteProductFile удаляет файл.
func (r *PostgresRepository) DeleteProductFile(ctx context.Context, id int64) (bool, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (bool, error) {
		return productFiles.delete(ctx, tx, id)
	})
}
