package service

import (
	"context"

	"github.com/snovatour/guideshop/internal/model"
	"github.com/snovatour/guideshop/internal/validation"
)

// CreateProduct проверяет и создаёт товар.
func (s *Service) CreateProduct(ctx context.Context, in model.ProductCreate) (*model.Product, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return s.repo.CreateProduct(ctx, in)
}

// GetProduct возвращает товар по идентификатору.
func (s *Service) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

// ListProducts возвращает страницу товаров.
func (s *Service) ListProducts(ctx context.Context, page model.Page) ([]model.Product, error) {
	return s.repo.ListProducts(ctx, page)
}

// UpdateProduct проверяет и применяет частичное обновление товара.
func (s *Service) UpdateProduct(ctx context.Context, id int64, in model.ProductUpdate) (*model.Product, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return s.repo.UpdateProduct(ctx, id, in)
}

// DeleteProduct удаляет товар.
func (s *Service) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteProduct(ctx, id)
}

// CreateProductCard проверяет и создаёт карточку товара.
func (s *Service) CreateProductCard(ctx context.Context, in model.ProductCardCreate) (*model.ProductCard, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return s.repo.CreateProductCard(ctx, in)
}

// GetProductCard возвращает карточку по идентификатору.
func (s *Service) GetProductCard(ctx context.Context, id int64) (*model.ProductCard, error) {
	return s.repo.GetProductCard(ctx, id)
}

// ListProductCards возвращает страницу карточек.
func (s *Service) ListProductCards(ctx context.Context, filter model.ProductCardFilter, page model.Page) ([]model.ProductCard, error) {
	return s.repo.ListProductCards(ctx, filter, page)
}

// UpdateProductCard проверяет и применяет частичное обновление карточки.
func (s *Service) UpdateProductCard(ctx context.Context, id int64, in model.ProductCardUpdate) (*model.ProductCard, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return s.repo.UpdateProductCard(ctx, id, in)
}

// DeleteProductCard удаляет карточку.
func (s *Service) DeleteProductCard(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteProductCard(ctx, id)
}

// CreateProductCardImage проверяет и создаёт изображение карточки.
func (s *Service) CreateProductCardImage(ctx context.Context, in model.ProductCardImageCreate) (*model.ProductCardImage, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return s.repo.CreateProductCardImage(ctx, in)
}

// GetProductCardImage возвращает изображение по идентификатору.
func (s *Service) GetProductCardImage(ctx context.Context, id int64) (*model.ProductCardImage, error) {
	return s.repo.GetProductCardImage(ctx, id)
}

// ListProductCardImages возвращает страницу изображений.
func (s *Service) ListProductCardImages(ctx context.Context, productCardID *int64, page model.Page) ([]model.ProductCardImage, error) {
	return s.repo.ListProductCardImages(ctx, productCardID, page)
}

// UpdateProductCardImage проверяет и применяет частичное обновление изображения.
func (s *Service) UpdateProductCardImage(ctx context.Context, id int64, in model.ProductCardImageUpdate) (*model.ProductCardImage, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return s.repo.UpdateProductCardImage(ctx, id, in)
}

// DeleteProductCardImage удаляет изображение.
func (s *Service) DeleteProductCardImage(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteProductCardImage(ctx, id)
}

// CreateProductFile проверяет и создаёт файл товара.
func (s *Service) CreateProductFile(ctx context.Context, in model.ProductFileCreate) (*model.ProductFile, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return s.repo.CreateProductFile(ctx, in)
}

// GetProductFile возвращает файл по идентификатору.
func (s *Service) GetProductFile(ctx context.Context, id int64) (*model.ProductFile, error) {
	return s.repo.GetProductFile(ctx, id)
}

// GetProductFileByLang возвращает файл товара для языка.
func (s *Service) GetProductFileByLang(ctx context.Context, productID int64, lang model.Lang) (*model.ProductFile, error) {
	if err := validation.Var("lang", lang, "lang"); err != nil {
		return nil, err
	}
	return s.repo.GetProductFileByLang(ctx, productID, lang)
}

// ListProductFiles возвращает страницу файлов.
func (s *Service) ListProductFiles(ctx context.Context, productID *int64, page model.Page) ([]model.ProductFile, error) {
	return s.repo.ListProductFiles(ctx, productID, page)
}

// UpdateProductFile проверяет и применяет частичное обновление файла.
func (s *Service) UpdateProductFile(ctx context.Context, id int64, in model.ProductFileUpdate) (*model.ProductFile, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return s.repo.UpdateProductFile(ctx, id, in)
}

// DeleteProductFile удаляет файл.
func (s *Service) DeleteProductFile(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteProductFile(ctx, id)
}
