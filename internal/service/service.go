// Package service реализует бизнес-логику магазина путеводителей.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/snovatour/guideshop/internal/model"
	"github.com/snovatour/guideshop/internal/payment"
	"github.com/snovatour/guideshop/internal/render"
)

// Repository описывает контракт доступа к данным, используемый сервисом.
type Repository interface {
	Close() error
	Ping(ctx context.Context) error

	CreateProduct(ctx context.Context, in model.ProductCreate) (*model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	GetProductByCode(ctx context.Context, code string) (*model.Product, error)
	ListProducts(ctx context.Context, page model.Page) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id int64, in model.ProductUpdate) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) (bool, error)

	CreateProductCard(ctx context.Context, in model.ProductCardCreate) (*model.ProductCard, error)
	GetProductCard(ctx context.Context, id int64) (*model.ProductCard, error)
	ListProductCards(ctx context.Context, filter model.ProductCardFilter, page model.Page) ([]model.ProductCard, error)
	UpdateProductCard(ctx context.Context, id int64, in model.ProductCardUpdate) (*model.ProductCard, error)
	DeleteProductCard(ctx context.Context, id int64) (bool, error)

	CreateProductCardImage(ctx context.Context, in model.ProductCardImageCreate) (*model.ProductCardImage, error)
	GetProductCardImage(ctx context.Context, id int64) (*model.ProductCardImage, error)
	ListProductCardImages(ctx context.Context, productCardID *int64, page model.Page) ([]model.ProductCardImage, error)
	UpdateProductCardImage(ctx context.Context, id int64, in model.ProductCardImageUpdate) (*model.ProductCardImage, error)
	DeleteProductCardImage(ctx context.Context, id int64) (bool, error)

	CreateProductFile(ctx context.Context, in model.ProductFileCreate) (*model.ProductFile, error)
	GetProductFile(ctx context.Context, id int64) (*model.ProductFile, error)
	GetProductFileByLang(ctx context.Context, productID int64, lang model.Lang) (*model.ProductFile, error)
	ListProductFiles(ctx context.Context, productID *int64, page model.Page) ([]model.ProductFile, error)
	UpdateProductFile(ctx context.Context, id int64, in model.ProductFileUpdate) (*model.ProductFile, error)
	DeleteProductFile(ctx context.Context, id int64) (bool, error)

	CreateOrder(ctx context.Context, o model.Order) (*model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	ListOrders(ctx context.Context, page model.Page) ([]model.Order, error)
	ListOrdersByState(ctx context.Context, state model.OrderState, page model.Page) ([]model.Order, error)

	GetProductWithCard(ctx context.Context, code string, lang model.Lang) (*model.ProductWithCard, error)
}

// PaymentProvider создаёт заказы у внешнего платёжного провайдера.
type PaymentProvider interface {
	CreateOrder(ctx context.Context, in payment.CreateOrderRequest) (*payment.Order, error)
}

// BaseURL возвращает текущий публичный адрес сервиса.
type BaseURL interface {
	Get() string
}

// Service содержит бизнес-логику магазина.
type Service struct {
	repo     Repository
	payments PaymentProvider
	baseURL  BaseURL
	markdown *render.Markdown
	logger   *zap.Logger
}

// NewService создаёт сервис с указанным репозиторием и платёжным провайдером.
func NewService(repo Repository, payments PaymentProvider, baseURL BaseURL, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:     repo,
		payments: payments,
		baseURL:  baseURL,
		markdown: render.NewMarkdown(),
		logger:   logger,
	}
}

// Close закрывает ресурсы сервиса.
func (s *Service) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}

// Ping проверяет доступность хранилища.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
