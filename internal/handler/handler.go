// Package handler содержит HTTP-обработчики API и страниц магазина путеводителей.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/snovatour/guideshop/internal/model"
	"github.com/snovatour/guideshop/internal/payment"
	"github.com/snovatour/guideshop/internal/render"
	"github.com/snovatour/guideshop/internal/repository"
	"github.com/snovatour/guideshop/internal/validation"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	Ping(ctx context.Context) error

	CreateProduct(ctx context.Context, in model.ProductCreate) (*model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
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

	CreateOrder(ctx context.Context, in model.OrderCreate) (string, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	ListOrders(ctx context.Context, page model.Page) ([]model.Order, error)
	ListOrdersByState(ctx context.Context, state model.OrderState, page model.Page) ([]model.Order, error)

	ProductPage(ctx context.Context, lang model.Lang, code string) (*render.ProductView, error)
	ThankYouPage(ctx context.Context, lang model.Lang, code string) (*render.ThankYouView, error)
}

// Handler реализует HTTP-обработчики магазина.
type Handler struct {
	service    Service
	logger     *zap.Logger
	templates  *render.Templates
	filesRoot  string
	staticRoot string
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
// Файлы товаров отдаются из filesRoot, статика страниц из staticRoot.
func NewHandler(s Service, logger *zap.Logger, templates *render.Templates, filesRoot, staticRoot string) *Handler {
	return &Handler{
		service:    s,
		logger:     logger,
		templates:  templates,
		filesRoot:  filesRoot,
		staticRoot: staticRoot,
	}
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor сопоставляет ошибку слоя бизнес-логики коду ответа и короткому сообщению.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, validation.ErrValidation):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, payment.ErrNotConfigured):
		return http.StatusServiceUnavailable, "payment provider is not configured"
	case errors.Is(err, payment.ErrUnreachable):
		return http.StatusBadGateway, "payment provider is unreachable"
	case errors.Is(err, payment.ErrProviderError):
		return http.StatusBadGateway, "error on payment provider side"
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	status, detail := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(msg, zap.Error(err), zap.String("path", r.URL.Path))
	}
	writeJSON(w, status, errorResponse{Detail: detail})
}

func badRequest(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Detail: detail})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		badRequest(w, "malformed JSON body")
		return false
	}
	return true
}

// int64Param разбирает положительный целочисленный параметр пути.
func int64Param(r *http.Request, name string) (int64, error) {
	v, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", validation.ErrValidation, name)
	}
	return v, nil
}

// optionalInt64Query разбирает необязательный фильтр из строки запроса.
func optionalInt64Query(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, fmt.Errorf("%w: %s must be a positive integer", validation.ErrValidation, name)
	}
	return &v, nil
}

// pageParams читает limit и offset: limit от 1 до 1000, offset не меньше 0.
func pageParams(r *http.Request) (model.Page, error) {
	page := model.Page{Limit: defaultLimit}
	q := r.URL.Query()

	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > maxLimit {
			return page, fmt.Errorf("%w: limit must be between 1 and %d", validation.ErrValidation, maxLimit)
		}
		page.Limit = v
	}

	if raw := q.Get("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return page, fmt.Errorf("%w: offset must be non-negative", validation.ErrValidation)
		}
		page.Offset = v
	}

	return page, nil
}

// writeDeleted отвечает 204 для удалённой записи и 404, если её не было.
func (h *Handler) writeDeleted(w http.ResponseWriter, r *http.Request, msg string, deleted bool, err error) {
	if err != nil {
		h.writeError(w, r, msg, err)
		return
	}
	if !deleted {
		h.writeError(w, r, msg, repository.ErrNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type messageResponse struct {
	Message string `json:"message"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// Ping отвечает на проверку живости сервиса.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Hello World"})
}

// HealthDB проверяет соединение с базой данных.
func (h *Handler) HealthDB(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Ping(r.Context()); err != nil {
		h.logger.Error("database health check failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "database is unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}
