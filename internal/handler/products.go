package handler

import (
	"net/http"

	"github.com/snovatour/guideshop/internal/model"
)

// CreateProduct создаёт товар.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.ProductCreate
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "create product error", err)
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

// ListProducts возвращает страницу товаров.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, "list products error", err)
		return
	}

	products, err := h.service.ListProducts(r.Context(), page)
	if err != nil {
		h.writeError(w, r, "list products error", err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(products))
}

// GetProduct возвращает товар по идентификатору.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		h.writeError(w, r, "get product error", err)
		return
	}

	p, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get product error", err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// UpdateProduct частично обновляет товар.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		h.writeError(w, r, "update product error", err)
		return
	}

	var req model.ProductUpdate
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.service.UpdateProduct(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, "update product error", err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// DeleteProduct удаляет товар.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		h.writeError(w, r, "delete product error", err)
		return
	}

	deleted, err := h.service.DeleteProduct(r.Context(), id)
	h.writeDeleted(w, r, "delete product error", deleted, err)
}

// nonNil отдаёт пустой JSON-массив вместо null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
