package handler

import (
	"net/http"

	"github.com/snovatour/guideshop/internal/model"
	"github.com/snovatour/guideshop/internal/validation"
)

// CreateProductCard создаёт карточку товара.
func (h *Handler) CreateProductCard(w http.ResponseWriter, r *http.Request) {
	var req model.ProductCardCreate
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.service.CreateProductCard(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "create product card error", err)
		return
	}

	writeJSON(w, http.StatusCreated, c)
}

// ListProductCards возвращает карточки с фильтрами product_id и lang.
func (h *Handler) ListProductCards(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, "list product cards error", err)
		return
	}

	var filter model.ProductCardFilter
	if filter.ProductID, err = optionalInt64Query(r, "product_id"); err != nil {
		h.writeError(w, r, "list product cards error", err)
		return
	}
	if raw := r.URL.Query().Get("lang"); raw != "" {
		lang := model.Lang(raw)
		if err := validation.Var("lang", lang, "lang"); err != nil {
			h.writeError(w, r, "list product cards error", err)
			return
		}
		filter.Lang = &lang
	}

	cards, err := h.service.ListProductCards(r.Context(), filter, page)
	if err != nil {
		h.writeError(w, r, "list product cards error", err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(cards))
}

// GetProductCard возвращает карточку по идентификатору.
func (h *Handler) GetProductCard(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		h.writeError(w, r, "get product card error", err)
		return
	}

	c, err := h.service.GetProductCard(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get product card error", err)
		return
	}

	writeJSON(w, http.StatusOK, c)
}

// UpdateProductCard частично обновляет карточку.
func (h *Handler) UpdateProductCard(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		h.writeError(w, r, "update product card error", err)
		return
	}

	var req model.ProductCardUpdate
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.service.UpdateProductCard(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, "update product card error", err)
		return
	}

	writeJSON(w, http.StatusOK, c)
}

// DeleteProductCard удаляет карточку.
func (h *Handler) DeleteProductCard(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		h.writeError(w, r, "delete product card error", err)
		return
	}

	deleted, err := h.service.DeleteProductCard(r.Context(), id)
	h.writeDeleted(w, r, "delete product card error", deleted, err)
}
