package handler

import (
	"net/http"

	"github.com/snovatour/guideshop/internal/model"
)

// CreateProductCardImage добавляет изображение в галерею карточки.
func (h *Handler) CreateProductCardImage(w http.ResponseWriter, r *http.Request) {
	var req model.ProductCardImageCreate
	if !decodeJSON(w, r, &req) {
		return
	}

	img, err := h.service.CreateProductCardImage(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "create product card image error", err)
		return
	}

	writeJSON(w, http.StatusCreated, img)
}

// ListProductCardImages возвращает изображения, при необходимости одной карточки.
func (h *Handler) ListProductCardImages(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, "list product card images error", err)
		return
	}

	cardID, err := optionalInt64Query(r, "product_card_id")
	if err != nil {
		h.writeError(w, r, "list product card images error", err)
		return
	}

	images, err := h.service.ListProductCardImages(r.Context(), cardID, page)
	if err != nil {
		h.writeError(w, r, "list product card images error", err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(images))
}

func (h *Handler) GetProductCardImage(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		h.writeError(w, r, "get product card image error", err)
		return
	}

	img, err := h.service.GetProductCardImage(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get product card image error", err)
		return
	}

	writeJSON(w, http.StatusOK, img)
}

func (h *Handler) UpdateProductCardImage(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		h.writeError(w, r, "update product card image error", err)
		return
	}

	var req model.ProductCardImageUpdate
	if !decodeJSON(w, r, &req) {
		return
	}

	img, err := h.service.UpdateProductCardImage(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, "update product card image error", err)
		return
	}

	writeJSON(w, http.StatusOK, img)
}

func (h *Handler) DeleteProductCardImage(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		h.writeError(w, r, "delete product card image error", err)
		return
	}

	deleted, err := h.service.DeleteProductCardImage(r.Context(), id)
	h.writeDeleted(w, r, "delete product card image error", deleted, err)
}
