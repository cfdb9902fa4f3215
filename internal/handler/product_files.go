package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snovatour/guideshop/internal/model"
)

// CreateProductFile регистрирует файл товара для языка.
func (h *Handler) CreateProductFile(w http.ResponseWriter, r *http.Request) {
	var req model.ProductFileCreate
	if !decodeJSON(w, r, &req) {
		return
	}

	f, err := h.service.CreateProductFile(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "create product file error", err)
		return
	}

	writeJSON(w, http.StatusCreated, f)
}

// ListProductFiles возвращает файлы, при необходимости одного товара.
func (h *Handler) ListProductFiles(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, "list product files error", err)
		return
	}

	productID, err := optionalInt64Query(r, "product_id")
	if err != nil {
		h.writeError(w, r, "list product files error", err)
		return
	}

	files, err := h.service.ListProductFiles(r.Context(), productID, page)
	if err != nil {
		h.writeError(w, r, "list product files error", err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(files))
}

// GetProductFile возвращает файл по идентификатору.
func (h *Handler) GetProductFile(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		h.writeError(w, r, "get product file error", err)
		return
	}

	f, err := h.service.GetProductFile(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get product file error", err)
		return
	}

	writeJSON(w, http.StatusOK, f)
}

// GetProductFileByLang возвращает файл товара для языка.
func (h *Handler) GetProductFileByLang(w http.ResponseWriter, r *http.Request) {
	productID, err := int64Param(r, "product_id")
	if err != nil {
		h.writeError(w, r, "get product file by lang error", err)
		return
	}

	f, err := h.service.GetProductFileByLang(r.Context(), productID, model.Lang(chi.URLParam(r, "lang")))
	if err != nil {
		h.writeError(w, r, "get product file by lang error", err)
		return
	}

	writeJSON(w, http.StatusOK, f)
}

// UpdateProductFile частично обновляет файл товара.
func (h *Handler) UpdateProductFile(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		h.writeError(w, r, "update product file error", err)
		return
	}

	var req model.ProductFileUpdate
	if !decodeJSON(w, r, &req) {
		return
	}

	f, err := h.service.UpdateProductFile(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, "update product file error", err)
		return
	}

	writeJSON(w, http.StatusOK, f)
}

// DeleteProductFile удаляет запись о файле. Сам файл на диске не удаляется.
func (h *Handler) DeleteProductFile(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		h.writeError(w, r, "delete product file error", err)
		return
	}

	deleted, err := h.service.DeleteProductFile(r.Context(), id)
	h.writeDeleted(w, r, "delete product file error", deleted, err)
}
