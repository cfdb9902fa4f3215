package handler

import (
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snovatour/guideshop/internal/model"
)

type createOrderResponse struct {
	URL string `json:"url"`
}

// CreateOrder оформляет заказ и возвращает адрес страницы оплаты.
// Заказ из HTML-формы страницы товара сразу перенаправляется на оплату.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	fromForm := isForm(r)

	var req model.OrderCreate
	if fromForm {
		if err := r.ParseForm(); err != nil {
			badRequest(w, "malformed form body")
			return
		}
		req = model.OrderCreate{
			ProductCode:        r.PostForm.Get("product_code"),
			Lang:               model.Lang(r.PostForm.Get("lang")),
			CustomersEmail:     r.PostForm.Get("customers_email"),
			SettlementCurrency: model.Currency(r.PostForm.Get("settlement_currency")),
		}
	} else if !decodeJSON(w, r, &req) {
		return
	}

	url, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "create order error", err)
		return
	}

	if fromForm {
		http.Redirect(w, r, url, http.StatusSeeOther)
		return
	}

	writeJSON(w, http.StatusOK, createOrderResponse{URL: url})
}

func isForm(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/x-www-form-urlencoded"
}

// GetOrder возвращает заказ по идентификатору провайдера.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "get order error", err)
		return
	}

	writeJSON(w, http.StatusOK, o)
}

// ListOrders возвращает страницу заказов.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, "list orders error", err)
		return
	}

	orders, err := h.service.ListOrders(r.Context(), page)
	if err != nil {
		h.writeError(w, r, "list orders error", err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(orders))
}

// ListOrdersByState возвращает заказы с указанным состоянием.
func (h *Handler) ListOrdersByState(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, "list orders by state error", err)
		return
	}

	state := model.OrderState(chi.URLParam(r, "status"))

	orders, err := h.service.ListOrdersByState(r.Context(), state, page)
	if err != nil {
		h.writeError(w, r, "list orders by state error", err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(orders))
}
