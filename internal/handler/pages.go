package handler

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/snovatour/guideshop/internal/model"
	"github.com/snovatour/guideshop/internal/render"
)

// ProductPage отрисовывает страницу товара.
func (h *Handler) ProductPage(w http.ResponseWriter, r *http.Request) {
	lang := model.Lang(chi.URLParam(r, "lang"))

	view, err := h.service.ProductPage(r.Context(), lang, chi.URLParam(r, "product_code"))
	if err != nil {
		h.errorPage(w, r, lang, "product page error", err)
		return
	}

	var buf bytes.Buffer
	if err := h.templates.Product(&buf, *view); err != nil {
		h.errorPage(w, r, lang, "render product page error", err)
		return
	}

	writeHTML(w, http.StatusOK, buf.Bytes())
}

// ThankYouPage отрисовывает страницу благодарности со ссылкой на скачивание.
func (h *Handler) ThankYouPage(w http.ResponseWriter, r *http.Request) {
	lang := model.Lang(chi.URLParam(r, "lang"))

	view, err := h.service.ThankYouPage(r.Context(), lang, chi.URLParam(r, "product_code"))
	if err != nil {
		h.errorPage(w, r, lang, "thank-you page error", err)
		return
	}

	var buf bytes.Buffer
	if err := h.templates.ThankYou(&buf, *view); err != nil {
		h.errorPage(w, r, lang, "render thank-you page error", err)
		return
	}

	writeHTML(w, http.StatusOK, buf.Bytes())
}

func (h *Handler) errorPage(w http.ResponseWriter, r *http.Request, lang model.Lang, msg string, err error) {
	status, _ := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(msg, zap.Error(err), zap.String("path", r.URL.Path))
	}

	var buf bytes.Buffer
	renderErr := h.templates.Error(&buf, render.ErrorView{
		Title:   http.StatusText(status),
		Lang:    lang,
		Message: http.StatusText(status),
	})
	if renderErr != nil {
		h.logger.Error("render error page error", zap.Error(renderErr))
		http.Error(w, http.StatusText(status), status)
		return
	}

	writeHTML(w, status, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
