package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	custommiddleware "github.com/snovatour/guideshop/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware магазина.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.Logger(h.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))
	r.Use(custommiddleware.GzipMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/service/ping", h.Ping)
		r.Get("/service/health/db", h.HealthDB)

		r.Route("/products", func(r chi.Router) {
			r.Post("/", h.CreateProduct)
			r.Get("/", h.ListProducts)
			r.Get("/{id}", h.GetProduct)
			r.Patch("/{id}", h.UpdateProduct)
			r.Delete("/{id}", h.DeleteProduct)
		})

		r.Route("/product_cards", func(r chi.Router) {
			r.Post("/", h.CreateProductCard)
			r.Get("/", h.ListProductCards)
			r.Get("/{id}", h.GetProductCard)
			r.Patch("/{id}", h.UpdateProductCard)
			r.Delete("/{id}", h.DeleteProductCard)
		})

		r.Route("/product_card_images", func(r chi.Router) {
			r.Post("/", h.CreateProductCardImage)
			r.Get("/", h.ListProductCardImages)
			r.Get("/{id}", h.GetProductCardImage)
			r.Patch("/{id}", h.UpdateProductCardImage)
			r.Delete("/{id}", h.DeleteProductCardImage)
		})

		r.Route("/product-files", func(r chi.Router) {
			r.Post("/", h.CreateProductFile)
			r.Get("/", h.ListProductFiles)
			r.Get("/by-product/{product_id}/{lang}", h.GetProductFileByLang)
			r.Get("/{id}", h.GetProductFile)
			r.Patch("/{id}", h.UpdateProductFile)
			r.Delete("/{id}", h.DeleteProductFile)
		})

		r.Route("/order", func(r chi.Router) {
			r.Post("/", h.CreateOrder)
			r.Get("/", h.ListOrders)
			r.Get("/by-status/{status}", h.ListOrdersByState)
			r.Get("/{id}", h.GetOrder)
		})

		r.Get("/download/{id}", h.Download)
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(h.staticRoot))))
	r.Get("/products/{lang}/{product_code}", h.ProductPage)
	r.Get("/thank-you/{product_code}/{lang}", h.ThankYouPage)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Detail: http.StatusText(http.StatusNotFound)})
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Detail: http.StatusText(http.StatusMethodNotAllowed)})
	})

	return r
}
