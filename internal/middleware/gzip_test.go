package middleware

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shopMux отвечает так же, как маршруты магазина: JSON-список, заказ,
// HTML-страница и переход на оплату.
func shopMux() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"product_code":"KR001","price":1999,"currency":"EUR"}]`))
	})

	mux.HandleFunc("POST /api/v1/order", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ProductCode string `json:"product_code"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "malformed JSON body", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://checkout.example.org/` + req.ProductCode + `"}`))
	})

	mux.HandleFunc("GET /products/en/KR001", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<main class="product"><h1>Kraków guide</h1></main>`))
	})

	mux.HandleFunc("POST /api/v1/order/form", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "https://checkout.example.org/KR001", http.StatusSeeOther)
	})

	return mux
}

func gzipBody(t *testing.T, s string) io.Reader {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func TestGzipMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		body         string
		gzipRequest  bool
		acceptGzip   bool
		wantStatus   int
		wantEncoding string
		wantType     string
		wantBody     string
		wantLocation string
	}{
		{
			name:         "product list compressed",
			method:       http.MethodGet,
			target:       "/api/v1/products",
			acceptGzip:   true,
			wantStatus:   http.StatusOK,
			wantEncoding: "gzip",
			wantType:     "application/json",
			wantBody:     `"product_code":"KR001"`,
		},
		{
			name:       "product list plain",
			method:     http.MethodGet,
			target:     "/api/v1/products",
			wantStatus: http.StatusOK,
			wantType:   "application/json",
			wantBody:   `"product_code":"KR001"`,
		},
		{
			name:         "compressed order body",
			method:       http.MethodPost,
			target:       "/api/v1/order",
			body:         `{"product_code":"KR001","lang":"en","customers_email":"a@b.org","settlement_currency":"USD"}`,
			gzipRequest:  true,
			acceptGzip:   true,
			wantStatus:   http.StatusOK,
			wantEncoding: "gzip",
			wantType:     "application/json",
			wantBody:     `{"url":"https://checkout.example.org/KR001"}`,
		},
		{
			name:        "compressed order body, plain answer",
			method:      http.MethodPost,
			target:      "/api/v1/order",
			body:        `{"product_code":"PL1234"}`,
			gzipRequest: true,
			wantStatus:  http.StatusOK,
			wantType:    "application/json",
			wantBody:    `{"url":"https://checkout.example.org/PL1234"}`,
		},
		{
			name:         "product page",
			method:       http.MethodGet,
			target:       "/products/en/KR001",
			acceptGzip:   true,
			wantStatus:   http.StatusOK,
			wantEncoding: "gzip",
			wantType:     "text/html; charset=utf-8",
			wantBody:     "<h1>Kraków guide</h1>",
		},
		{
			name:         "checkout redirect",
			method:       http.MethodPost,
			target:       "/api/v1/order/form",
			acceptGzip:   true,
			wantStatus:   http.StatusSeeOther,
			wantEncoding: "gzip",
			wantLocation: "https://checkout.example.org/KR001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader = strings.NewReader(tt.body)
			if tt.gzipRequest {
				body = gzipBody(t, tt.body)
			}

			req := httptest.NewRequest(tt.method, tt.target, body)
			if tt.gzipRequest {
				req.Header.Set("Content-Encoding", "gzip")
				req.Header.Set("Content-Type", "application/json")
			}
			if tt.acceptGzip {
				req.Header.Set("Accept-Encoding", "gzip, deflate, br")
			}

			w := httptest.NewRecorder()
			GzipMiddleware(shopMux()).ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			require.Equal(t, tt.wantStatus, res.StatusCode)
			assert.Equal(t, tt.wantEncoding, res.Header.Get("Content-Encoding"))
			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, res.Header.Get("Content-Type"))
			}
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, res.Header.Get("Location"))
			}

			reader := io.Reader(res.Body)
			if res.Header.Get("Content-Encoding") == "gzip" {
				zr, err := gzip.NewReader(res.Body)
				require.NoError(t, err)
				defer zr.Close()
				reader = zr
			}

			got, err := io.ReadAll(reader)
			require.NoError(t, err)
			assert.Contains(t, string(got), tt.wantBody)
		})
	}
}

func TestGzipMiddleware_BrokenRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/order", strings.NewReader(`{"product_code":"KR001"}`))
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()

	GzipMiddleware(shopMux()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGzipMiddleware_NoContent(t *testing.T) {
	h := GzipMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/1", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Zero(t, w.Body.Len())
}
