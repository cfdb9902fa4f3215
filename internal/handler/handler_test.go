package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/snovatour/guideshop/internal/model"
	"github.com/snovatour/guideshop/internal/payment"
	"github.com/snovatour/guideshop/internal/render"
	"github.com/snovatour/guideshop/internal/repository"
	"github.com/snovatour/guideshop/internal/validation"
)

type stubService struct {
	pingErr error

	product    *model.Product
	productErr error
	products   []model.Product
	lastPage   model.Page
	deleted    bool

	cards      []model.ProductCard
	lastFilter model.ProductCardFilter

	file    *model.ProductFile
	fileErr error

	orderURL   string
	orderErr   error
	order      *model.Order
	orders     []model.Order
	lastState  model.OrderState
	orderCalls int

	productView *render.ProductView
	thankYou    *render.ThankYouView
	pageErr     error
	pageLang    model.Lang
	pageCode    string
}

func (s *stubService) Ping(ctx context.Context) error { return s.pingErr }

func (s *stubService) CreateProduct(ctx context.Context, in model.ProductCreate) (*model.Product, error) {
	return s.product, s.productErr
}

func (s *stubService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return s.product, s.productErr
}

func (s *stubService) ListProducts(ctx context.Context, page model.Page) ([]model.Product, error) {
	s.lastPage = page
	return s.products, s.productErr
}

func (s *stubService) UpdateProduct(ctx context.Context, id int64, in model.ProductUpdate) (*model.Product, error) {
	return s.product, s.productErr
}

func (s *stubService) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	return s.deleted, s.productErr
}

func (s *stubService) CreateProductCard(ctx context.Context, in model.ProductCardCreate) (*model.ProductCard, error) {
	return nil, nil
}

func (s *stubService) GetProductCard(ctx context.Context, id int64) (*model.ProductCard, error) {
	return nil, repository.ErrNotFound
}

func (s *stubService) ListProductCards(ctx context.Context, filter model.ProductCardFilter, page model.Page) ([]model.ProductCard, error) {
	s.lastFilter = filter
	s.lastPage = page
	return s.cards, nil
}

func (s *stubService) UpdateProductCard(ctx context.Context, id int64, in model.ProductCardUpdate) (*model.ProductCard, error) {
	return nil, nil
}

func (s *stubService) DeleteProductCard(ctx context.Context, id int64) (bool, error) {
	return false, nil
}

func (s *stubService) CreateProductCardImage(ctx context.Context, in model.ProductCardImageCreate) (*model.ProductCardImage, error) {
	return nil, nil
}

func (s *stubService) GetProductCardImage(ctx context.Context, id int64) (*model.ProductCardImage, error) {
	return nil, nil
}

func (s *stubService) ListProductCardImages(ctx context.Context, productCardID *int64, page model.Page) ([]model.ProductCardImage, error) {
	return nil, nil
}

func (s *stubService) UpdateProductCardImage(ctx context.Context, id int64, in model.ProductCardImageUpdate) (*model.ProductCardImage, error) {
	return nil, nil
}

func (s *stubService) DeleteProductCardImage(ctx context.Context, id int64) (bool, error) {
	return false, nil
}

func (s *stubService) CreateProductFile(ctx context.Context, in model.ProductFileCreate) (*model.ProductFile, error) {
	return nil, nil
}

func (s *stubService) GetProductFile(ctx context.Context, id int64) (*model.ProductFile, error) {
	return s.file, s.fileErr
}

func (s *stubService) GetProductFileByLang(ctx context.Context, productID int64, lang model.Lang) (*model.ProductFile, error) {
	return s.file, s.fileErr
}

func (s *stubService) ListProductFiles(ctx context.Context, productID *int64, page model.Page) ([]model.ProductFile, error) {
	return nil, nil
}

func (s *stubService) UpdateProductFile(ctx context.Context, id int64, in model.ProductFileUpdate) (*model.ProductFile, error) {
	return nil, nil
}

func (s *stubService) DeleteProductFile(ctx context.Context, id int64) (bool, error) {
	return false, nil
}

func (s *stubService) CreateOrder(ctx context.Context, in model.OrderCreate) (string, error) {
	s.orderCalls++
	return s.orderURL, s.orderErr
}

func (s *stubService) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	return s.order, s.orderErr
}

func (s *stubService) ListOrders(ctx context.Context, page model.Page) ([]model.Order, error) {
	s.lastPage = page
	return s.orders, s.orderErr
}

func (s *stubService) ListOrdersByState(ctx context.Context, state model.OrderState, page model.Page) ([]model.Order, error) {
	s.lastState = state
	return s.orders, s.orderErr
}

func (s *stubService) ProductPage(ctx context.Context, lang model.Lang, code string) (*render.ProductView, error) {
	s.pageLang, s.pageCode = lang, code
	return s.productView, s.pageErr
}

func (s *stubService) ThankYouPage(ctx context.Context, lang model.Lang, code string) (*render.ThankYouView, error) {
	s.pageLang, s.pageCode = lang, code
	return s.thankYou, s.pageErr
}

func newTestRouter(t *testing.T, svc Service, filesRoot string) http.Handler {
	t.Helper()

	templates, err := render.NewTemplates()
	if err != nil {
		t.Fatalf("new templates: %v", err)
	}

	return NewHandler(svc, zap.NewNop(), templates, filesRoot, filesRoot).SetupRouter()
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func detail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Detail
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: fmt.Errorf("lookup: %w", repository.ErrNotFound), want: http.StatusNotFound},
		{name: "conflict", err: repository.ErrConflict, want: http.StatusConflict},
		{name: "validation", err: validation.ErrValidation, want: http.StatusUnprocessableEntity},
		{name: "unreachable", err: payment.ErrUnreachable, want: http.StatusBadGateway},
		{name: "provider error", err: payment.ErrProviderError, want: http.StatusBadGateway},
		{name: "not configured", err: payment.ErrNotConfigured, want: http.StatusServiceUnavailable},
		{name: "unexpected", err: fmt.Errorf("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := statusFor(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceRoutes(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(t, svc, t.TempDir())

	w := doRequest(t, router, http.MethodGet, "/api/v1/service/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Hello World"}`, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/api/v1/service/health/db", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	svc.pingErr = fmt.Errorf("connection refused")
	w = doRequest(t, router, http.MethodGet, "/api/v1/service/health/db", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCreateProduct(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "created", body: `{"product_code":"KR001","price":1999,"currency":"EUR"}`, wantStatus: http.StatusCreated},
		{name: "malformed json", body: `{"product_code":`, wantStatus: http.StatusBadRequest},
		{name: "validation", body: `{"product_code":"x"}`, err: fmt.Errorf("%w: product_code is invalid", validation.ErrValidation), wantStatus: http.StatusUnprocessableEntity},
		{name: "duplicate code", body: `{"product_code":"KR001","price":1,"currency":"EUR"}`, err: repository.ErrConflict, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{
				product:    &model.Product{ID: 1, ProductCode: "KR001", Price: 1999, Currency: model.CurrencyEUR},
				productErr: tt.err,
			}
			router := newTestRouter(t, svc, t.TempDir())

			w := doRequest(t, router, http.MethodPost, "/api/v1/products", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
}

func TestListProducts_Paging(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantPage   model.Page
	}{
		{name: "defaults", query: "", wantStatus: http.StatusOK, wantPage: model.Page{Limit: 100}},
		{name: "limit one", query: "?limit=1&offset=5", wantStatus: http.StatusOK, wantPage: model.Page{Limit: 1, Offset: 5}},
		{name: "max limit", query: "?limit=1000", wantStatus: http.StatusOK, wantPage: model.Page{Limit: 1000}},
		{name: "zero limit", query: "?limit=0", wantStatus: http.StatusUnprocessableEntity},
		{name: "limit too large", query: "?limit=1001", wantStatus: http.StatusUnprocessableEntity},
		{name: "negative offset", query: "?offset=-1", wantStatus: http.StatusUnprocessableEntity},
		{name: "not a number", query: "?limit=ten", wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{}
			router := newTestRouter(t, svc, t.TempDir())

			w := doRequest(t, router, http.MethodGet, "/api/v1/products"+tt.query, "")
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantPage, svc.lastPage)
				assert.JSONEq(t, `[]`, w.Body.String())
			}
		})
	}
}

func TestGetProduct(t *testing.T) {
	svc := &stubService{productErr: repository.ErrNotFound}
	router := newTestRouter(t, svc, t.TempDir())

	w := doRequest(t, router, http.MethodGet, "/api/v1/products/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not found", detail(t, w))

	w = doRequest(t, router, http.MethodGet, "/api/v1/products/abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDeleteProduct(t *testing.T) {
	svc := &stubService{deleted: true}
	router := newTestRouter(t, svc, t.TempDir())

	w := doRequest(t, router, http.MethodDelete, "/api/v1/products/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	svc.deleted = false
	w = doRequest(t, router, http.MethodDelete, "/api/v1/products/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	svc.productErr = repository.ErrConflict
	w = doRequest(t, router, http.MethodDelete, "/api/v1/products/1", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListProductCards_Filters(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(t, svc, t.TempDir())

	w := doRequest(t, router, http.MethodGet, "/api/v1/product_cards?product_id=3&lang=ru", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastFilter.ProductID)
	require.NotNil(t, svc.lastFilter.Lang)
	assert.Equal(t, int64(3), *svc.lastFilter.ProductID)
	assert.Equal(t, model.LangRU, *svc.lastFilter.Lang)

	w = doRequest(t, router, http.MethodGet, "/api/v1/product_cards?lang=de", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/product_cards?product_id=-2", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateOrder(t *testing.T) {
	body := `{"product_code":"KR001","lang":"en","customers_email":"a@b.org","settlement_currency":"USD"}`

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "checkout url", wantStatus: http.StatusOK},
		{name: "unknown product", err: repository.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "provider error", err: payment.ErrProviderError, wantStatus: http.StatusBadGateway},
		{name: "unreachable", err: payment.ErrUnreachable, wantStatus: http.StatusBadGateway},
		{name: "not configured", err: payment.ErrNotConfigured, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{orderURL: "https://checkout.example.org/1", orderErr: tt.err}
			router := newTestRouter(t, svc, t.TempDir())

			w := doRequest(t, router, http.MethodPost, "/api/v1/order", body)
			require.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, 1, svc.orderCalls)
			if tt.err == nil {
				assert.JSONEq(t, `{"url":"https://checkout.example.org/1"}`, w.Body.String())
			}
		})
	}
}

func TestCreateOrder_FromForm(t *testing.T) {
	svc := &stubService{orderURL: "https://checkout.example.org/1"}
	router := newTestRouter(t, svc, t.TempDir())

	form := url.Values{
		"product_code":        {"KR001"},
		"lang":                {"en"},
		"customers_email":     {"a@b.org"},
		"settlement_currency": {"USD"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/order", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "https://checkout.example.org/1", w.Header().Get("Location"))
}

func TestGetOrder_HidesPaymentSecrets(t *testing.T) {
	svc := &stubService{order: &model.Order{
		ID:             "6516e61c",
		State:          model.OrderStatePending,
		Amount:         1999,
		Currency:       model.CurrencyEUR,
		CustomersEmail: "a@b.org",
		ProductCode:    "KR001",
		Lang:           model.LangEN,
	}}
	router := newTestRouter(t, svc, t.TempDir())

	w := doRequest(t, router, http.MethodGet, "/api/v1/order/6516e61c", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "6516e61c", got["id"])
	assert.NotContains(t, got, "token")
	assert.NotContains(t, got, "checkout_url")
}

func TestListOrdersByState(t *testing.T) {
	svc := &stubService{orders: []model.Order{{ID: "a", State: model.OrderStateCompleted}}}
	router := newTestRouter(t, svc, t.TempDir())

	w := doRequest(t, router, http.MethodGet, "/api/v1/order/by-status/completed?limit=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.OrderStateCompleted, svc.lastState)

	var got []model.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)
}

func TestDownload(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "guides"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "guides", "kr001-en.pdf"), []byte("%PDF-1.4 guide"), 0o644))

	tests := []struct {
		name         string
		link         string
		wantStatus   int
		wantBody     string
		wantLocation string
	}{
		{name: "local file", link: "guides/kr001-en.pdf", wantStatus: http.StatusOK, wantBody: "%PDF-1.4 guide"},
		{name: "leading slash", link: "/guides/kr001-en.pdf", wantStatus: http.StatusOK, wantBody: "%PDF-1.4 guide"},
		{name: "traversal stays in root", link: "../../etc/passwd", wantStatus: http.StatusNotFound},
		{name: "missing file", link: "guides/none.pdf", wantStatus: http.StatusNotFound},
		{name: "directory", link: "guides", wantStatus: http.StatusNotFound},
		{name: "external link", link: "https://cdn.example.org/kr001.pdf", wantStatus: http.StatusFound, wantLocation: "https://cdn.example.org/kr001.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{file: &model.ProductFile{ID: 5, FileLink: tt.link}}
			router := newTestRouter(t, svc, root)

			w := doRequest(t, router, http.MethodGet, "/api/v1/download/5", "")
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
				assert.Contains(t, w.Header().Get("Content-Disposition"), "kr001-en.pdf")
			}
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			}
		})
	}

	t.Run("unknown id", func(t *testing.T) {
		svc := &stubService{fileErr: repository.ErrNotFound}
		router := newTestRouter(t, svc, root)

		w := doRequest(t, router, http.MethodGet, "/api/v1/download/9", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestStaticFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "img", "cover.jpg"), []byte("jpeg"), 0o644))

	router := newTestRouter(t, &stubService{}, root)

	w := doRequest(t, router, http.MethodGet, "/static/img/cover.jpg", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpeg", w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/static/img/missing.jpg", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductPage(t *testing.T) {
	svc := &stubService{productView: &render.ProductView{
		Title:           "Kraków guide",
		Lang:            model.LangEN,
		ProductCode:     "KR001",
		NameHTML:        "<p>Kraków guide</p>",
		DescriptionHTML: "<p><strong>Old Town</strong></p>",
		Price:           "19.99 EUR",
		Currencies:      model.Currencies,
	}}
	router := newTestRouter(t, svc, t.TempDir())

	w := doRequest(t, router, http.MethodGet, "/products/en/KR001", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<strong>Old Town</strong>")
	assert.Contains(t, w.Body.String(), "19.99 EUR")

	svc.pageErr = repository.ErrNotFound
	w = doRequest(t, router, http.MethodGet, "/products/de/KR001", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Not Found")
}

func TestThankYouPage(t *testing.T) {
	svc := &stubService{thankYou: &render.ThankYouView{
		Title:           "KR001",
		Lang:            model.LangRU,
		ProductCode:     "KR001",
		DescriptionHTML: `<p><a href="/api/v1/download/42">/api/v1/download/42</a></p>`,
		Link:            "/api/v1/download/42",
	}}
	router := newTestRouter(t, svc, t.TempDir())

	w := doRequest(t, router, http.MethodGet, "/thank-you/KR001/ru", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="/api/v1/download/42"`)
}

func TestPages_PassLangAndCode(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "product page", target: "/products/pl/KR001"},
		{name: "thank-you page", target: "/thank-you/KR001/pl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{
				productView: &render.ProductView{Lang: model.LangPL, ProductCode: "KR001"},
				thankYou:    &render.ThankYouView{Lang: model.LangPL, ProductCode: "KR001"},
			}
			router := newTestRouter(t, svc, t.TempDir())

			w := doRequest(t, router, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, model.LangPL, svc.pageLang)
			assert.Equal(t, "KR001", svc.pageCode)
		})
	}
}

func TestGzipResponse(t *testing.T) {
	svc := &stubService{products: []model.Product{{ID: 1, ProductCode: "KR001"}}}
	router := newTestRouter(t, svc, t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	assert.False(t, bytes.Contains(w.Body.Bytes(), []byte("KR001")))
}
