// Package payment предоставляет клиент платёжного провайдера (Revolut Merchant API).
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const requestTimeout = 30 * time.Second

var (
	// ErrNotConfigured возвращается, если не задан секретный ключ провайдера.
	ErrNotConfigured = errors.New("payment provider not configured")
	// ErrUnreachable возвращается при сетевой ошибке обращения к провайдеру.
	ErrUnreachable = errors.New("payment provider unreachable")
	// ErrProviderError возвращается, если провайдер ответил неуспешным статусом.
	ErrProviderError = errors.New("payment provider error")
)

// Client инкапсулирует HTTP-взаимодействие с платёжным провайдером.
type Client struct {
	baseURL    string
	apiKey     string
	apiVersion string
	httpClient *http.Client
}

// Customer описывает покупателя в запросе на создание заказа.
type Customer struct {
	Email string `json:"email"`
}

// Metadata содержит данные для сверки заказа с каталогом.
type Metadata struct {
	ProductCode string `json:"product_code"`
	ProductLang string `json:"product_lang"`
}

// CreateOrderRequest описывает тело запроса на создание заказа у провайдера.
type CreateOrderRequest struct {
	Amount             int64    `json:"amount"`
	Currency           string   `json:"currency"`
	SettlementCurrency string   `json:"settlement_currency,omitempty"`
	Customer           Customer `json:"customer"`
	Metadata           Metadata `json:"metadata"`
	RedirectURL        string   `json:"redirect_url,omitempty"`
}

// Order описывает заказ, созданный провайдером.
type Order struct {
	ID                 string    `json:"id"`
	Token              string    `json:"token"`
	Type               string    `json:"type"`
	State              string    `json:"state"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	Amount             int64     `json:"amount"`
	Currency           string    `json:"currency"`
	SettlementCurrency string    `json:"settlement_currency"`
	OutstandingAmount  int64     `json:"outstanding_amount"`
	CaptureMode        string    `json:"capture_mode"`
	EnforceChallenge   string    `json:"enforce_challenge"`
	AuthorisationType  string    `json:"authorisation_type"`
	CheckoutURL        string    `json:"checkout_url"`
}

// NewClient создаёт HTTP-клиент провайдера по указанному адресу и ключу.
func NewClient(baseURL, apiKey, apiVersion string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		apiVersion: apiVersion,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// CreateOrder создаёт заказ у провайдера. Повторных попыток не выполняется.
func (c *Client) CreateOrder(ctx context.Context, in CreateOrderRequest) (*Order, error) {
	if c == nil || c.apiKey == "" || c.baseURL == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := c.baseURL + "/api/orders"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if c.apiVersion != "" {
		req.Header.Set("Revolut-Api-Version", c.apiVersion)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: unexpected status %d: %s", ErrProviderError, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var result Order
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrProviderError, err)
	}
	if result.ID == "" {
		return nil, fmt.Errorf("%w: response without order id", ErrProviderError)
	}

	return &result, nil
}
