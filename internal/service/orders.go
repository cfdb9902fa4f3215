package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/snovatour/guideshop/internal/model"
	"github.com/snovatour/guideshop/internal/payment"
	"github.com/snovatour/guideshop/internal/validation"
)

// CreateOrder оформляет покупку: находит товар, создаёт заказ у платёжного
// провайдера с ценой из каталога и сохраняет его локально. Возвращает адрес
// страницы оплаты.
//
// Повторный вызов с теми же данными создаёт новый заказ у провайдера. Если
// заказ создан у провайдера, но не сохранён локально, отмена не выполняется:
// ошибка логируется с идентификатором заказа провайдера.
func (s *Service) CreateOrder(ctx context.Context, in model.OrderCreate) (string, error) {
	if err := validation.Struct(in); err != nil {
		return "", err
	}

	product, err := s.repo.GetProductByCode(ctx, in.ProductCode)
	if err != nil {
		return "", fmt.Errorf("lookup product %s: %w", in.ProductCode, err)
	}

	if s.payments == nil {
		return "", payment.ErrNotConfigured
	}

	req := payment.CreateOrderRequest{
		Amount:             product.Price,
		Currency:           string(product.Currency),
		SettlementCurrency: string(in.SettlementCurrency),
		Customer:           payment.Customer{Email: in.CustomersEmail},
		Metadata: payment.Metadata{
			ProductCode: product.ProductCode,
			ProductLang: string(in.Lang),
		},
		RedirectURL: s.thankYouURL(product.ProductCode, in.Lang),
	}

	// Обращение к провайдеру и запись заказа завершаются независимо от того,
	// дождался ли клиент ответа.
	detached := context.WithoutCancel(ctx)

	remote, err := s.payments.CreateOrder(detached, req)
	if err != nil {
		return "", fmt.Errorf("create remote order for %s: %w", in.ProductCode, err)
	}

	order := mergeOrder(in, product, remote, time.Now().UTC())
	if _, err := s.repo.CreateOrder(detached, order); err != nil {
		s.logger.Error("remote order created but not saved",
			zap.String("order_id", remote.ID),
			zap.String("product_code", order.ProductCode),
			zap.String("customers_email", order.CustomersEmail),
			zap.Error(err),
		)
		return "", fmt.Errorf("save order %s: %w", remote.ID, err)
	}

	s.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("product_code", order.ProductCode),
		zap.String("state", string(order.State)),
	)

	return remote.CheckoutURL, nil
}

func (s *Service) thankYouURL(code string, lang model.Lang) string {
	base := ""
	if s.baseURL != nil {
		base = s.baseURL.Get()
	}
	return base + "/thank-you/" + url.PathEscape(code) + "/" + url.PathEscape(string(lang))
}

// mergeOrder объединяет запрос покупателя и ответ провайдера в запись заказа.
// Токен и адрес оплаты в запись не попадают.
func mergeOrder(in model.OrderCreate, product *model.Product, remote *payment.Order, now time.Time) model.Order {
	o := model.Order{
		ID:                 remote.ID,
		Type:               orDefault(remote.Type, "payment"),
		State:              model.OrderState(orDefault(remote.State, string(model.OrderStatePending))),
		Amount:             remote.Amount,
		Currency:           model.Currency(orDefault(remote.Currency, string(product.Currency))),
		OutstandingAmount:  remote.OutstandingAmount,
		SettlementCurrency: model.Currency(orDefault(remote.SettlementCurrency, string(in.SettlementCurrency))),
		CaptureMode:        orDefault(remote.CaptureMode, "automatic"),
		EnforceChallenge:   orDefault(remote.EnforceChallenge, "automatic"),
		AuthorisationType:  orDefault(remote.AuthorisationType, "final"),
		CustomersEmail:     in.CustomersEmail,
		ProductCode:        in.ProductCode,
		Lang:               in.Lang,
		CreatedAt:          remote.CreatedAt,
		UpdatedAt:          remote.UpdatedAt,
	}

	if o.Amount == 0 {
		o.Amount = product.Price
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = o.CreatedAt
	}

	return o
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// GetOrder возвращает заказ по идентификатору провайдера.
func (s *Service) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

// ListOrders возвращает страницу заказов.
func (s *Service) ListOrders(ctx context.Context, page model.Page) ([]model.Order, error) {
	return s.repo.ListOrders(ctx, page)
}

// ListOrdersByState возвращает заказы с указанным последним известным состоянием.
func (s *Service) ListOrdersByState(ctx context.Context, state model.OrderState, page model.Page) ([]model.Order, error) {
	return s.repo.ListOrdersByState(ctx, state, page)
}
