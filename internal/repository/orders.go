package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/snovatour/guideshop/internal/model"
)

var orders = table[model.Order]{
	name: "orders",
	columns: "id, type, state, amount, currency, outstanding_amount, settlement_currency, " +
		"capture_mode, enforce_challenge, authorisation_type, customers_email, product_code, lang, " +
		"created_at, updated_at",
	orderBy: "created_at, id",
}

// CreateOrder сохраняет заказ с идентификатором, выданным платёжным провайдером.
func (r *PostgresRepository) CreateOrder(ctx context.Context, o model.Order) (*model.Order, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (*model.Order, error) {
		var f fields
		f.set("id", o.ID)
		f.set("type", o.Type)
		f.set("state", o.State)
		f.set("amount", o.Amount)
		f.set("currency", o.Currency)
		f.set("outstanding_amount", o.OutstandingAmount)
		f.set("settlement_currency", o.SettlementCurrency)
		f.set("capture_mode", o.CaptureMode)
		f.set("enforce_challenge", o.EnforceChallenge)
		f.set("authorisation_type", o.AuthorisationType)
		f.set("customers_email", o.CustomersEmail)
		f.set("product_code", o.ProductCode)
		f.set("lang", o.Lang)
		f.set("created_at", o.CreatedAt)
		f.set("updated_at", o.UpdatedAt)
		return orders.insert(ctx, tx, f)
	})
}

// GetOrder возвращает заказ по идентификатору провайдера.
func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (*model.Order, error) {
		return orders.get(ctx, tx, "id", id)
	})
}

// ListOrders возвращает страницу заказов.
func (r *PostgresRepository) ListOrders(ctx context.Context, page model.Page) ([]model.Order, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) ([]model.Order, error) {
		return orders.list(ctx, tx, nil, page)
	})
}

// ListOrdersByState возвращает заказы с указанным последним известным состоянием.
func (r *PostgresRepository) ListOrdersByState(ctx context.Context, state model.OrderState, page model.Page) ([]model.Order, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) ([]model.Order, error) {
		var where fields
		where.set("state", state)
		return orders.list(ctx, tx, where, page)
	})
}
