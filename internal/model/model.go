// Package model содержит доменные сущности магазина путеводителей.
package model

import "time"

// Currency задаёт код валюты ISO 4217 в верхнем регистре.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyPLN Currency = "PLN"
	CurrencyGBP Currency = "GBP"
	CurrencyCZK Currency = "CZK"
)

// Currencies перечисляет валюты, принимаемые магазином.
var Currencies = []Currency{CurrencyUSD, CurrencyEUR, CurrencyPLN, CurrencyGBP, CurrencyCZK}

// Lang задаёт двухбуквенный код языка контента.
type Lang string

const (
	LangEN Lang = "en"
	LangRU Lang = "ru"
	LangPL Lang = "pl"
)

// Langs перечисляет поддерживаемые языки.
var Langs = []Lang{LangEN, LangRU, LangPL}

// Product описывает товар каталога.
type Product struct {
	ID          int64     `db:"id" json:"id"`
	ProductCode string    `db:"product_code" json:"product_code"`
	Price       int64     `db:"price" json:"price"`
	Currency    Currency  `db:"currency" json:"currency"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ProductCard содержит локализованное описание товара.
type ProductCard struct {
	ID          int64     `db:"id" json:"id"`
	ProductID   int64     `db:"product_id" json:"product_id"`
	Lang        Lang      `db:"lang" json:"lang"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ProductCardImage описывает изображение галереи карточки товара.
type ProductCardImage struct {
	ID            int64     `db:"id" json:"id"`
	ProductCardID int64     `db:"product_card_id" json:"product_card_id"`
	URL           string    `db:"url" json:"url"`
	Alt           *string   `db:"alt" json:"alt"`
	Description   *string   `db:"description" json:"description"`
	Position      int       `db:"position" json:"position"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// ProductFile описывает скачиваемый файл товара для одного языка.
type ProductFile struct {
	ID          int64     `db:"id" json:"id"`
	ProductID   int64     `db:"product_id" json:"product_id"`
	Lang        Lang      `db:"lang" json:"lang"`
	FileLink    string    `db:"file_link" json:"file_link"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// OrderState хранит последнее известное состояние заказа у платёжного провайдера.
// Локально не изменяется и может быть устаревшим.
type OrderState string

const (
	OrderStatePending    OrderState = "pending"
	OrderStateProcessing OrderState = "processing"
	OrderStateAuthorised OrderState = "authorised"
	OrderStateCompleted  OrderState = "completed"
	OrderStateCancelled  OrderState = "cancelled"
	OrderStateFailed     OrderState = "failed"
)

// Order описывает заказ, идентификатор которого выдан платёжным провайдером.
type Order struct {
	ID                 string     `db:"id" json:"id"`
	Type               string     `db:"type" json:"type"`
	State              OrderState `db:"state" json:"state"`
	Amount             int64      `db:"amount" json:"amount"`
	Currency           Currency   `db:"currency" json:"currency"`
	OutstandingAmount  int64      `db:"outstanding_amount" json:"outstanding_amount"`
	SettlementCurrency Currency   `db:"settlement_currency" json:"settlement_currency"`
	CaptureMode        string     `db:"capture_mode" json:"capture_mode"`
	EnforceChallenge   string     `db:"enforce_challenge" json:"enforce_challenge"`
	AuthorisationType  string     `db:"authorisation_type" json:"authorisation_type"`
	CustomersEmail     string     `db:"customers_email" json:"customers_email"`
	ProductCode        string     `db:"product_code" json:"product_code"`
	Lang               Lang       `db:"lang" json:"lang"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

// Page задаёт параметры постраничной выборки.
type Page struct {
	Limit  int
	Offset int
}

// DefaultPage используется, если параметры выборки не заданы.
var DefaultPage = Page{Limit: 100, Offset: 0}

// ProductWithCard объединяет товар, его карточку на одном языке и галерею.
type ProductWithCard struct {
	Product Product
	Card    ProductCard
	Images  []ProductCardImage
}
