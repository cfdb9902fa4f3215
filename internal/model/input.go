package model

// ProductCreate содержит данные для создания товара.
type ProductCreate struct {
	ProductCode string   `json:"product_code" validate:"required,product_code"`
	Price       int64    `json:"price" validate:"gte=0"`
	Currency    Currency `json:"currency" validate:"required,currency"`
}

// ProductUpdate описывает частичное обновление товара. Nil-поля не изменяются.
type ProductUpdate struct {
	ProductCode *string   `json:"product_code" validate:"omitnil,product_code"`
	Price       *int64    `json:"price" validate:"omitnil,gte=0"`
	Currency    *Currency `json:"currency" validate:"omitnil,currency"`
}

// ProductCardCreate содержит данные для создания карточки товара.
type ProductCardCreate struct {
	ProductID   int64   `json:"product_id" validate:"required,gt=0"`
	Lang        Lang    `json:"lang" validate:"required,lang"`
	Name        string  `json:"name" validate:"required,notblank,max=255"`
	Description *string `json:"description" validate:"omitnil,notblank"`
}

// ProductCardUpdate описывает частичное обновление карточки. product_id через обновление не меняется.
type ProductCardUpdate struct {
	Lang        *Lang   `json:"lang" validate:"omitnil,lang"`
	Name        *string `json:"name" validate:"omitnil,notblank,max=255"`
	Description *string `json:"description" validate:"omitnil,notblank"`
}

// ProductCardFilter задаёт фильтры выборки карточек.
type ProductCardFilter struct {
	ProductID *int64
	Lang      *Lang
}

// ProductCardImageCreate содержит данные для создания изображения карточки.
type ProductCardImageCreate struct {
	ProductCardID int64   `json:"product_card_id" validate:"required,gt=0"`
	URL           string  `json:"url" validate:"required,server_path"`
	Alt           *string `json:"alt" validate:"omitnil,notblank,max=255"`
	Description   *string `json:"description" validate:"omitnil,notblank"`
	Position      int     `json:"position" validate:"gte=0"`
}

// ProductCardImageUpdate описывает частичное обновление изображения.
type ProductCardImageUpdate struct {
	URL         *string `json:"url" validate:"omitnil,server_path"`
	Alt         *string `json:"alt" validate:"omitnil,notblank,max=255"`
	Description *string `json:"description" validate:"omitnil,notblank"`
	Position    *int    `json:"position" validate:"omitnil,gte=0"`
}

// ProductFileCreate содержит данные для создания файла товара.
type ProductFileCreate struct {
	ProductID   int64   `json:"product_id" validate:"required,gt=0"`
	Lang        Lang    `json:"lang" validate:"required,lang"`
	FileLink    string  `json:"file_link" validate:"required,file_link"`
	Description *string `json:"description" validate:"omitnil,notblank"`
}

// ProductFileUpdate описывает частичное обновление файла товара.
type ProductFileUpdate struct {
	Lang        *Lang   `json:"lang" validate:"omitnil,lang"`
	FileLink    *string `json:"file_link" validate:"omitnil,file_link"`
	Description *string `json:"description" validate:"omitnil,notblank"`
}

// OrderCreate содержит запрос покупателя на покупку путеводителя.
type OrderCreate struct {
	ProductCode        string   `json:"product_code" validate:"required,product_code"`
	Lang               Lang     `json:"lang" validate:"required,lang"`
	CustomersEmail     string   `json:"customers_email" validate:"required,email"`
	SettlementCurrency Currency `json:"settlement_currency" validate:"required,currency"`
}
