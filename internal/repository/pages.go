package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/snovatour/guideshop/internal/model"
)

const maxGalleryImages = 1000

// GetProductWithCard собирает товар, его карточку на языке lang и галерею изображений.
func (r *PostgresRepository) GetProductWithCard(ctx context.Context, code string, lang model.Lang) (*model.ProductWithCard, error) {
	return inTx(ctx, r.pool, func(tx pgx.Tx) (*model.ProductWithCard, error) {
		product, err := products.get(ctx, tx, "product_code", code)
		if err != nil {
			return nil, err
		}

		var where fields
		where.set("product_id", product.ID)
		where.set("lang", lang)
		cards, err := productCards.list(ctx, tx, where, model.Page{Limit: 1})
		if err != nil {
			return nil, err
		}
		if len(cards) == 0 {
			return nil, ErrNotFound
		}

		var imgWhere fields
		imgWhere.set("product_card_id", cards[0].ID)
		images, err := cardImages.list(ctx, tx, imgWhere, model.Page{Limit: maxGalleryImages})
		if err != nil {
			return nil, err
		}

		return &model.ProductWithCard{
			Product: *product,
			Card:    cards[0],
			Images:  images,
		}, nil
	})
}
