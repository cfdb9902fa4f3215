package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/snovatour/guideshop/internal/model"
	"github.com/snovatour/guideshop/internal/render"
	"github.com/snovatour/guideshop/internal/repository"
	"github.com/snovatour/guideshop/internal/validation"
)

// DownloadPath задаёт префикс ссылки на скачивание файла товара.
const DownloadPath = "/api/v1/download/"

// downloadPlaceholder заменяется в описании файла ссылкой на скачивание.
const downloadPlaceholder = "https://example.com"

// ProductPage собирает данные страницы товара на языке lang.
func (s *Service) ProductPage(ctx context.Context, lang model.Lang, code string) (*render.ProductView, error) {
	if !validation.IsSupportedLang(string(lang)) {
		return nil, fmt.Errorf("lang %q: %w", lang, repository.ErrNotFound)
	}

	p, err := s.repo.GetProductWithCard(ctx, code, lang)
	if err != nil {
		return nil, fmt.Errorf("product page %s/%s: %w", lang, code, err)
	}

	view := &render.ProductView{
		Title:           p.Card.Name,
		Lang:            lang,
		ProductCode:     p.Product.ProductCode,
		NameHTML:        s.markdown.ToSafeHTML(p.Card.Name),
		DescriptionHTML: s.markdown.ToSafeHTML(deref(p.Card.Description)),
		Price:           render.FormatPrice(p.Product.Price, p.Product.Currency),
		Currencies:      model.Currencies,
		Images:          make([]render.ImageView, 0, len(p.Images)),
	}

	for _, img := range p.Images {
		view.Images = append(view.Images, render.ImageView{
			URL:             render.ImageURL(img.URL),
			Alt:             deref(img.Alt),
			DescriptionHTML: s.markdown.ToSafeHTML(deref(img.Description)),
		})
	}

	return view, nil
}

// ThankYouPage собирает страницу благодарности со ссылкой на файл товара.
func (s *Service) ThankYouPage(ctx context.Context, lang model.Lang, code string) (*render.ThankYouView, error) {
	if !validation.IsSupportedLang(string(lang)) {
		return nil, fmt.Errorf("lang %q: %w", lang, repository.ErrNotFound)
	}

	product, err := s.repo.GetProductByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("thank-you product %s: %w", code, err)
	}

	file, err := s.repo.GetProductFileByLang(ctx, product.ID, lang)
	if err != nil {
		return nil, fmt.Errorf("thank-you file %s/%s: %w", code, lang, err)
	}

	link := DownloadPath + strconv.FormatInt(file.ID, 10)
	// Автоссылка <https://example.com> превращается в обычную ссылку,
	// чтобы относительный адрес остался кликабельным.
	description := strings.ReplaceAll(deref(file.Description), "<"+downloadPlaceholder+">", "["+link+"]("+link+")")
	description = strings.ReplaceAll(description, downloadPlaceholder, link)

	return &render.ThankYouView{
		Title:           product.ProductCode,
		Lang:            lang,
		ProductCode:     product.ProductCode,
		DescriptionHTML: s.markdown.ToSafeHTML(description),
		Link:            link,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
