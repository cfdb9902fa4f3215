package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/snovatour/guideshop/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

// ImageView описывает изображение галереи, подготовленное для страницы.
type ImageView struct {
	URL             string
	Alt             string
	DescriptionHTML template.HTML
}

// ProductView содержит данные страницы товара.
type ProductView struct {
	Title           string
	Lang            model.Lang
	ProductCode     string
	NameHTML        template.HTML
	DescriptionHTML template.HTML
	Price           string
	Currencies      []model.Currency
	Images          []ImageView
}

// ThankYouView содержит данные страницы благодарности со ссылкой на скачивание.
type ThankYouView struct {
	Title           string
	Lang            model.Lang
	ProductCode     string
	DescriptionHTML template.HTML
	Link            string
}

// ErrorView содержит данные страницы ошибки.
type ErrorView struct {
	Title   string
	Lang    model.Lang
	Message string
}

// Templates отрисовывает HTML-страницы магазина.
type Templates struct {
	t *template.Template
}

// NewTemplates разбирает встроенные шаблоны.
func NewTemplates() (*Templates, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Templates{t: t}, nil
}

// Product отрисовывает страницу товара.
func (t *Templates) Product(w io.Writer, v ProductView) error {
	return t.t.ExecuteTemplate(w, "product.html", v)
}

// ThankYou отрисовывает страницу благодарности.
func (t *Templates) ThankYou(w io.Writer, v ThankYouView) error {
	return t.t.ExecuteTemplate(w, "thank_you.html", v)
}

// Error отрисовывает страницу ошибки.
func (t *Templates) Error(w io.Writer, v ErrorView) error {
	return t.t.ExecuteTemplate(w, "error.html", v)
}
