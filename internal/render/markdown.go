// Package render готовит данные для HTML-страниц: безопасный HTML из Markdown,
// публичные адреса изображений, форматирование цен и шаблоны.
package render

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Markdown преобразует Markdown в очищенный HTML.
type Markdown struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	strict *bluemonday.Policy
}

// NewMarkdown создаёт конвертер с поддержкой таблиц и переводом одиночных переносов строк в <br>.
func NewMarkdown() *Markdown {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)

	return &Markdown{
		md:     md,
		policy: contentPolicy(),
		strict: bluemonday.StrictPolicy(),
	}
}

func contentPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("p", "br", "hr", "pre", "code", "img",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "strong", "em", "blockquote",
		"table", "thead", "tbody", "tr", "th", "td")
	p.AllowAttrs("src", "alt", "title", "width", "height", "loading").OnElements("img")
	p.AllowAttrs("href", "title", "target", "rel").OnElements("a")
	p.AllowDataURIImages()
	return p
}

// ToSafeHTML возвращает очищенный HTML. Если разметку не удалось обработать,
// возвращается экранированный текст без тегов.
func (m *Markdown) ToSafeHTML(text string) template.HTML {
	if text == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := m.md.Convert([]byte(preprocess(text)), &buf); err != nil {
		return template.HTML(m.strict.Sanitize(text))
	}

	return template.HTML(m.policy.SanitizeBytes(buf.Bytes()))
}

// preprocess вставляет пустую строку перед списком и перед строкой,
// которая заканчивается двоеточием и открывает список. Соседние пункты
// списка не разделяются.
func preprocess(text string) string {
	lines := strings.Split(text, "\n")
	res := make([]string, 0, len(lines))

	lastBlank := func() bool {
		return len(res) == 0 || strings.TrimSpace(res[len(res)-1]) == ""
	}

	for i, line := range lines {
		stripped := strings.TrimSpace(line)

		if strings.HasSuffix(stripped, ":") && i+1 < len(lines) && isListItem(strings.TrimSpace(lines[i+1])) {
			if !lastBlank() {
				res = append(res, "")
			}
			res = append(res, line)
			continue
		}

		if isListItem(stripped) && !lastBlank() && !isListItem(strings.TrimSpace(res[len(res)-1])) {
			res = append(res, "")
		}

		res = append(res, line)
	}

	return strings.Join(res, "\n")
}

func isListItem(s string) bool {
	return strings.HasPrefix(s, "- ") || strings.HasPrefix(s, "* ") || strings.HasPrefix(s, "1. ")
}
