package render

import "strings"

const staticPrefix = "/static/"

// ImageURL возвращает публичный адрес изображения:
// абсолютные http(s) и корневые пути остаются как есть, относительные пути
// отсчитываются от /static/, а голое имя файла ищется в /static/img/.
func ImageURL(raw string) string {
	u := strings.TrimSpace(raw)
	switch {
	case u == "":
		return ""
	case strings.HasPrefix(u, "http://"), strings.HasPrefix(u, "https://"):
		return u
	case strings.HasPrefix(u, "/"):
		return u
	case strings.Contains(u, "/"):
		return staticPrefix + strings.TrimPrefix(u, "static/")
	default:
		return staticPrefix + "img/" + u
	}
}
