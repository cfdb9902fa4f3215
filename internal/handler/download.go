package handler

import (
	"errors"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/snovatour/guideshop/internal/repository"
)

// Download отдаёт файл товара. Внешние http(s)-ссылки перенаправляются,
// локальные пути читаются только внутри каталога файлов.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		h.writeError(w, r, "download error", err)
		return
	}

	file, err := h.service.GetProductFile(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "download error", err)
		return
	}

	if strings.HasPrefix(file.FileLink, "http://") || strings.HasPrefix(file.FileLink, "https://") {
		http.Redirect(w, r, file.FileLink, http.StatusFound)
		return
	}

	name := strings.TrimLeft(path.Clean("/"+file.FileLink), "/")

	f, err := os.OpenInRoot(h.filesRoot, name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			h.logger.Warn("open product file", zap.Int64("file_id", id), zap.String("file_link", file.FileLink), zap.Error(err))
		}
		h.writeError(w, r, "download error", repository.ErrNotFound)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		h.writeError(w, r, "download error", repository.ErrNotFound)
		return
	}

	base := path.Base(name)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": base}))
	http.ServeContent(w, r, base, info.ModTime(), f)
}
