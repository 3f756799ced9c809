package handlers

import (
	"fmt"
	"path/filepath"
	"strings"

	"subtrack_backend/internal/config"
	"subtrack_backend/internal/storage"
	"subtrack_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// saveImage validates the "file" form field against the upload limits and
// writes it to storage under prefix/<uuid><ext>. Returns the public URL.
func saveImage(c *gin.Context, store storage.Storage, prefix string) (string, error) {
	cfg := config.GetConfig()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", apperrors.NewBadRequestError("no file provided")
	}

	if cfg.Upload.MaxSize > 0 && fileHeader.Size > cfg.Upload.MaxSize {
		return "", apperrors.NewBadRequestError(
			fmt.Sprintf("file too large: max %d bytes", cfg.Upload.MaxSize))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedType(cfg.Upload.AllowedTypes, contentType) {
		return "", apperrors.NewBadRequestError("unsupported file type: " + contentType)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	path := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), ext)

	if err := store.Save(c.Request.Context(), path, file, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	url, err := store.GetURL(c.Request.Context(), path)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}

func allowedType(allowed []string, contentType string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, t := range allowed {
		if t == contentType {
			return true
		}
	}
	return false
}
