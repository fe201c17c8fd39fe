package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UploadedAsset представляет загруженное изображение и его производные
type UploadedAsset struct {
	ID               uuid.UUID `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	OriginalFilename string    `json:"original_filename"`
	MimeType         string    `json:"mime_type"`
	FileSize         int64     `json:"file_size"`
	OriginalPath     string    `json:"original_path"`
	WebpPath         string    `json:"webp_path"`
	AvifPath         string    `json:"avif_path"`
}

// NewUploadedAsset создает новый экземпляр UploadedAsset
func NewUploadedAsset(filename, mimeType string, size int64) *UploadedAsset {
	return &UploadedAsset{
		ID:               uuid.New(),
		CreatedAt:        time.Now().UTC(),
		OriginalFilename: filename,
		MimeType:         mimeType,
		FileSize:         size,
	}
}

// Validate проверяет корректность данных загруженного файла
func (a *UploadedAsset) Validate() error {
	var validationErrors []string

	if a.OriginalFilename == "" {
		validationErrors = append(validationErrors, "original filename is required")
	}
	if len(a.OriginalFilename) > 255 {
		validationErrors = append(validationErrors, "original filename must be 255 characters or less")
	}
	if !strings.HasPrefix(a.MimeType, "image/") {
		validationErrors = append(validationErrors, "mime type must be an image type")
	}
	if a.FileSize <= 0 {
		validationErrors = append(validationErrors, "file size must be positive")
	}

	if len(validationErrors) > 0 {
		return errors.New("invalid asset: " + strings.Join(validationErrors, "; "))
	}

	return nil
}
