package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"mime/multipart"
	"path"
	"regexp"
	"strings"
	"time"

	"corpsite/internal/domain/models"
	"corpsite/internal/lib/logger/sl"
	"corpsite/internal/storage"
	filestorage "corpsite/internal/storage/filestorage"

	"github.com/gen2brain/avif"
	"github.com/gen2brain/webp"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

var (
	ErrMissingFile     = errors.New("file is required")
	ErrUnsupportedType = errors.New("only image uploads are supported")
)

const (
	webpQuality = 80
	avifQuality = 45

	// Расширение оригинала, когда имя файла без расширения
	fallbackExt = ".img"
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// ImageService принимает загруженное изображение, сохраняет оригинал
// и генерирует два веб-оптимизированных деривата.
type ImageService struct {
	log         *slog.Logger
	fileStorage filestorage.FileStorage
	maxSize     int64
}

func New(log *slog.Logger, fileStorage filestorage.FileStorage, maxSize int64) *ImageService {
	return &ImageService{
		log:         log,
		fileStorage: fileStorage,
		maxSize:     maxSize,
	}
}

// UploadImage сохраняет оригинал и производные webp/avif.
// Client-side failures (missing file, non-image type, oversized file) are
// reported before anything is written to disk. An encode failure after the
// original landed leaves the original in place and fails the request.
func (s *ImageService) UploadImage(ctx context.Context, file *multipart.FileHeader) (*models.UploadedAsset, error) {
	const op = "image_service.UploadImage"

	if file == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingFile)
	}

	log := s.log.With(
		slog.String("op", op),
		slog.String("filename", file.Filename),
	)

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		log.Warn("rejected upload with non-image content type",
			slog.String("content_type", contentType))

		return nil, fmt.Errorf("%s: %w", op, ErrUnsupportedType)
	}

	if s.maxSize > 0 && file.Size > s.maxSize {
		log.Warn("rejected oversized upload", slog.Int64("size", file.Size))

		return nil, fmt.Errorf("%s: %w", op, storage.ErrFileTooLarge)
	}

	baseName, originalExt := buildBaseName(file.Filename, time.Now().UnixMilli())

	originalName := baseName + originalExt
	if _, _, err := s.fileStorage.Save(ctx, file, originalName); err != nil {
		log.Error("failed to save original file", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("original saved", slog.String("name", originalName))

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to reopen upload: %w", op, err)
	}
	defer src.Close()

	img, format, err := image.Decode(src)
	if err != nil {
		log.Error("failed to decode image", sl.Err(err))

		return nil, fmt.Errorf("%s: failed to decode image: %w", op, err)
	}

	log.Debug("image decoded", slog.String("format", format))

	webpName, err := s.encodeWebp(ctx, img, baseName)
	if err != nil {
		log.Error("failed to encode webp derivative", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	avifName, err := s.encodeAvif(ctx, img, baseName)
	if err != nil {
		log.Error("failed to encode avif derivative", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	asset := models.NewUploadedAsset(file.Filename, contentType, file.Size)
	asset.OriginalPath = s.fileStorage.PublicURL(originalName)
	asset.WebpPath = s.fileStorage.PublicURL(webpName)
	asset.AvifPath = s.fileStorage.PublicURL(avifName)

	if err := asset.Validate(); err != nil {
		log.Error("asset validation failed", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("upload complete",
		slog.String("asset_id", asset.ID.String()),
		slog.String("original", asset.OriginalPath),
	)

	return asset, nil
}

func (s *ImageService) encodeWebp(ctx context.Context, img image.Image, baseName string) (string, error) {
	var buf bytes.Buffer

	if err := webp.Encode(&buf, img, webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("webp encode: %w", err)
	}

	return s.fileStorage.SaveBytes(ctx, baseName+".webp", buf.Bytes())
}

func (s *ImageService) encodeAvif(ctx context.Context, img image.Image, baseName string) (string, error) {
	var buf bytes.Buffer

	if err := avif.Encode(&buf, img, avif.Options{Quality: avifQuality}); err != nil {
		return "", fmt.Errorf("avif encode: %w", err)
	}

	return s.fileStorage.SaveBytes(ctx, baseName+".avif", buf.Bytes())
}

// buildBaseName собирает уникальное базовое имя из таймштампа и
// очищенного имени файла. Collisions need the same sanitized name inside
// the same millisecond; the second write would just overwrite the first.
func buildBaseName(filename string, unixMillis int64) (baseName, originalExt string) {
	safeName := unsafeNameChars.ReplaceAllString(filename, "_")

	originalExt = path.Ext(safeName)
	nameNoExt := strings.TrimSuffix(safeName, originalExt)

	if originalExt == "" {
		originalExt = fallbackExt
	}

	return fmt.Sprintf("%d-%s", unixMillis, nameNoExt), originalExt
}
