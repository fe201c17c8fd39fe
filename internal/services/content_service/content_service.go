package services

import (
	"context"
	"fmt"
	"log/slog"

	"corpsite/internal/domain/models"
	"corpsite/internal/lib/logger/sl"
)

// ContentStore durable-хранилище агрегата SiteContent
type ContentStore interface {
	Get(ctx context.Context) (*models.SiteContent, error)
	Replace(ctx context.Context, content *models.SiteContent) error
}

type ContentService struct {
	log   *slog.Logger
	store ContentStore
}

func New(log *slog.Logger, store ContentStore) *ContentService {
	return &ContentService{
		log:   log,
		store: store,
	}
}

// GetContent возвращает текущий документ целиком
func (s *ContentService) GetContent(ctx context.Context) (*models.SiteContent, error) {
	const op = "content_service.GetContent"

	content, err := s.store.Get(ctx)
	if err != nil {
		s.log.Error("failed to read site content", slog.String("op", op), sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return content, nil
}

// ReplaceContent полностью заменяет документ.
// Callers must send the complete aggregate, unmodified fields included;
// whatever was stored before is lost.
func (s *ContentService) ReplaceContent(ctx context.Context, content *models.SiteContent) error {
	const op = "content_service.ReplaceContent"

	log := s.log.With(
		slog.String("op", op),
	)

	log.Info("replacing site content",
		slog.Int("products", len(content.Products)),
		slog.Int("advantages", len(content.Advantages)),
	)

	if err := s.store.Replace(ctx, content); err != nil {
		log.Error("failed to write site content", sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("site content replaced")

	return nil
}
