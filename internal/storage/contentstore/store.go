package contentstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"corpsite/internal/domain/models"
	"corpsite/internal/storage"
)

// Store хранит весь SiteContent в одном JSON-файле.
// Every Replace rewrites the whole document; there is no merge, no
// versioning and no locking. The previous document is gone after a write.
type Store struct {
	path string
}

func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create content directory: %w", err)
	}

	return &Store{path: path}, nil
}

// Path возвращает путь к файлу контента
func (s *Store) Path() string {
	return s.path
}

// Get читает и разбирает текущий документ
func (s *Store) Get(ctx context.Context) (*models.SiteContent, error) {
	const op = "contentstore.Get"

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrContentNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var content models.SiteContent
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, storage.ErrContentMalformed, err)
	}

	return &content, nil
}

// Replace атомарно перезаписывает документ целиком.
// The document lands in a temp file first and is moved over the old one
// with rename, so a concurrent Get sees either the old or the new
// document, never a mix. Last writer wins.
func (s *Store) Replace(ctx context.Context, content *models.SiteContent) error {
	const op = "contentstore.Replace"

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: failed to marshal content: %w", op, err)
	}

	// Temp file must live in the same directory as the target,
	// rename is only atomic within one filesystem.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".site-*.json")
	if err != nil {
		return fmt.Errorf("%s: failed to create temp file: %w", op, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("%s: failed to write temp file: %w", op, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("%s: failed to close temp file: %w", op, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("%s: failed to swap content file: %w", op, err)
	}

	return nil
}
