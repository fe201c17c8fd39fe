package storage_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	storage "corpsite/internal/storage/filestorage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileStorage(t *testing.T) *storage.LocalFileStorage {
	t.Helper()

	fs, err := storage.NewLocalFileStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	return fs
}

func createTestFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	// Создаем multipart форму
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)

	_, err = part.Write([]byte(content))
	require.NoError(t, err)

	err = writer.Close()
	require.NoError(t, err)

	// Парсим multipart запрос
	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile("file")
	require.NoError(t, err)
	file.Close()

	return header
}

func TestLocalFileStorage_Save(t *testing.T) {
	fs := setupFileStorage(t)
	ctx := context.Background()

	t.Run("successful save under explicit name", func(t *testing.T) {
		testFile := createTestFile(t, "test.txt", "test content")

		name, size, err := fs.Save(ctx, testFile, "123-test.txt")
		require.NoError(t, err)

		assert.Equal(t, "123-test.txt", name)
		assert.Equal(t, int64(12), size)

		// Файл лежит под заданным именем, не под исходным
		data, err := os.ReadFile(fs.GetFullPath("123-test.txt"))
		require.NoError(t, err)
		assert.Equal(t, "test content", string(data))

		_, err = os.Stat(fs.GetFullPath("test.txt"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("save with context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(ctx)
		cancel() // Отменяем контекст сразу

		testFile := createTestFile(t, "test.txt", "test content")

		_, _, err := fs.Save(ctx, testFile, "cancelled.txt")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("invalid file header", func(t *testing.T) {
		invalidFile := &multipart.FileHeader{
			Filename: "bad.txt",
		}
		_, _, err := fs.Save(ctx, invalidFile, "bad.txt")
		assert.Error(t, err)
	})
}

func TestLocalFileStorage_SaveBytes(t *testing.T) {
	fs := setupFileStorage(t)
	ctx := context.Background()

	name, err := fs.SaveBytes(ctx, "derived.webp", []byte{0x52, 0x49, 0x46, 0x46})
	require.NoError(t, err)
	assert.Equal(t, "derived.webp", name)

	data, err := os.ReadFile(fs.GetFullPath("derived.webp"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x52, 0x49, 0x46, 0x46}, data)
}

func TestLocalFileStorage_Delete(t *testing.T) {
	fs := setupFileStorage(t)
	ctx := context.Background()

	t.Run("successful delete", func(t *testing.T) {
		testFile := createTestFile(t, "to_delete.txt", "content")

		name, _, err := fs.Save(ctx, testFile, "to_delete.txt")
		require.NoError(t, err)

		err = fs.Delete(ctx, name)
		assert.NoError(t, err)

		_, err = os.Stat(fs.GetFullPath(name))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("delete non-existent file", func(t *testing.T) {
		err := fs.Delete(ctx, "nonexistent.txt")
		assert.Error(t, err)
	})
}

func TestLocalFileStorage_PublicURL(t *testing.T) {
	fs := setupFileStorage(t)

	assert.Equal(t, "/uploads/123-test.webp", fs.PublicURL("123-test.webp"))
	assert.Equal(t, "/uploads", fs.BaseURL())
}

func TestNewLocalFileStorage(t *testing.T) {
	t.Run("creates base directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "uploads")

		fs, err := storage.NewLocalFileStorage(dir, "/uploads")
		require.NoError(t, err)
		assert.NotNil(t, fs)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestConcurrentSaves(t *testing.T) {
	fs := setupFileStorage(t)
	ctx := context.Background()

	testFile := createTestFile(t, "concurrent.txt", "data")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := fs.Save(ctx, testFile, "concurrent.txt")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
}
