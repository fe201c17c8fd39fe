package contentstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"corpsite/internal/domain/models"
	"corpsite/internal/storage"
	"corpsite/internal/storage/contentstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*contentstore.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "site.json")

	store, err := contentstore.New(path)
	require.NoError(t, err)

	return store, path
}

func sampleContent() *models.SiteContent {
	return &models.SiteContent{
		Hero: models.Hero{
			Badge: "badge",
			Title: models.HeroTitle{Prefix: "a", Highlight: "b", Suffix: "c"},
			Descriptions: []string{
				"first paragraph",
				"second paragraph",
			},
			Features: []string{"f1", "f2"},
			Gallery: []models.GalleryImage{
				{Src: "/images/one.jpg", Alt: "one"},
				{Src: "/images/two.jpg"},
			},
		},
		HeroStats: []models.Stat{
			{Label: "years", Value: "20"},
			{Label: "countries", Value: "30"},
		},
		Products: []models.Product{
			{
				Title:        "brick",
				Features:     []string{"dense", "durable"},
				Specs:        []models.Stat{{Label: "temp", Value: "1790"}},
				Applications: []string{"furnace"},
			},
		},
	}
}

func TestStore_RoundTrip(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	want := sampleContent()
	require.NoError(t, store.Replace(ctx, want))

	got, err := store.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestStore_Get_NotFound(t *testing.T) {
	store, _ := setupStore(t)

	_, err := store.Get(context.Background())
	assert.ErrorIs(t, err, storage.ErrContentNotFound)
}

func TestStore_Get_Malformed(t *testing.T) {
	store, path := setupStore(t)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := store.Get(context.Background())
	assert.ErrorIs(t, err, storage.ErrContentMalformed)
}

func TestStore_Replace_LastWriteWins(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	docA := sampleContent()
	docA.Hero.Badge = "A"

	docB := sampleContent()
	docB.Hero.Badge = "B"

	require.NoError(t, store.Replace(ctx, docA))
	require.NoError(t, store.Replace(ctx, docB))

	got, err := store.Get(ctx)
	require.NoError(t, err)

	// Целый документ B, никакого слияния с A
	assert.Equal(t, docB, got)
}

func TestStore_Replace_PreservesListOrder(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	doc := sampleContent()
	doc.HeroStats = []models.Stat{
		{Label: "third", Value: "3"},
		{Label: "first", Value: "1"},
		{Label: "second", Value: "2"},
	}

	require.NoError(t, store.Replace(ctx, doc))

	got, err := store.Get(ctx)
	require.NoError(t, err)

	require.Len(t, got.HeroStats, 3)
	assert.Equal(t, "third", got.HeroStats[0].Label)
	assert.Equal(t, "first", got.HeroStats[1].Label)
	assert.Equal(t, "second", got.HeroStats[2].Label)
}

func TestStore_Replace_NoTempFilesLeft(t *testing.T) {
	store, path := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, sampleContent()))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(path), entries[0].Name())
}

func TestStore_Replace_IndentedOutput(t *testing.T) {
	store, path := setupStore(t)

	require.NoError(t, store.Replace(context.Background(), sampleContent()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Документ хранится с отступами, чтобы его можно было читать глазами
	assert.Contains(t, string(data), "\n  \"hero\"")
}
