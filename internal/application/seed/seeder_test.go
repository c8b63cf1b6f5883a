package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/seed"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/media"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
)

func TestSeeder_EsIdempotente(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	s := seed.New(usecase.NewAdminUseCase(store), nil, nil)

	first, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{Categories: 4, Products: 14, Properties: 47}, first)

	second, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{}, second)

	published, err := store.CountPublishedProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, published)

	cat, err := store.GetCategoryBySlug(ctx, "home-garden")
	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.Equal(t, 3, cat.ProductsCount)
}

func TestSeeder_ConImagenes(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	root := t.TempDir()
	s := seed.New(usecase.NewAdminUseCase(store), media.NewLocalStore(root, "/media/"), nil)

	res, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 14, res.Images)

	items, _, err := store.ListProducts(ctx, catalog.ProductQuery{})
	require.NoError(t, err)
	require.NotEmpty(t, items)
	require.NotNil(t, items[0].PrimaryImage)

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(items[0].PrimaryImage.Image)))
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), data[:4])
}

func TestSeeder_ReinicioNoAcumulaImagenes(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	images := media.NewLocalStore(root, "/media/")

	// Cada arranque en memoria parte de un almacén vacío sobre el mismo MEDIA_ROOT.
	for i := 0; i < 2; i++ {
		s := seed.New(usecase.NewAdminUseCase(memory.NewStore()), images, nil)
		_, err := s.Run(ctx)
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(filepath.Join(root, "products"))
	require.NoError(t, err)
	assert.Len(t, entries, 14)
	_, err = os.Stat(filepath.Join(root, "products", "laptop-pro.png"))
	assert.NoError(t, err)
}
