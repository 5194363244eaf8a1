package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Samvel1-1/Electronics/internal/domain"
	"github.com/Samvel1-1/Electronics/internal/storage"
)

func newProductRepo(t *testing.T) (*ProductRepository, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	return NewProductRepository(store), dir
}

func seedProducts(t *testing.T, repo *ProductRepository, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, repo.Create(domain.Product{Name: name, Price: "10", Img: "/uploads/x.jpg", Category: "Phones"}))
	}
}

func TestProductRepository_UpdateAtMergesFields(t *testing.T) {
	repo, _ := newProductRepo(t)
	seedProducts(t, repo, "Phone")

	updated, err := repo.UpdateAt(0, domain.Product{Price: "15"})
	require.NoError(t, err)
	require.Equal(t, "Phone", updated.Name)
	require.Equal(t, "15", updated.Price)
	require.Equal(t, "/uploads/x.jpg", updated.Img)
}

func TestProductRepository_InvalidIndex(t *testing.T) {
	repo, _ := newProductRepo(t)
	seedProducts(t, repo, "Phone")

	_, err := repo.UpdateAt(5, domain.Product{Price: "15"})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = repo.DeleteAt(-1)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestProductRepository_DeleteAtReturnsDeleted(t *testing.T) {
	repo, _ := newProductRepo(t)
	seedProducts(t, repo, "Phone", "Laptop", "Headset")

	deleted, err := repo.DeleteAt(1)
	require.NoError(t, err)
	require.Equal(t, "Laptop", deleted.Name)

	left, err := repo.List()
	require.NoError(t, err)
	require.Len(t, left, 2)
	require.Equal(t, "Phone", left[0].Name)
	require.Equal(t, "Headset", left[1].Name)
}

func TestProductRepository_DeleteBulk(t *testing.T) {
	repo, _ := newProductRepo(t)
	seedProducts(t, repo, "Phone", "Laptop", "Headset", "Charger")

	// Unordered indices with an out-of-range stray and a duplicate.
	require.NoError(t, repo.DeleteBulk([]int{3, 0, 9, 0}))

	left, err := repo.List()
	require.NoError(t, err)
	require.Len(t, left, 2)
	require.Equal(t, "Laptop", left[0].Name)
	require.Equal(t, "Headset", left[1].Name)
}

func TestProductRepository_ListSurfacesCorruptCollection(t *testing.T) {
	repo, dir := newProductRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte("][,"), 0o644))

	_, err := repo.List()
	var corrupt *domain.StorageCorruptError
	require.ErrorAs(t, err, &corrupt)
}
