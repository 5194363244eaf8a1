package repository

import (
	"fmt"
	"log"
	"sort"

	"github.com/Samvel1-1/Electronics/internal/domain"
	"github.com/Samvel1-1/Electronics/internal/storage"
)

const productsCollection = "products"

// ProductRepository gives index-addressed access to the product collection.
// Index addressing follows the external contract; positions are unstable
// under concurrent writers (see package storage).
type ProductRepository struct {
	store storage.RecordStore
}

func NewProductRepository(store storage.RecordStore) *ProductRepository {
	return &ProductRepository{store: store}
}

// List surfaces an unreadable collection to the caller.
func (r *ProductRepository) List() ([]domain.Product, error) {
	var products []domain.Product
	if err := r.store.Load(productsCollection, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (r *ProductRepository) Create(p domain.Product) error {
	products := r.loadLenient()
	products = append(products, p)
	return r.store.Save(productsCollection, products)
}

// UpdateAt replaces the non-empty fields of the product at index.
func (r *ProductRepository) UpdateAt(index int, patch domain.Product) (domain.Product, error) {
	products := r.loadLenient()
	if index < 0 || index >= len(products) {
		return domain.Product{}, fmt.Errorf("%w: invalid product index", domain.ErrValidation)
	}
	p := &products[index]
	if patch.Name != "" {
		p.Name = patch.Name
	}
	if patch.Price != "" {
		p.Price = patch.Price
	}
	if patch.Img != "" {
		p.Img = patch.Img
	}
	if patch.Category != "" {
		p.Category = patch.Category
	}
	if err := r.store.Save(productsCollection, products); err != nil {
		return domain.Product{}, err
	}
	return *p, nil
}

func (r *ProductRepository) DeleteAt(index int) (domain.Product, error) {
	products := r.loadLenient()
	if index < 0 || index >= len(products) {
		return domain.Product{}, fmt.Errorf("%w: invalid product index", domain.ErrValidation)
	}
	deleted := products[index]
	products = append(products[:index], products[index+1:]...)
	if err := r.store.Save(productsCollection, products); err != nil {
		return domain.Product{}, err
	}
	return deleted, nil
}

// DeleteBulk removes the products at the given indices. Out-of-range indices
// are skipped.
func (r *ProductRepository) DeleteBulk(indices []int) error {
	products := r.loadLenient()

	sorted := append([]int(nil), indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	last := -1
	for _, idx := range sorted {
		if idx == last {
			continue
		}
		last = idx
		if idx < 0 || idx >= len(products) {
			continue
		}
		products = append(products[:idx], products[idx+1:]...)
	}
	return r.store.Save(productsCollection, products)
}

func (r *ProductRepository) loadLenient() []domain.Product {
	var products []domain.Product
	if err := r.store.Load(productsCollection, &products); err != nil {
		log.Printf("Product collection read error, starting empty: %v", err)
		return nil
	}
	return products
}
