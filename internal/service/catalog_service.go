package service

import (
	"fmt"
	"strings"

	"github.com/Samvel1-1/Electronics/internal/domain"
	"github.com/Samvel1-1/Electronics/internal/repository"
)

// CatalogService covers the plain CRUD over products and categories.
type CatalogService struct {
	products   *repository.ProductRepository
	categories *repository.CategoryRepository
}

func NewCatalogService(products *repository.ProductRepository, categories *repository.CategoryRepository) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
	}
}

func (s *CatalogService) ListProducts() ([]domain.Product, error) {
	return s.products.List()
}

func (s *CatalogService) CreateProduct(p domain.Product) (domain.Product, error) {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Price) == "" || strings.TrimSpace(p.Img) == "" {
		return domain.Product{}, fmt.Errorf("%w: name, price and img are required", domain.ErrValidation)
	}
	if err := s.products.Create(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *CatalogService) UpdateProduct(index int, patch domain.Product) (domain.Product, error) {
	return s.products.UpdateAt(index, patch)
}

func (s *CatalogService) DeleteProduct(index int) (domain.Product, error) {
	return s.products.DeleteAt(index)
}

func (s *CatalogService) DeleteProducts(indices []int) error {
	if len(indices) == 0 {
		return fmt.Errorf("%w: indices are required", domain.ErrValidation)
	}
	return s.products.DeleteBulk(indices)
}

func (s *CatalogService) ListCategories() []domain.Category {
	return s.categories.List()
}

func (s *CatalogService) CreateCategory(c domain.Category) (domain.Category, error) {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Icon) == "" {
		return domain.Category{}, fmt.Errorf("%w: name and icon are required", domain.ErrValidation)
	}
	if err := s.categories.Create(c); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

func (s *CatalogService) UpdateCategory(name, newName, icon string) error {
	return s.categories.Update(name, newName, icon)
}

func (s *CatalogService) DeleteCategory(name string) error {
	return s.categories.Delete(name)
}

func (s *CatalogService) DeleteCategories(names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("%w: names are required", domain.ErrValidation)
	}
	return s.categories.DeleteBulk(names)
}
