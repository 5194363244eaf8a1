package repository

import (
	"fmt"
	"log"

	"github.com/Samvel1-1/Electronics/internal/domain"
	"github.com/Samvel1-1/Electronics/internal/storage"
)

const categoriesCollection = "categories"

type CategoryRepository struct {
	store storage.RecordStore
}

func NewCategoryRepository(store storage.RecordStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// List never fails: an unreadable collection falls back to the fixed default
// set.
func (r *CategoryRepository) List() []domain.Category {
	var categories []domain.Category
	if err := r.store.Load(categoriesCollection, &categories); err != nil {
		log.Printf("Category collection read error, serving defaults: %v", err)
		return domain.DefaultCategories()
	}
	if categories == nil {
		return domain.DefaultCategories()
	}
	return categories
}

func (r *CategoryRepository) Create(c domain.Category) error {
	categories := r.loadLenient()
	for _, existing := range categories {
		if existing.Name == c.Name {
			return fmt.Errorf("%w: category %q already exists", domain.ErrConflict, c.Name)
		}
	}
	categories = append(categories, c)
	return r.store.Save(categoriesCollection, categories)
}

// Update renames and/or re-icons the category addressed by name.
func (r *CategoryRepository) Update(name, newName, icon string) error {
	categories := r.loadLenient()
	target := -1
	for i, c := range categories {
		if c.Name == name {
			target = i
			continue
		}
		if newName != "" && c.Name == newName {
			return fmt.Errorf("%w: category %q already exists", domain.ErrConflict, newName)
		}
	}
	if target == -1 {
		return fmt.Errorf("category %q: %w", name, domain.ErrNotFound)
	}
	if newName != "" {
		categories[target].Name = newName
	}
	if icon != "" {
		categories[target].Icon = icon
	}
	return r.store.Save(categoriesCollection, categories)
}

func (r *CategoryRepository) Delete(name string) error {
	categories := r.loadLenient()
	for i, c := range categories {
		if c.Name == name {
			categories = append(categories[:i], categories[i+1:]...)
			return r.store.Save(categoriesCollection, categories)
		}
	}
	return fmt.Errorf("category %q: %w", name, domain.ErrNotFound)
}

// DeleteBulk removes exactly the named categories and leaves the rest
// untouched. Unknown names are skipped.
func (r *CategoryRepository) DeleteBulk(names []string) error {
	doomed := make(map[string]bool, len(names))
	for _, n := range names {
		doomed[n] = true
	}
	categories := r.loadLenient()
	kept := categories[:0]
	for _, c := range categories {
		if !doomed[c.Name] {
			kept = append(kept, c)
		}
	}
	return r.store.Save(categoriesCollection, kept)
}

func (r *CategoryRepository) loadLenient() []domain.Category {
	var categories []domain.Category
	if err := r.store.Load(categoriesCollection, &categories); err != nil {
		log.Printf("Category collection read error, starting empty: %v", err)
		return nil
	}
	return categories
}
