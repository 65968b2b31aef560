package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"artisanconnect/internal/domain/entity"
	"artisanconnect/internal/domain/repository"
)

type categoryRepository struct {
	store *Store
}

// NewCategoryRepository returns a CategoryRepository over the store.
func NewCategoryRepository(s *Store) repository.CategoryRepository {
	return &categoryRepository{store: s}
}

func (r *categoryRepository) List(_ context.Context) ([]*entity.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.Category, 0, len(r.store.categories))
	for _, c := range r.store.categories {
		out = append(out, cloneCategory(c))
	}
	slices.SortStableFunc(out, func(a, b *entity.Category) int {
		return strings.Compare(a.Name, b.Name)
	})

	return out, nil
}

func (r *categoryRepository) FindByID(_ context.Context, id string) (*entity.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, c := range r.store.categories {
		if c.ID == id {
			return cloneCategory(c), nil
		}
	}

	return nil, repository.ErrCategoryNotFound
}

func (r *categoryRepository) Create(_ context.Context, category *entity.Category) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.Name == category.Name || c.ID == category.ID {
			return repository.ErrCategoryAlreadyExists
		}
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = s.now()
	}
	s.categories = append(s.categories, cloneCategory(category))

	return nil
}

func (r *categoryRepository) Count(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return int64(len(r.store.categories)), nil
}

type productRepository struct {
	store *Store
}

// NewProductRepository returns a ProductRepository over the store.
func NewProductRepository(s *Store) repository.ProductRepository {
	return &productRepository{store: s}
}

func (r *productRepository) List(_ context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	matched := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		if !p.IsActive {
			continue
		}
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.ArtisanID != "" && p.ArtisanID != filter.ArtisanID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		matched = append(matched, p)
	}

	return newestFirst(matched, func(p *entity.Product) time.Time { return p.CreatedAt }, cloneProduct), nil
}

func (r *productRepository) FindByID(_ context.Context, id string) (*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p := r.store.findProduct(id)
	if p == nil {
		return nil, repository.ErrProductNotFound
	}

	return cloneProduct(p), nil
}

func (r *productRepository) Create(_ context.Context, product *entity.Product) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, cloneProduct(product))

	return nil
}

func (r *productRepository) Update(_ context.Context, id string, patch *entity.ProductPatch) (*entity.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProduct(id)
	if p == nil {
		return nil, repository.ErrProductNotFound
	}
	patch.Apply(p)
	p.UpdatedAt = s.now()

	return cloneProduct(p), nil
}

func (r *productRepository) Deactivate(_ context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProduct(id)
	if p == nil {
		return repository.ErrProductNotFound
	}
	if p.IsActive {
		p.IsActive = false
		p.UpdatedAt = s.now()
	}

	return nil
}

func (r *productRepository) CountActiveByArtisan(_ context.Context, artisanID string) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, p := range r.store.products {
		if p.ArtisanID == artisanID && p.IsActive {
			count++
		}
	}

	return count, nil
}

// findProduct must be called with mu held.
func (s *Store) findProduct(id string) *entity.Product {
	for _, p := range s.products {
		if p.ID == id {
			return p
		}
	}

	return nil
}
