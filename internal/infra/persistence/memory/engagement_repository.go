package memory

import (
	"context"
	"slices"
	"time"

	"artisanconnect/internal/domain/entity"
	"artisanconnect/internal/domain/repository"
)

type inquiryRepository struct {
	store *Store
}

// NewInquiryRepository returns an InquiryRepository over the store.
func NewInquiryRepository(s *Store) repository.InquiryRepository {
	return &inquiryRepository{store: s}
}

func (r *inquiryRepository) ListByArtisan(_ context.Context, artisanID string) ([]*entity.Inquiry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]*entity.Inquiry, 0)
	for _, i := range r.store.inquiries {
		if i.ArtisanID == artisanID {
			matched = append(matched, i)
		}
	}

	return newestFirst(matched, func(i *entity.Inquiry) time.Time { return i.CreatedAt }, cloneInquiry), nil
}

func (r *inquiryRepository) FindByID(_ context.Context, id string) (*entity.Inquiry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := r.store.findInquiry(id)
	if i == nil {
		return nil, repository.ErrInquiryNotFound
	}

	return cloneInquiry(i), nil
}

func (r *inquiryRepository) Create(_ context.Context, inquiry *entity.Inquiry) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inquiries = append(s.inquiries, cloneInquiry(inquiry))

	return nil
}

func (r *inquiryRepository) UpdateStatus(_ context.Context, id string, status entity.InquiryStatus) (*entity.Inquiry, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findInquiry(id)
	if i == nil {
		return nil, repository.ErrInquiryNotFound
	}
	i.Status = status

	return cloneInquiry(i), nil
}

func (r *inquiryRepository) CountByArtisan(_ context.Context, artisanID string) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, i := range r.store.inquiries {
		if i.ArtisanID == artisanID {
			count++
		}
	}

	return count, nil
}

// findInquiry must be called with mu held.
func (s *Store) findInquiry(id string) *entity.Inquiry {
	for _, i := range s.inquiries {
		if i.ID == id {
			return i
		}
	}

	return nil
}

type favoriteRepository struct {
	store *Store
}

// NewFavoriteRepository returns a FavoriteRepository over the store.
func NewFavoriteRepository(s *Store) repository.FavoriteRepository {
	return &favoriteRepository{store: s}
}

func (r *favoriteRepository) ListProducts(_ context.Context, userID string) ([]*entity.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	favorites := make([]*entity.Favorite, 0)
	for _, f := range s.favorites {
		if f.UserID == userID {
			favorites = append(favorites, f)
		}
	}
	favorites = newestFirst(favorites, func(f *entity.Favorite) time.Time { return f.CreatedAt }, cloneFavorite)

	products := make([]*entity.Product, 0, len(favorites))
	for _, f := range favorites {
		if p := s.findProduct(f.ProductID); p != nil && p.IsActive {
			products = append(products, cloneProduct(p))
		}
	}

	return products, nil
}

func (r *favoriteRepository) Add(_ context.Context, favorite *entity.Favorite) (*entity.Favorite, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.favorites {
		if f.UserID == favorite.UserID && f.ProductID == favorite.ProductID {
			return cloneFavorite(f), nil
		}
	}
	s.favorites = append(s.favorites, cloneFavorite(favorite))

	return cloneFavorite(favorite), nil
}

func (r *favoriteRepository) Remove(_ context.Context, userID, productID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.favorites = slices.DeleteFunc(s.favorites, func(f *entity.Favorite) bool {
		return f.UserID == userID && f.ProductID == productID
	})

	return nil
}

type reviewRepository struct {
	store *Store
}

// NewReviewRepository returns a ReviewRepository over the store.
func NewReviewRepository(s *Store) repository.ReviewRepository {
	return &reviewRepository{store: s}
}

func (r *reviewRepository) ListByProduct(_ context.Context, productID string) ([]*entity.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]*entity.Review, 0)
	for _, rv := range r.store.reviews {
		if rv.ProductID == productID {
			matched = append(matched, rv)
		}
	}

	return newestFirst(matched, func(rv *entity.Review) time.Time { return rv.CreatedAt }, cloneReview), nil
}

func (r *reviewRepository) Create(_ context.Context, review *entity.Review) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rv := range s.reviews {
		if rv.BuyerID == review.BuyerID && rv.ProductID == review.ProductID {
			return repository.ErrReviewAlreadyExists
		}
	}
	s.reviews = append(s.reviews, cloneReview(review))

	return nil
}

func (r *reviewRepository) SummaryByArtisan(_ context.Context, artisanID string) (entity.RatingSummary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var summary entity.RatingSummary
	for _, rv := range r.store.reviews {
		if rv.ArtisanID == artisanID {
			summary.Count++
			summary.Sum += int64(rv.Rating)
		}
	}

	return summary, nil
}
