package memory

import (
	"context"
	"testing"
	"time"

	"artisanconnect/internal/domain/entity"
	"artisanconnect/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeFixture struct {
	store *Store
	clock time.Time
}

func newStoreFixture() *storeFixture {
	f := &storeFixture{store: NewStore(), clock: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	f.store.now = func() time.Time { return f.clock }

	return f
}

func (f *storeFixture) tick() {
	f.clock = f.clock.Add(time.Second)
}

func (f *storeFixture) product(id, artisanID, title, description string) *entity.Product {
	now := f.clock
	f.tick()

	return &entity.Product{
		ID:          id,
		Title:       title,
		Description: description,
		Price:       decimal.RequireFromString("45.99"),
		CategoryID:  "1",
		ArtisanID:   artisanID,
		Images:      []string{"/uploads/" + id + ".png"},
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestUserRepository_UpsertMergesAndKeepsCreatedAt(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()
	repo := NewUserRepository(f.store)

	created, err := repo.Upsert(ctx, &entity.User{ID: "u1", Email: "a@b.com", FirstName: "Ada"})
	require.NoError(t, err)
	createdAt := created.CreatedAt
	assert.Equal(t, createdAt, created.UpdatedAt)

	f.tick()
	updated, err := repo.Upsert(ctx, &entity.User{ID: "u1", Bio: "Potter"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", updated.Email)
	assert.Equal(t, "Ada", updated.FirstName)
	assert.Equal(t, "Potter", updated.Bio)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(createdAt))

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestProductRepository_DeactivateIsLogicalAndIdempotent(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()
	repo := NewProductRepository(f.store)

	require.NoError(t, repo.Create(ctx, f.product("p1", "artisan-1", "Bowl", "Clay bowl")))

	require.NoError(t, repo.Deactivate(ctx, "p1"))
	require.NoError(t, repo.Deactivate(ctx, "p1"))

	stored, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	listed, err := repo.List(ctx, entity.ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, listed)

	assert.ErrorIs(t, repo.Deactivate(ctx, "missing"), repository.ErrProductNotFound)
}

func TestProductRepository_ListFiltersAndOrdersNewestFirst(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()
	repo := NewProductRepository(f.store)

	require.NoError(t, repo.Create(ctx, f.product("p1", "artisan-1", "Ceramic Bowl", "Glazed")))
	require.NoError(t, repo.Create(ctx, f.product("p2", "artisan-2", "Silk Scarf", "Hand embroidered")))
	require.NoError(t, repo.Create(ctx, f.product("p3", "artisan-1", "Vase", "Blue CERAMIC vase")))

	all, err := repo.List(ctx, entity.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"p3", "p2", "p1"}, []string{all[0].ID, all[1].ID, all[2].ID})

	search, err := repo.List(ctx, entity.ProductFilter{Search: "ceramic"})
	require.NoError(t, err)
	require.Len(t, search, 2)
	assert.Equal(t, "p3", search[0].ID)
	assert.Equal(t, "p1", search[1].ID)

	byArtisan, err := repo.List(ctx, entity.ProductFilter{ArtisanID: "artisan-2"})
	require.NoError(t, err)
	require.Len(t, byArtisan, 1)
	assert.Equal(t, "p2", byArtisan[0].ID)

	byCategory, err := repo.List(ctx, entity.ProductFilter{CategoryID: "9"})
	require.NoError(t, err)
	assert.Empty(t, byCategory)
}

func TestProductRepository_UpdateAppliesPatch(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()
	repo := NewProductRepository(f.store)

	original := f.product("p1", "artisan-1", "Bowl", "Clay bowl")
	require.NoError(t, repo.Create(ctx, original))

	f.tick()
	title := "Large Bowl"
	price := decimal.RequireFromString("60")
	updated, err := repo.Update(ctx, "p1", &entity.ProductPatch{Title: &title, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Large Bowl", updated.Title)
	assert.True(t, price.Equal(updated.Price))
	assert.Equal(t, "Clay bowl", updated.Description)
	assert.True(t, updated.UpdatedAt.After(original.CreatedAt))
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)

	_, err = repo.Update(ctx, "missing", &entity.ProductPatch{Title: &title})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_ReturnsCopies(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()
	repo := NewProductRepository(f.store)

	require.NoError(t, repo.Create(ctx, f.product("p1", "artisan-1", "Bowl", "Clay bowl")))

	got, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	got.Title = "mutated"
	got.Images[0] = "mutated"

	again, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Bowl", again.Title)
	assert.Equal(t, "/uploads/p1.png", again.Images[0])
}

func TestFavoriteRepository_RoundTrip(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()
	products := NewProductRepository(f.store)
	favorites := NewFavoriteRepository(f.store)

	require.NoError(t, products.Create(ctx, f.product("p1", "artisan-1", "Bowl", "Clay")))
	require.NoError(t, products.Create(ctx, f.product("p2", "artisan-1", "Cup", "Clay")))

	before, err := favorites.ListProducts(ctx, "buyer")
	require.NoError(t, err)

	first, err := favorites.Add(ctx, &entity.Favorite{ID: "f1", UserID: "buyer", ProductID: "p1", CreatedAt: f.clock})
	require.NoError(t, err)
	f.tick()
	again, err := favorites.Add(ctx, &entity.Favorite{ID: "f2", UserID: "buyer", ProductID: "p1", CreatedAt: f.clock})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	f.tick()
	_, err = favorites.Add(ctx, &entity.Favorite{ID: "f3", UserID: "buyer", ProductID: "p2", CreatedAt: f.clock})
	require.NoError(t, err)

	listed, err := favorites.ListProducts(ctx, "buyer")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "p2", listed[0].ID)
	assert.Equal(t, "p1", listed[1].ID)

	require.NoError(t, favorites.Remove(ctx, "buyer", "p1"))
	require.NoError(t, favorites.Remove(ctx, "buyer", "p2"))
	require.NoError(t, favorites.Remove(ctx, "buyer", "p2"))

	after, err := favorites.ListProducts(ctx, "buyer")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestFavoriteRepository_HidesInactiveProducts(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()
	products := NewProductRepository(f.store)
	favorites := NewFavoriteRepository(f.store)

	require.NoError(t, products.Create(ctx, f.product("p1", "artisan-1", "Bowl", "Clay")))
	_, err := favorites.Add(ctx, &entity.Favorite{ID: "f1", UserID: "buyer", ProductID: "p1", CreatedAt: f.clock})
	require.NoError(t, err)
	require.NoError(t, products.Deactivate(ctx, "p1"))

	listed, err := favorites.ListProducts(ctx, "buyer")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestReviewRepository_UniquePerBuyerAndSummary(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()
	reviews := NewReviewRepository(f.store)

	summary, err := reviews.SummaryByArtisan(ctx, "artisan-1")
	require.NoError(t, err)
	assert.Equal(t, float64(0), summary.Average())

	require.NoError(t, reviews.Create(ctx, &entity.Review{ID: "r1", ProductID: "p1", BuyerID: "b1", ArtisanID: "artisan-1", Rating: 5, CreatedAt: f.clock}))
	f.tick()
	require.NoError(t, reviews.Create(ctx, &entity.Review{ID: "r2", ProductID: "p1", BuyerID: "b2", ArtisanID: "artisan-1", Rating: 4, CreatedAt: f.clock}))

	err = reviews.Create(ctx, &entity.Review{ID: "r3", ProductID: "p1", BuyerID: "b1", ArtisanID: "artisan-1", Rating: 1, CreatedAt: f.clock})
	assert.ErrorIs(t, err, repository.ErrReviewAlreadyExists)

	listed, err := reviews.ListByProduct(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "r2", listed[0].ID)

	summary, err = reviews.SummaryByArtisan(ctx, "artisan-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Count)
	assert.InDelta(t, 4.5, summary.Average(), 1e-9)
}

func TestInquiryRepository_UpdateStatusAndCount(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()
	inquiries := NewInquiryRepository(f.store)

	require.NoError(t, inquiries.Create(ctx, &entity.Inquiry{ID: "i1", ProductID: "p1", ArtisanID: "a1", BuyerID: "b1", Message: "Hi", Status: entity.InquiryStatusPending, CreatedAt: f.clock}))
	f.tick()
	require.NoError(t, inquiries.Create(ctx, &entity.Inquiry{ID: "i2", ProductID: "p1", ArtisanID: "a1", BuyerID: "b2", Message: "Hello", Status: entity.InquiryStatusPending, CreatedAt: f.clock}))

	listed, err := inquiries.ListByArtisan(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "i2", listed[0].ID)

	updated, err := inquiries.UpdateStatus(ctx, "i1", entity.InquiryStatusResponded)
	require.NoError(t, err)
	assert.Equal(t, entity.InquiryStatusResponded, updated.Status)

	count, err := inquiries.CountByArtisan(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	_, err = inquiries.UpdateStatus(ctx, "missing", entity.InquiryStatusClosed)
	assert.ErrorIs(t, err, repository.ErrInquiryNotFound)
}

func TestCategoryRepository_OrderedByNameAndUnique(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()
	categories := NewCategoryRepository(f.store)

	require.NoError(t, categories.Create(ctx, &entity.Category{ID: "2", Name: "Textiles"}))
	require.NoError(t, categories.Create(ctx, &entity.Category{ID: "1", Name: "Pottery"}))
	assert.ErrorIs(t, categories.Create(ctx, &entity.Category{ID: "3", Name: "Pottery"}), repository.ErrCategoryAlreadyExists)

	listed, err := categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Pottery", listed[0].Name)
	assert.Equal(t, "Textiles", listed[1].Name)

	count, err := categories.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()
	tm := NewTransactionManager(f.store)
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.NewUserRepository().Upsert(ctx, &entity.User{ID: "u1", Email: "a@b.com"}); err != nil {
			return err
		}
		if err := factory.NewCredentialRepository().Create(ctx, &entity.Credential{UserID: "u1", Email: "A@B.com", PasswordHash: "hash"}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewUserRepository(f.store).FindByID(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	_, err = NewCredentialRepository(f.store).FindByEmail(ctx, "a@b.com")
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
}

func TestTransactionManager_RollbackKeepsOutsideWrites(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()
	tm := NewTransactionManager(f.store)
	users := NewUserRepository(f.store)
	boom := errors.New("boom")

	_, err := users.Upsert(ctx, &entity.User{ID: "existing", FirstName: "Ana"})
	require.NoError(t, err)

	err = tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.NewUserRepository().Upsert(ctx, &entity.User{ID: "existing", FirstName: "Changed"}); err != nil {
			return err
		}
		if _, err := factory.NewUserRepository().Upsert(ctx, &entity.User{ID: "tx-user"}); err != nil {
			return err
		}
		if _, err := users.Upsert(ctx, &entity.User{ID: "firebase-uid", Email: "g@example.com"}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	outside, err := users.FindByID(ctx, "firebase-uid")
	require.NoError(t, err)
	assert.Equal(t, "g@example.com", outside.Email)

	_, err = users.FindByID(ctx, "tx-user")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	restored, err := users.FindByID(ctx, "existing")
	require.NoError(t, err)
	assert.Equal(t, "Ana", restored.FirstName)
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()
	tm := NewTransactionManager(f.store)

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.NewUserRepository().Upsert(ctx, &entity.User{ID: "u1"}); err != nil {
			return err
		}

		return factory.NewCredentialRepository().Create(ctx, &entity.Credential{UserID: "u1", Email: "A@B.com", PasswordHash: "hash"})
	})
	require.NoError(t, err)

	cred, err := NewCredentialRepository(f.store).FindByEmail(ctx, "a@B.COM")
	require.NoError(t, err)
	assert.Equal(t, "u1", cred.UserID)
	assert.Equal(t, "a@b.com", cred.Email)
}

func TestNewDemoStore_SeedsFixtures(t *testing.T) {
	ctx := context.Background()
	store := NewDemoStore()

	categories, err := NewCategoryRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 8)
	assert.Equal(t, "Art & Paintings", categories[0].Name)

	products, err := NewProductRepository(store).List(ctx, entity.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 6)
	assert.Equal(t, "Handwoven Ceramic Bowl", products[0].Title)

	ceramic, err := NewProductRepository(store).List(ctx, entity.ProductFilter{Search: "ceramic"})
	require.NoError(t, err)
	require.Len(t, ceramic, 1)
	assert.Equal(t, "1", ceramic[0].ID)
}
