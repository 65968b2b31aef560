package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"artisanconnect/internal/domain/entity"
	"artisanconnect/internal/domain/repository"
	"artisanconnect/internal/infra/persistence/memory"

	"github.com/stretchr/testify/require"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// serviceFixture wires every repository over one demo store.
type serviceFixture struct {
	store      *memory.Store
	txManager  repository.TransactionManager
	users      repository.UserRepository
	categories repository.CategoryRepository
	products   repository.ProductRepository
	inquiries  repository.InquiryRepository
	favorites  repository.FavoriteRepository
	reviews    repository.ReviewRepository
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	store := memory.NewDemoStore()

	return &serviceFixture{
		store:      store,
		txManager:  memory.NewTransactionManager(store),
		users:      memory.NewUserRepository(store),
		categories: memory.NewCategoryRepository(store),
		products:   memory.NewProductRepository(store),
		inquiries:  memory.NewInquiryRepository(store),
		favorites:  memory.NewFavoriteRepository(store),
		reviews:    memory.NewReviewRepository(store),
	}
}

func (f *serviceFixture) product(t *testing.T, id string) *entity.Product {
	t.Helper()

	product, err := f.products.FindByID(context.Background(), id)
	require.NoError(t, err)

	return product
}
