package impl

import (
	"context"
	"strings"
	"testing"

	"artisanconnect/config"
	"artisanconnect/internal/domain/entity"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/infra/qrcode"
	"artisanconnect/internal/infra/storage"
	"artisanconnect/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func createTestProductService(t *testing.T, maxFiles int) (usecase.ProductUsecase, *serviceFixture) {
	t.Helper()

	fixture := newServiceFixture(t)
	logger := newTestLogger()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	cfg := &config.Config{Upload: &config.UploadConfig{MaxFiles: maxFiles}}
	srv := NewProductService(
		fixture.products,
		fixture.categories,
		storage.NewBlobImageStore(bucket, "/uploads", 1<<20, logger),
		qrcode.NewQRCodeService(256, "M", "http://localhost:5000/products"),
		cfg,
		logger,
	)

	return srv, fixture
}

func validProductInput() *usecase.CreateProductInput {
	return &usecase.CreateProductInput{
		Title:       "Walnut Serving Board",
		Description: "Hand-carved walnut board",
		Price:       decimal.RequireFromString("64.50"),
		CategoryID:  "4",
		Materials:   "Walnut",
	}
}

func TestProductService_CreateProduct_StoresImages(t *testing.T) {
	srv, fixture := createTestProductService(t, 10)
	ctx := context.Background()

	input := validProductInput()
	input.Images = []usecase.UploadedFile{
		{FieldName: "images", FileName: "board.PNG", Data: pngHeader},
		{FieldName: "images", FileName: "detail.png", Data: pngHeader},
	}

	product, err := srv.CreateProduct(ctx, "artisan-9", input)
	require.NoError(t, err)

	assert.Equal(t, "artisan-9", product.ArtisanID)
	assert.True(t, product.IsActive)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("64.5")))
	assert.Equal(t, product.CreatedAt, product.UpdatedAt)
	assert.False(t, product.CreatedAt.IsZero())
	require.Len(t, product.Images, 2)
	for _, url := range product.Images {
		assert.True(t, strings.HasPrefix(url, "/uploads/images-"), url)
		assert.True(t, strings.HasSuffix(url, ".png"), url)
	}

	stored := fixture.product(t, product.ID)
	assert.Equal(t, product.Images, stored.Images)
}

func TestProductService_CreateProduct_Validation(t *testing.T) {
	srv, _ := createTestProductService(t, 10)
	ctx := context.Background()

	tests := []struct {
		name      string
		mutate    func(in *usecase.CreateProductInput)
		wantField string
	}{
		{"blank title", func(in *usecase.CreateProductInput) { in.Title = "  " }, "title"},
		{"blank description", func(in *usecase.CreateProductInput) { in.Description = "" }, "description"},
		{"zero price", func(in *usecase.CreateProductInput) { in.Price = decimal.Zero }, "price"},
		{"negative price", func(in *usecase.CreateProductInput) { in.Price = decimal.NewFromInt(-3) }, "price"},
		{"sub-cent price", func(in *usecase.CreateProductInput) { in.Price = decimal.RequireFromString("45.999") }, "price"},
		{"unknown category", func(in *usecase.CreateProductInput) { in.CategoryID = "999" }, "categoryId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validProductInput()
			tt.mutate(input)

			_, err := srv.CreateProduct(ctx, "artisan-9", input)

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
			assert.Contains(t, validationErr.Fields(), tt.wantField)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestProductService_CreateProduct_RejectsUploads(t *testing.T) {
	srv, _ := createTestProductService(t, 1)
	ctx := context.Background()

	t.Run("too many files", func(t *testing.T) {
		input := validProductInput()
		input.Images = []usecase.UploadedFile{
			{FileName: "a.png", Data: pngHeader},
			{FileName: "b.png", Data: pngHeader},
		}

		_, err := srv.CreateProduct(ctx, "artisan-9", input)
		assert.True(t, errors.Is(err, domainerrors.ErrTooManyFiles))
	})

	t.Run("not an image", func(t *testing.T) {
		input := validProductInput()
		input.Images = []usecase.UploadedFile{{FileName: "notes.txt", Data: []byte("plain text")}}

		_, err := srv.CreateProduct(ctx, "artisan-9", input)
		assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedMediaType))
	})
}

func TestProductService_CreateProduct_RequiresArtisan(t *testing.T) {
	srv, _ := createTestProductService(t, 10)

	_, err := srv.CreateProduct(context.Background(), "", validProductInput())
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestProductService_ListAndGet(t *testing.T) {
	srv, _ := createTestProductService(t, 10)
	ctx := context.Background()

	all, err := srv.ListProducts(ctx, entity.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Equal(t, "1", all[0].ID)

	byCategory, err := srv.ListProducts(ctx, entity.ProductFilter{CategoryID: "2"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "2", byCategory[0].ID)

	bySearch, err := srv.ListProducts(ctx, entity.ProductFilter{Search: "COPPER"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "5", bySearch[0].ID)

	product, err := srv.GetProduct(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "artisan-3", product.ArtisanID)

	_, err = srv.GetProduct(ctx, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_UpdateProduct(t *testing.T) {
	srv, fixture := createTestProductService(t, 10)
	ctx := context.Background()

	newTitle := "Ceramic Bowl, Large"
	newPrice := decimal.RequireFromString("52.00")

	updated, err := srv.UpdateProduct(ctx, "artisan-1", "1", &entity.ProductPatch{Title: &newTitle, Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	assert.True(t, updated.Price.Equal(newPrice))
	assert.Equal(t, fixture.product(t, "1").Description, updated.Description)

	_, err = srv.UpdateProduct(ctx, "artisan-2", "1", &entity.ProductPatch{Title: &newTitle})
	assert.True(t, errors.Is(err, domainerrors.ErrProductOwnershipViolation))

	_, err = srv.UpdateProduct(ctx, "artisan-1", "missing", &entity.ProductPatch{Title: &newTitle})
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))

	zero := decimal.Zero
	_, err = srv.UpdateProduct(ctx, "artisan-1", "1", &entity.ProductPatch{Price: &zero})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	unknown := "999"
	_, err = srv.UpdateProduct(ctx, "artisan-1", "1", &entity.ProductPatch{CategoryID: &unknown})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductService_UpdateProduct_Images(t *testing.T) {
	srv, _ := createTestProductService(t, 3)
	ctx := context.Background()

	valid := []string{"/uploads/images-1700000000000-42.png", "https://cdn.example.com/bowl.jpg?w=400"}
	updated, err := srv.UpdateProduct(ctx, "artisan-1", "1", &entity.ProductPatch{Images: valid})
	require.NoError(t, err)
	assert.Equal(t, valid, updated.Images)

	tests := []struct {
		name   string
		images []string
	}{
		{"script scheme", []string{"javascript:alert(1)"}},
		{"plain text", []string{"not a url"}},
		{"relative outside uploads", []string{"images/bowl.png"}},
		{"upload traversal", []string{"/uploads/../config.yaml"}},
		{"bare upload prefix", []string{"/uploads/"}},
		{"host-less url", []string{"https:///bowl.png"}},
		{"too many", []string{valid[1], valid[1], valid[1], valid[1]}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.UpdateProduct(ctx, "artisan-1", "1", &entity.ProductPatch{Images: tt.images})

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
			assert.Contains(t, validationErr.Fields(), "images")
		})
	}
}

func TestProductService_UpdateProduct_RejectsSubCentPrice(t *testing.T) {
	srv, fixture := createTestProductService(t, 10)

	price := decimal.RequireFromString("0.001")
	_, err := srv.UpdateProduct(context.Background(), "artisan-1", "1", &entity.ProductPatch{Price: &price})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr), "got %v", err)
	assert.Equal(t, "must have at most 2 decimal places", validationErr.Fields()["price"])
	assert.True(t, fixture.product(t, "1").Price.Equal(decimal.RequireFromString("45.99")))
}

func TestProductService_DeleteProduct_HidesListing(t *testing.T) {
	srv, fixture := createTestProductService(t, 10)
	ctx := context.Background()

	err := srv.DeleteProduct(ctx, "artisan-2", "1")
	assert.True(t, errors.Is(err, domainerrors.ErrProductOwnershipViolation))

	require.NoError(t, srv.DeleteProduct(ctx, "artisan-1", "1"))
	assert.False(t, fixture.product(t, "1").IsActive)

	products, err := srv.ListProducts(ctx, entity.ProductFilter{ArtisanID: "artisan-1"})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductService_GetProductQRCode(t *testing.T) {
	srv, _ := createTestProductService(t, 10)
	ctx := context.Background()

	png, err := srv.GetProductQRCode(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, pngHeader[:8], png[:8])

	_, err = srv.GetProductQRCode(ctx, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

