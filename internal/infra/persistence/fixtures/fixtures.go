// Package fixtures holds the default catalog and the demo listings shipped with the marketplace.
package fixtures

import (
	"context"
	"log/slog"
	"time"

	"artisanconnect/internal/domain/entity"
	"artisanconnect/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type categorySeed struct {
	id          string
	name        string
	description string
}

var defaultCategories = []categorySeed{
	{"1", "Pottery & Ceramics", "Handcrafted pottery, vases, bowls, and ceramic art"},
	{"2", "Textiles & Fabrics", "Handwoven fabrics, embroidery, and textile art"},
	{"3", "Jewelry & Accessories", "Handmade jewelry, bags, and fashion accessories"},
	{"4", "Wood & Furniture", "Wooden crafts, furniture, and carpentry work"},
	{"5", "Metalwork", "Metal crafts, sculptures, and decorative items"},
	{"6", "Art & Paintings", "Original paintings, drawings, and artistic creations"},
	{"7", "Home Decor", "Decorative items for home and living spaces"},
	{"8", "Traditional Crafts", "Cultural and traditional handicrafts"},
}

// DefaultCategories returns the eight marketplace categories with ids "1".."8".
func DefaultCategories(now time.Time) []*entity.Category {
	categories := make([]*entity.Category, 0, len(defaultCategories))
	for _, seed := range defaultCategories {
		categories = append(categories, &entity.Category{
			ID:          seed.id,
			Name:        seed.name,
			Description: seed.description,
			CreatedAt:   now,
		})
	}

	return categories
}

// DemoProducts returns the listings served in demo mode.
func DemoProducts(now time.Time) []*entity.Product {
	products := []*entity.Product{
		{
			ID:                 "1",
			Title:              "Handwoven Ceramic Bowl",
			Description:        "Beautiful handwoven ceramic bowl perfect for serving or decoration. Made with traditional techniques passed down through generations.",
			Price:              decimal.RequireFromString("45.99"),
			CategoryID:         "1",
			ArtisanID:          "artisan-1",
			Images:             []string{"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400"},
			Materials:          "Clay, Natural Glazes",
			Dimensions:         `8" diameter x 3" height`,
			CareInstructions:   "Hand wash only, avoid extreme temperatures",
			AIEnhanced:         true,
			AIPricingSuggested: true,
			SEOTitle:           "Handwoven Ceramic Bowl - Artisan Made",
			MarketingCaption:   "Bring warmth to your table with this stunning handwoven ceramic bowl",
		},
		{
			ID:                 "2",
			Title:              "Embroidered Silk Scarf",
			Description:        "Luxurious silk scarf with intricate hand embroidery featuring traditional floral patterns. Each piece is unique and tells its own story.",
			Price:              decimal.RequireFromString("89.99"),
			CategoryID:         "2",
			ArtisanID:          "artisan-2",
			Images:             []string{"https://images.unsplash.com/photo-1601924994987-69e26d50dc26?w=400"},
			Materials:          "Pure Silk, Cotton Thread",
			Dimensions:         `60" x 20"`,
			CareInstructions:   "Dry clean only",
			AIEnhanced:         true,
			SEOTitle:           "Hand Embroidered Silk Scarf - Traditional Craft",
			MarketingCaption:   "Elevate your style with this exquisite hand-embroidered silk scarf",
		},
		{
			ID:                 "3",
			Title:              "Sterling Silver Pendant",
			Description:        "Elegant sterling silver pendant with natural gemstone. Handcrafted by skilled artisans using traditional silversmithing techniques.",
			Price:              decimal.RequireFromString("125.00"),
			CategoryID:         "3",
			ArtisanID:          "artisan-3",
			Images:             []string{"https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=400"},
			Materials:          "Sterling Silver, Natural Gemstone",
			Dimensions:         `1.5" x 1" pendant`,
			CareInstructions:   "Clean with silver polish cloth",
			AIPricingSuggested: true,
			SEOTitle:           "Sterling Silver Gemstone Pendant - Handcrafted Jewelry",
			MarketingCaption:   "A timeless piece that captures the beauty of natural gemstones",
		},
		{
			ID:                 "4",
			Title:              "Wooden Coffee Table",
			Description:        "Rustic wooden coffee table made from reclaimed oak. Features natural wood grain and a smooth finish that highlights the beauty of the wood.",
			Price:              decimal.RequireFromString("299.99"),
			CategoryID:         "4",
			ArtisanID:          "artisan-4",
			Images:             []string{"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400"},
			Materials:          "Reclaimed Oak Wood, Natural Finish",
			Dimensions:         `48" x 24" x 18" height`,
			CareInstructions:   "Dust regularly, use wood conditioner monthly",
			AIEnhanced:         true,
			AIPricingSuggested: true,
			SEOTitle:           "Reclaimed Oak Coffee Table - Handcrafted Furniture",
			MarketingCaption:   "Bring natural warmth to your living space with this beautiful reclaimed oak table",
		},
		{
			ID:               "5",
			Title:            "Copper Wall Art",
			Description:      "Stunning copper wall art featuring abstract geometric patterns. Hand-hammered and oxidized to create unique patina effects.",
			Price:            decimal.RequireFromString("175.00"),
			CategoryID:       "5",
			ArtisanID:        "artisan-5",
			Images:           []string{"https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=400"},
			Materials:        "Pure Copper, Natural Patina",
			Dimensions:       `24" x 18"`,
			CareInstructions: "Dust gently, avoid harsh chemicals",
			SEOTitle:         "Hand-Hammered Copper Wall Art - Abstract Design",
			MarketingCaption: "Transform your walls with this striking hand-hammered copper artwork",
		},
		{
			ID:                 "6",
			Title:              "Watercolor Landscape Painting",
			Description:        "Original watercolor painting depicting a serene mountain landscape. Painted on high-quality watercolor paper with professional pigments.",
			Price:              decimal.RequireFromString("220.00"),
			CategoryID:         "6",
			ArtisanID:          "artisan-6",
			Images:             []string{"https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=400"},
			Materials:          "Watercolor on Paper, Professional Frame",
			Dimensions:         `16" x 20" framed`,
			CareInstructions:   "Keep away from direct sunlight, dust frame regularly",
			AIEnhanced:         true,
			AIPricingSuggested: true,
			SEOTitle:           "Original Watercolor Mountain Landscape - Fine Art",
			MarketingCaption:   "Bring the tranquility of nature into your home with this beautiful watercolor",
		},
	}

	// Listed one minute apart, first product newest, so listings keep this order.
	for i, product := range products {
		created := now.Add(-time.Duration(i) * time.Minute)
		product.IsActive = true
		product.CreatedAt = created
		product.UpdatedAt = created
	}

	return products
}

// SeedCategories creates the default categories when the catalog is empty.
// It returns the number of categories created.
func SeedCategories(ctx context.Context, categories repository.CategoryRepository, logger *slog.Logger) (int, error) {
	count, err := categories.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count categories")
	}
	if count > 0 {
		logger.Info("Categories already present, skipping seed", slog.Int64("count", count))

		return 0, nil
	}

	created := 0
	for _, category := range DefaultCategories(time.Now()) {
		if err := categories.Create(ctx, category); err != nil {
			if errors.Is(err, repository.ErrCategoryAlreadyExists) {
				continue
			}

			return created, errors.Wrapf(err, "failed to create category %q", category.Name)
		}
		logger.Info("Created category", slog.String("name", category.Name))
		created++
	}

	return created, nil
}
