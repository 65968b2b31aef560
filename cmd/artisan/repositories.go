package main

import (
	"context"
	"log/slog"

	"artisanconnect/config"
	"artisanconnect/internal/domain/lifecycle"
	"artisanconnect/internal/domain/repository"
	"artisanconnect/internal/infra/persistence/memory"
	"artisanconnect/internal/infra/persistence/postgres"
	"artisanconnect/internal/usecase"

	"go.uber.org/fx"
)

// repositories is the persistence layer handed to the use cases.
type repositories struct {
	fx.Out

	TxManager   repository.TransactionManager
	Users       repository.UserRepository
	Credentials repository.CredentialRepository
	Categories  repository.CategoryRepository
	Products    repository.ProductRepository
	Inquiries   repository.InquiryRepository
	Favorites   repository.FavoriteRepository
	Reviews     repository.ReviewRepository
}

// newRepositories backs the repositories with the in-memory fixture store in
// demo mode and with PostgreSQL otherwise.
func newRepositories(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (repositories, error) {
	if cfg.DemoEnabled() {
		logger.Warn("Demo mode enabled, data is kept in memory and lost on restart")

		store := memory.NewDemoStore()

		return repositories{
			TxManager:   memory.NewTransactionManager(store),
			Users:       memory.NewUserRepository(store),
			Credentials: memory.NewCredentialRepository(store),
			Categories:  memory.NewCategoryRepository(store),
			Products:    memory.NewProductRepository(store),
			Inquiries:   memory.NewInquiryRepository(store),
			Favorites:   memory.NewFavoriteRepository(store),
			Reviews:     memory.NewReviewRepository(store),
		}, nil
	}

	db, err := postgres.New(postgres.Params{Lifecycle: lc, Config: cfg, Logger: logger})
	if err != nil {
		return repositories{}, err
	}

	return repositories{
		TxManager:   postgres.NewTransactionManager(db),
		Users:       postgres.NewUserRepository(db),
		Credentials: postgres.NewCredentialRepository(db),
		Categories:  postgres.NewCategoryRepository(db),
		Products:    postgres.NewProductRepository(db),
		Inquiries:   postgres.NewInquiryRepository(db),
		Favorites:   postgres.NewFavoriteRepository(db),
		Reviews:     postgres.NewReviewRepository(db),
	}, nil
}

// seedCategories creates the default categories on start when seed.categories is set.
func seedCategories(lc fx.Lifecycle, cfg *config.Config, catalog usecase.CatalogUsecase, logger *slog.Logger) {
	if cfg.Seed == nil || !cfg.Seed.Categories {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			created, err := catalog.SeedDefaultCategories(ctx)
			if err != nil {
				return err
			}

			logger.Info("Category seeding finished", slog.Int("created", created))

			return nil
		},
	})
}
