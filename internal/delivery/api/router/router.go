// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strings"

	"artisanconnect/config"
	"artisanconnect/internal/delivery/api/middleware"
	"artisanconnect/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	CategoryHandler  *handler.CategoryHandler
	ProductHandler   *handler.ProductHandler
	AssistantHandler *handler.AssistantHandler
	InquiryHandler   *handler.InquiryHandler
	FavoriteHandler  *handler.FavoriteHandler
	ReviewHandler    *handler.ReviewHandler
	UploadHandler    *handler.UploadHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	categoryHandler  *handler.CategoryHandler
	productHandler   *handler.ProductHandler
	assistantHandler *handler.AssistantHandler
	inquiryHandler   *handler.InquiryHandler
	favoriteHandler  *handler.FavoriteHandler
	reviewHandler    *handler.ReviewHandler
	uploadHandler    *handler.UploadHandler
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		categoryHandler:  params.CategoryHandler,
		productHandler:   params.ProductHandler,
		assistantHandler: params.AssistantHandler,
		inquiryHandler:   params.InquiryHandler,
		favoriteHandler:  params.FavoriteHandler,
		reviewHandler:    params.ReviewHandler,
		uploadHandler:    params.UploadHandler,
		authMiddleware:   params.AuthMiddleware,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Uploaded product images
	e.GET(r.uploadsPath()+"/:name", r.uploadHandler.ServeImage)

	requireAuth := r.authMiddleware.Authenticate

	// Identify attaches the requester to logs on public routes too
	api := e.Group("/api", r.authMiddleware.Identify)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/firebase", r.authHandler.FirebaseLogin)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/user", r.authHandler.GetUser, requireAuth)
	}

	api.PUT("/user/profile", r.authHandler.UpdateProfile, requireAuth)

	categoriesGroup := api.Group("/categories")
	{
		categoriesGroup.GET("", r.categoryHandler.ListCategories)
		categoriesGroup.POST("", r.categoryHandler.CreateCategory, requireAuth)
	}

	productsGroup := api.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.GET("/:id/qr", r.productHandler.GetProductQRCode)
		productsGroup.POST("", r.productHandler.CreateProduct, requireAuth)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct, requireAuth)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct, requireAuth)
	}

	// AI assistant routes all require a session
	aiGroup := api.Group("/ai", requireAuth)
	{
		aiGroup.POST("/pricing", r.assistantHandler.GeneratePricing)
		aiGroup.POST("/marketing", r.assistantHandler.GenerateMarketing)
		aiGroup.POST("/story", r.assistantHandler.EnhanceStory)
		aiGroup.POST("/analyze-image", r.assistantHandler.AnalyzeImage)
	}

	inquiriesGroup := api.Group("/inquiries", requireAuth)
	{
		inquiriesGroup.GET("", r.inquiryHandler.ListInquiries)
		inquiriesGroup.POST("", r.inquiryHandler.CreateInquiry)
		inquiriesGroup.PATCH("/:id/status", r.inquiryHandler.UpdateInquiryStatus)
	}

	favoritesGroup := api.Group("/favorites", requireAuth)
	{
		favoritesGroup.GET("", r.favoriteHandler.ListFavorites)
		favoritesGroup.POST("", r.favoriteHandler.AddFavorite)
		favoritesGroup.DELETE("/:productId", r.favoriteHandler.RemoveFavorite)
	}

	reviewsGroup := api.Group("/reviews")
	{
		reviewsGroup.GET("/:productId", r.reviewHandler.ListReviews)
		reviewsGroup.POST("", r.reviewHandler.CreateReview, requireAuth)
	}

	api.GET("/artisan/:id/stats", r.reviewHandler.GetArtisanStats)
}

func (r *router) uploadsPath() string {
	if r.config != nil && r.config.Upload != nil && r.config.Upload.PublicPath != "" {
		return "/" + strings.Trim(r.config.Upload.PublicPath, "/")
	}

	return "/uploads"
}
