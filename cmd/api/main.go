package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"surpriset-backend/config"
	"surpriset-backend/internal/delivery/http/middleware"
	v1 "surpriset-backend/internal/delivery/http/v1"
	"surpriset-backend/internal/infrastructure/cache"
	"surpriset-backend/internal/repository/postgres"
	"surpriset-backend/internal/store"
	"surpriset-backend/internal/usecase"
	"surpriset-backend/pkg/logger"
	"surpriset-backend/pkg/storage"
	"surpriset-backend/pkg/utils"

	"github.com/NYTimes/gziphandler"
)

func main() {
	cfg := config.LoadConfig()
	utils.SetSecret(cfg.JWTSecret)

	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	pgxPool, err := postgres.NewPgxPool(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	log.Info().Msg("Connected to PostgreSQL")

	// Repositories
	userRepo := postgres.NewUserRepository(pgxPool)
	productRepo := postgres.NewProductRepository(pgxPool)
	likeRepo := postgres.NewLikeRepository(pgxPool)
	orderRepo := postgres.NewOrderRepository(pgxPool)
	contentRepo := postgres.NewContentRepository(pgxPool)
	reviewRepo := postgres.NewReviewRepository(pgxPool)
	snapshotRepo := postgres.NewSnapshotRepository(pgxPool, cfg.SnapshotTTL)
	txManager := postgres.NewTransactionManager(pgxPool)

	// In-memory cache: 30m default TTL, hourly sweep
	memCache := cache.NewMemoryCache(30*time.Minute, time.Hour)

	bundleConstraint := store.Constraint{
		MinItems: cfg.BundleMinItems,
		MaxItems: cfg.BundleMaxItems,
	}

	mux := http.NewServeMux()

	// --- Modules ---

	// Auth Module
	authUC := usecase.NewAuthUsecase(userRepo, cfg.TokenExpiry)
	authHandler := v1.NewAuthHandler(authUC)

	// Storage Module (S3-compatible)
	objStorage, err := storage.NewObjectStorage(
		context.Background(),
		cfg.S3AccountID,
		cfg.S3AccessKeyID,
		cfg.S3AccessKeySecret,
		cfg.S3BucketName,
		cfg.S3PublicURL,
		cfg.S3UploadTimeout,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize object storage")
	}
	uploadHandler := v1.NewUploadHandler(objStorage, cfg.MaxUploadSizeMB)

	// Catalog Module
	catalogUC := usecase.NewCatalogUsecase(productRepo, memCache, cfg.CacheCatalogTTL)
	catalogHandler := v1.NewCatalogHandler(catalogUC)
	adminCatalogHandler := v1.NewAdminCatalogHandler(catalogUC)

	// Cart & Bundle Modules
	cartUC := usecase.NewCartUsecase(snapshotRepo, productRepo, cfg.MaxCartQuantity)
	cartHandler := v1.NewCartHandler(cartUC)
	bundleUC := usecase.NewBundleUsecase(snapshotRepo, productRepo, bundleConstraint)
	bundleHandler := v1.NewBundleHandler(bundleUC)

	// Order Module
	orderUC := usecase.NewOrderUsecase(
		orderRepo, productRepo, contentRepo, snapshotRepo, txManager,
		cfg.MinOrderAmount, cfg.AssemblyServicePrice, bundleConstraint,
	)
	orderHandler := v1.NewOrderHandler(orderUC)
	adminOrderHandler := v1.NewAdminOrderHandler(orderUC)

	// Likes Module
	likeUC := usecase.NewLikeUsecase(likeRepo, productRepo, memCache)
	likeHandler := v1.NewLikeHandler(likeUC)

	// Reviews Module
	reviewUC := usecase.NewReviewUsecase(reviewRepo, productRepo)
	reviewHandler := v1.NewReviewHandler(reviewUC)
	adminReviewHandler := v1.NewAdminReviewHandler(reviewUC)

	// Content Module (banners, packaging)
	contentUC := usecase.NewContentUsecase(contentRepo, memCache, cfg.CacheContentTTL)
	contentHandler := v1.NewContentHandler(contentUC)
	adminContentHandler := v1.NewAdminContentHandler(contentUC)

	// Stats Module
	statsUC := usecase.NewStatsUsecase(pgxPool, memCache)
	adminStatsHandler := v1.NewAdminStatsHandler(statsUC)

	// --- Routes ---

	// Session-scoped storefront routes carry the X-Session-ID header.
	session := func(h http.HandlerFunc) http.Handler {
		return middleware.SessionMiddleware(h)
	}
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(middleware.AdminMiddleware(http.HandlerFunc(h)))
	}

	// Session bootstrap
	sessionHandler := v1.NewSessionHandler()
	mux.Handle("POST /api/v1/session", session(sessionHandler.IssueSession))

	// Auth
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout)
	mux.Handle("GET /api/v1/auth/me", middleware.AuthMiddleware(http.HandlerFunc(authHandler.Me)))

	// Catalog (Public)
	mux.HandleFunc("GET /api/v1/categories", catalogHandler.GetCategories)
	mux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts)
	mux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct)
	mux.HandleFunc("GET /api/v1/products/{id}/reviews", reviewHandler.GetProductReviews)
	mux.Handle("POST /api/v1/products/{id}/reviews", session(reviewHandler.CreateReview))
	mux.Handle("POST /api/v1/products/{id}/like", session(likeHandler.ToggleLike))
	mux.Handle("GET /api/v1/likes", session(likeHandler.GetMyLikes))

	// Content (Public)
	mux.HandleFunc("GET /api/v1/banners", contentHandler.GetBanners)
	mux.HandleFunc("GET /api/v1/packaging", contentHandler.GetPackaging)

	// Cart (Session)
	mux.Handle("GET /api/v1/cart", session(cartHandler.GetCart))
	mux.Handle("POST /api/v1/cart", session(cartHandler.AddItem))
	mux.Handle("PUT /api/v1/cart", session(cartHandler.UpdateItem))
	mux.Handle("DELETE /api/v1/cart/{productId}", session(cartHandler.RemoveItem))
	mux.Handle("DELETE /api/v1/cart", session(cartHandler.ClearCart))

	// Bundle Builder (Session)
	mux.Handle("GET /api/v1/bundle", session(bundleHandler.GetBundle))
	mux.Handle("POST /api/v1/bundle", session(bundleHandler.AddItem))
	mux.Handle("PUT /api/v1/bundle", session(bundleHandler.UpdateItem))
	mux.Handle("PUT /api/v1/bundle/step", session(bundleHandler.SetStep))
	mux.Handle("DELETE /api/v1/bundle/{productId}", session(bundleHandler.RemoveItem))
	mux.Handle("DELETE /api/v1/bundle", session(bundleHandler.ClearBundle))

	// Checkout & Orders (Session)
	mux.Handle("POST /api/v1/checkout", session(orderHandler.Checkout))
	mux.Handle("GET /api/v1/orders", session(orderHandler.GetMyOrders))

	// Uploads (Admin)
	mux.Handle("POST /api/v1/upload", adminOnly(uploadHandler.UploadFile))

	// Admin Catalog
	mux.Handle("POST /api/v1/admin/products", adminOnly(adminCatalogHandler.CreateProduct))
	mux.Handle("PUT /api/v1/admin/products/{id}", adminOnly(adminCatalogHandler.UpdateProduct))
	mux.Handle("PATCH /api/v1/admin/products/{id}/status", adminOnly(adminCatalogHandler.UpdateProductStatus))
	mux.Handle("DELETE /api/v1/admin/products/{id}", adminOnly(adminCatalogHandler.DeleteProduct))
	mux.Handle("POST /api/v1/admin/categories", adminOnly(adminCatalogHandler.CreateCategory))
	mux.Handle("PUT /api/v1/admin/categories/{id}", adminOnly(adminCatalogHandler.UpdateCategory))
	mux.Handle("DELETE /api/v1/admin/categories/{id}", adminOnly(adminCatalogHandler.DeleteCategory))

	// Admin Content
	mux.Handle("GET /api/v1/admin/banners", adminOnly(adminContentHandler.ListBanners))
	mux.Handle("POST /api/v1/admin/banners", adminOnly(adminContentHandler.CreateBanner))
	mux.Handle("PUT /api/v1/admin/banners/{id}", adminOnly(adminContentHandler.UpdateBanner))
	mux.Handle("DELETE /api/v1/admin/banners/{id}", adminOnly(adminContentHandler.DeleteBanner))
	mux.Handle("POST /api/v1/admin/banners/reorder", adminOnly(adminContentHandler.ReorderBanners))
	mux.Handle("GET /api/v1/admin/packaging", adminOnly(adminContentHandler.ListPackaging))
	mux.Handle("POST /api/v1/admin/packaging", adminOnly(adminContentHandler.CreatePackaging))
	mux.Handle("PUT /api/v1/admin/packaging/{id}", adminOnly(adminContentHandler.UpdatePackaging))
	mux.Handle("DELETE /api/v1/admin/packaging/{id}", adminOnly(adminContentHandler.DeletePackaging))

	// Admin Orders
	mux.Handle("GET /api/v1/admin/orders", adminOnly(adminOrderHandler.ListOrders))
	mux.Handle("GET /api/v1/admin/orders/{id}", adminOnly(adminOrderHandler.GetOrder))
	mux.Handle("PATCH /api/v1/admin/orders/{id}/status", adminOnly(adminOrderHandler.UpdateStatus))
	mux.Handle("DELETE /api/v1/admin/orders/{id}", adminOnly(adminOrderHandler.DeleteOrder))

	// Admin Reviews
	mux.Handle("GET /api/v1/admin/reviews", adminOnly(adminReviewHandler.ListReviews))
	mux.Handle("PATCH /api/v1/admin/reviews/{id}/status", adminOnly(adminReviewHandler.ModerateReview))
	mux.Handle("DELETE /api/v1/admin/reviews/{id}", adminOnly(adminReviewHandler.DeleteReview))

	// Admin Stats
	mux.Handle("GET /api/v1/admin/stats/dashboard", adminOnly(adminStatsHandler.GetDashboard))

	// Health Check
	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok", "db": "connected"}`))
	}
	mux.HandleFunc("GET /api/v1/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler)

	addr := fmt.Sprintf(":%s", cfg.Port)

	// 50 req/s, burst 100, cleanup every minute, TTL 3 minutes
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		50,
		100,
		time.Minute,
		3*time.Minute,
	)

	// CORS -> Request Logger -> Rate Limit -> Gzip, outermost first
	handler := middleware.NewCORSMiddleware(cfg)(mux)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Background sweep of expired cart/bundle snapshots
	purgeCtx, purgeCancel := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n, err := snapshotRepo.PurgeExpired(purgeCtx); err != nil {
					log.Warn().Err(err).Msg("snapshot purge failed")
				} else if n > 0 {
					log.Info().Int64("purged", n).Msg("expired snapshots removed")
				}
			case <-purgeCtx.Done():
				return
			}
		}
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	log.Info().Msgf("Server starting on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	rateLimiter.Shutdown()
	purgeCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	pgxPool.Close()
	log.Info().Msg("Server exited properly")
}
