package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"utyadmin/admin"
	"utyadmin/auctions"
	"utyadmin/auth"
	"utyadmin/cache"
	"utyadmin/categories"
	"utyadmin/config"
	"utyadmin/currencies"
	"utyadmin/dels"
	"utyadmin/gateway"
	"utyadmin/listings"
	"utyadmin/moderator"
	"utyadmin/orders"
	"utyadmin/ratelim"
	"utyadmin/routes"
	"utyadmin/shops"
	"utyadmin/users"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// XSS, content sniffing, framing
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		// HSTS (must be on HTTPS)
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		// Referrer and permissions
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		// Admin responses must never be cached by intermediaries
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.RequestURI),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func setupRouter(gw *gateway.Client, store *cache.Cache, logger *zap.Logger, rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()

	routes.AddStaticRoutes(router)
	routes.AddAuthRoutes(router, auth.NewAPI(gw, logger), rateLimiter)
	routes.AddUserRoutes(router, users.NewAPI(gw, store, logger))
	routes.AddCategoryRoutes(router, categories.NewAPI(gw, store, logger))
	routes.AddListingRoutes(router, listings.NewAPI(gw, store, logger))
	routes.AddOrderRoutes(router, orders.NewAPI(gw, store, logger))
	routes.AddDeliveryRoutes(router, dels.NewAPI(gw, store, logger))
	routes.AddAuctionRoutes(router, auctions.NewAPI(gw, store, logger))
	routes.AddModerationRoutes(router, moderator.NewAPI(gw, store, logger))
	routes.AddCurrencyRoutes(router, currencies.NewAPI(gw, store, logger))
	routes.AddShopRoutes(router, shops.NewAPI(gw, store, logger))
	routes.AddDashboardRoutes(router, admin.NewAPI(gw, store, logger))

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	// response cache: shared redis when configured, in-process otherwise
	backend := cache.NewMemoryBackend()
	if cfg.RedisURL != "" {
		rb, err := cache.NewRedisBackend(cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, using in-memory cache", zap.Error(err))
		} else {
			backend = rb
		}
	}
	store := cache.New(backend)

	gw := gateway.New(cfg.UpstreamURL, logger)
	rateLimiter := ratelim.NewRateLimiter()
	router := setupRouter(gw, store, logger, rateLimiter)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(logger, securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Addr), zap.String("upstream", cfg.UpstreamURL))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("graceful shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped cleanly")
}
