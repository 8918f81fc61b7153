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
	"go.uber.org/zap"

	"hotel-management/auth"
	"hotel-management/config"
	"hotel-management/controllers"
	"hotel-management/routes"
	"hotel-management/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if cfg.JWTSecret == "" {
		// Login will answer with a server-misconfiguration error; everything
		// else still works.
		logger.Warn("JWT_SECRET is not set; token issuance will fail")
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}

	hasher := auth.BcryptHasher{}
	tokens := auth.NewJWTIssuer(cfg.JWTSecret)

	if cfg.SeedAdmin {
		config.SeedDefaultAdmin(db, hasher, logger)
	}

	userService := services.NewUserService(db, hasher, tokens)
	roomService := services.NewRoomService(db)
	itemService := services.NewItemService(db)
	bookingService := services.NewBookingService(db)

	userController := controllers.NewUserController(userService)
	roomController := controllers.NewRoomController(roomService, userService, bookingService)
	itemController := controllers.NewItemController(itemService)

	router := routes.SetupRouter(userController, roomController, itemController, cfg.CORSOrigins, logger)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen and serve", zap.Error(err))
		}
	}()

	// Wait for interrupt signal, then drain with a timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}
