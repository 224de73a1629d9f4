package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/screenbase/movie_catalog/internal/config"
	"github.com/screenbase/movie_catalog/internal/delivery/events"
	httpDelivery "github.com/screenbase/movie_catalog/internal/delivery/http"
	"github.com/screenbase/movie_catalog/internal/delivery/http/handler"
	"github.com/screenbase/movie_catalog/internal/pkg/cache"
	"github.com/screenbase/movie_catalog/internal/pkg/database"
	"github.com/screenbase/movie_catalog/internal/pkg/logger"
	cacheRepo "github.com/screenbase/movie_catalog/internal/repository/cache"
	"github.com/screenbase/movie_catalog/internal/repository/mongodb"
	"github.com/screenbase/movie_catalog/internal/seed"
	"github.com/screenbase/movie_catalog/internal/usecase/catalog"

	_ "github.com/screenbase/movie_catalog/docs"
)

// @title Movie Catalog API
// @version 1.0
// @description A movie catalog backend with faceted search over MongoDB.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/screenbase/movie_catalog
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @tag.name Movies
// @tag.description Movie catalog endpoints

// @tag.name Genres
// @tag.description Known-genre endpoints

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	appLogger.Info("Starting Movie Catalog API...")

	appLogger.Info("Connecting to MongoDB...")
	client, err := database.WaitForMongo(cfg, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to MongoDB", err)
	}
	defer client.Disconnect(context.Background())
	appLogger.Info("Connected to MongoDB successfully")

	appLogger.Info("Connecting to Redis...")
	redisClient, err := cache.WaitForRedis(cfg, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis successfully")

	appLogger.Info("Connecting to NATS...")
	publisher, err := events.NewPublisher(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create NATS publisher", err)
	}
	defer publisher.Close()

	if err := events.NewStreamConfig(publisher.JetStream(), appLogger).EnsureStream(); err != nil {
		appLogger.Fatal("Failed to ensure JetStream stream", err)
	}

	db := client.Database(cfg.Mongo.Database)
	movieRepo := mongodb.NewMovieRepository(db, cfg.Mongo.MovieCollection)
	genreRepo := mongodb.NewGenreRepository(db, cfg.Mongo.GenreCollection)

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancelIndex()
	if err := movieRepo.EnsureIndexes(indexCtx); err != nil {
		appLogger.Fatal("Failed to create movie indexes", err)
	}
	if err := genreRepo.EnsureIndexes(indexCtx); err != nil {
		appLogger.Fatal("Failed to create genre indexes", err)
	}

	redisCache := cacheRepo.NewRedisCache(redisClient, cfg.Cache.GenreListTTL)

	catalogService := catalog.NewService(movieRepo, genreRepo, redisCache, publisher, appLogger)

	// Seed failures are fatal to startup, never a per-request concern.
	seeder := seed.NewLoader(catalogService, movieRepo, cfg.Seed.Path, appLogger)
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelSeed()
	if err := seeder.Run(seedCtx); err != nil {
		appLogger.Fatal("Failed to seed movie collection", err)
	}

	movieHandler := handler.NewMovieHandler(catalogService, appLogger)
	genreHandler := handler.NewGenreHandler(catalogService, appLogger)

	router := httpDelivery.NewRouter(movieHandler, genreHandler, cfg, appLogger)
	httpHandler := router.Setup()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Infof("HTTP server listening on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("HTTP server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server stopped gracefully")
}
