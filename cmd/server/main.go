package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"anoa.com/schoolregistry/internal/bootstrap"
	"anoa.com/schoolregistry/internal/config"
	searchService "anoa.com/schoolregistry/internal/modules/search/service"
	"anoa.com/schoolregistry/internal/server"
	"anoa.com/schoolregistry/pkg/database"
	"anoa.com/schoolregistry/pkg/logger"
	"anoa.com/schoolregistry/pkg/storage"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	logger.Init(cfg.AppEnv, cfg.LogLevel)
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.DSN(), cfg.AppEnv == "development")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := bootstrap.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}
	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedFaculties(db); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed faculties")
		}
	}

	redisClient, err := database.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	if redisClient == nil {
		logger.Warn().Msg("REDIS_URL not set, avatar uploads are locked in-process only")
	} else {
		defer redisClient.Close()
	}

	avatarStorage, err := newAvatarStorage(cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("backend", cfg.AvatarStorage).Msg("failed to initialize avatar storage")
	}

	srv := server.NewServer(cfg, server.Deps{
		DB:      db,
		Redis:   redisClient,
		Storage: avatarStorage,
		Index:   newFacultyIndex(cfg),
	})

	if err := srv.StartJobs(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start cron jobs")
	}
	defer srv.StopJobs()

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", httpServer.Addr).Msg("server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server exited with error")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func newAvatarStorage(cfg *config.Config) (storage.FileStorage, error) {
	if cfg.AvatarStorage == "cloudinary" {
		return storage.NewCloudinaryStorage(cfg.CloudinaryUploadFolder)
	}
	return storage.NewLocalStorage(cfg.AvatarsDir)
}

// newFacultyIndex returns nil when Meilisearch is not configured; faculty search then queries the database.
func newFacultyIndex(cfg *config.Config) searchService.FacultyIndex {
	host := cfg.MeiliSearchHost
	if host == "" {
		return nil
	}
	if !strings.HasPrefix(host, "http") {
		host = "http://" + host + ":7700"
	}

	client := meilisearch.New(host, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	return searchService.NewMeiliSearchService(client)
}
