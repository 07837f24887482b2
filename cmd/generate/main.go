package main

import (
	"Verdure/internal/api/config"
	"Verdure/internal/model"
	"Verdure/internal/pkg/database"
	"Verdure/internal/pkg/imagestore"
	"Verdure/internal/pkg/llm"
	"Verdure/internal/pkg/logger"
	"Verdure/internal/pkg/minio"
	"Verdure/internal/pkg/unsplash"
	"Verdure/internal/repository"
	"Verdure/internal/service"
	"context"
	"flag"
	"fmt"
	log "log/slog"
	"os"
)

// 一次性生成入口，绕过调度器直接跑建帖管线
func main() {
	category := flag.String("category", "", "category slug, empty means derive from today's date")
	force := flag.Bool("force", false, "generate even when today's topic already has a post")
	flag.Parse()

	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		os.Exit(1)
	}
	cfg := config.Cfg
	logger.InitLogger()

	db, err := database.NewGormDB(&cfg.DB)
	if err != nil {
		log.Error("Fatal error: failed to create database connection", "err", err)
		os.Exit(1)
	}

	if cfg.Storage.Backend == "minio" {
		if err = minio.Init(); err != nil {
			log.Error("Fatal error: failed to initialize MinIO", "err", err)
			os.Exit(1)
		}
	}

	if err = llm.InitLLM(); err != nil {
		log.Error("Fatal error: failed to initialize llm models", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err = database.AutoMigrate(db); err != nil {
		log.Error("Fatal error: failed to migrate database schema", "err", err)
		os.Exit(1)
	}
	if err = repository.NewCategoryRepository(db).Seed(ctx); err != nil {
		log.Error("Fatal error: failed to seed categories", "err", err)
		os.Exit(1)
	}

	store, err := imagestore.New(cfg.Storage, cfg.Generator)
	if err != nil {
		log.Error("Fatal error: failed to initialize image store", "err", err)
		os.Exit(1)
	}

	generationService := service.NewGenerationService(
		repository.NewPostRepository(db),
		repository.NewTagRepository(db),
		service.NewLLMGenerator(),
		unsplash.NewClient(cfg.Unsplash),
		store,
		cfg.Generator.PlaceholderURL,
		cfg.Generator.FeaturedPlaceholderURL,
	)

	result, err := generationService.Generate(ctx, model.Category(*category), *force)
	if err != nil {
		log.Error("generate failed", "err", err)
		os.Exit(1)
	}

	if !result.Created {
		fmt.Printf("post already exists for today's topic: %s\n", result.Slug)
		return
	}
	fmt.Printf("created post %d: %s (%s)\n", result.PostID, result.Title, result.Slug)
}
