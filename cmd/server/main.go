package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"blog/internal/app"
	"blog/internal/db"
	"blog/internal/httpx"
	"blog/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment variables")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	cfg := app.LoadConfig()

	d, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	if err := db.Migrate(d, cfg.SchemaPath); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	posts := store.NewPostStore(store.SeedPosts()...)
	users := store.NewUserStore(d)

	srv := httpx.NewServer(cfg, logger, posts, users)
	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, srv); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
