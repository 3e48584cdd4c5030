package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/rizalfh/movie-chat-api/internal/config"
	"github.com/rizalfh/movie-chat-api/internal/database"
	"github.com/rizalfh/movie-chat-api/internal/handler"
	"github.com/rizalfh/movie-chat-api/internal/repository"
	"github.com/rizalfh/movie-chat-api/internal/router"
)

func main() {
	// A .env file is optional; every config value has a default.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database %s: %v", cfg.DBPath, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.Bootstrap(ctx, db); err != nil {
		log.Fatalf("bootstrap schema: %v", err)
	}

	users := repository.NewUserRepo(db)
	movies := repository.NewMovieRepo(db)
	chats := repository.NewChatRepo(db)

	e := echo.New()
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowCredentials: false,
	}))
	router.RegisterRoutes(e,
		handler.NewAuthHandler(cfg, users),
		handler.NewCatalogHandler(cfg, movies),
		handler.NewChatHandler(chats),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (db=%s)", addr, cfg.DBPath)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
