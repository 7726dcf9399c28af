package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/openboard/backend/internal/config"
	"github.com/openboard/backend/internal/db"
	"github.com/openboard/backend/internal/handler"
	"github.com/openboard/backend/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatal("failed to connect to postgres: ", err)
	}
	defer pool.Close()

	store := &db.Postgres{Pool: pool}
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal("failed to ensure schema: ", err)
	}

	tokens, err := service.NewTokenService(cfg.Auth)
	if err != nil {
		log.Fatal(err)
	}

	authSvc := service.NewAuthService(store, tokens)
	msgSvc := service.NewMessageService(store)

	authH := handler.NewAuthHandler(authSvc)
	msgH := handler.NewMessageHandler(msgSvc)

	router := gin.Default()
	router.Use(handler.CORSMiddleware(cfg.CORS.Origin))

	router.GET("/", handler.Root)
	router.GET("/ping", handler.Ping)

	router.POST("/signup", authH.Signup)
	router.POST("/login", authH.Login)
	router.GET("/messages", msgH.List)
	router.POST("/messages", handler.AuthMiddleware(tokens), msgH.Create)

	addr := ":" + cfg.HTTP.Port
	log.Println("listening on", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal(err)
	}
}
