package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/royalvilla/villa-catalog-api/internal/config"
	"github.com/royalvilla/villa-catalog-api/internal/database"
	"github.com/royalvilla/villa-catalog-api/internal/handler"
	"github.com/royalvilla/villa-catalog-api/internal/middleware"
	"github.com/royalvilla/villa-catalog-api/internal/queue"
	"github.com/royalvilla/villa-catalog-api/internal/repository"
	"github.com/royalvilla/villa-catalog-api/internal/router"
	"github.com/royalvilla/villa-catalog-api/internal/service"
)

func main() {
	// A missing .env is fine in production; variables come from the
	// environment there.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: with no client the cache and the rate limiter
	// become pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	villaRepo := repository.NewVillaRepo(db)
	amenityRepo := repository.NewAmenityRepo(db)
	userRepo := repository.NewUserRepo(db)

	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTLDays, cfg.BcryptCost)

	authHandler := handler.NewAuthHandler(authSvc)
	villaHandler := handler.NewVillaHandler(villaRepo, amenityRepo)
	amenityHandler := handler.NewAmenityHandler(amenityRepo, villaRepo)

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler)
	router.RegisterCatalog(e, cfg, villaHandler, amenityHandler, rdb)

	// Background consumer appends villa.created events to logs/villa.log.
	go func() {
		if err := queue.StartVillaConsumer(); err != nil {
			log.Printf("villa consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
