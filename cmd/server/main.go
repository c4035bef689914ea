package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"seatplan/internal/config"
	"seatplan/internal/database"
	"seatplan/internal/handler"
	"seatplan/internal/middleware"
	"seatplan/internal/queue"
	"seatplan/internal/repository"
	"seatplan/internal/router"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	seats := repository.NewSeatRepo(db)
	bookings := repository.NewBookingRepo(db)
	users := repository.NewUserRepo(db, bookings)

	// First boot on an empty database gets the default floor plan and the
	// demo user roster.
	if err := database.Seed(ctx, seats, users); err != nil {
		log.Fatalf("seed: %v", err)
	}
	cancel()

	rdb := config.NewRedisClient()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.ResponseCache(config.LoadCacheConfig(), rdb))

	h := router.Handlers{
		Auth:     handler.NewAuthHandler(cfg),
		Layout:   handler.NewLayoutHandler(seats),
		Bookings: handler.NewBookingHandler(bookings, seats, users),
		Users:    handler.NewUserHandler(users),
	}
	router.Register(e, h, cfg.JWTSecret)

	// Booking events land on a durable queue; the consumer appends them to
	// the audit log and reconnects on broker failure.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
