package main // Entry point package

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/citdeveloper/cit/internal/config"
	"github.com/citdeveloper/cit/internal/database"
	"github.com/citdeveloper/cit/internal/handler"
	"github.com/citdeveloper/cit/internal/queue"
	"github.com/citdeveloper/cit/internal/repository"
	"github.com/citdeveloper/cit/internal/router"
	queue_publisher "github.com/citdeveloper/cit/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; compose injects the real values
	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// The same DDL ships in init.sql for the compose-mounted init path;
	// applying it here too is a no-op thanks to IF NOT EXISTS and covers
	// databases that were started without the mount.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.ApplySchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("apply schema: %v", err)
	}
	cancel()

	rdb := config.NewRedisClient() // nil disables caching and rate limiting
	if rdb == nil {
		log.Println("redis unavailable, caching and rate limiting disabled")
	}

	ticketRepo := repository.NewTicketRepo(db)
	ticketHandler := handler.NewTicketHandler(ticketRepo, queue_publisher.PublishTicketEvent)
	healthHandler := handler.NewHealthHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	router.RegisterRoutes(e, cfg, ticketHandler, healthHandler, rdb)

	// Audit consumer; keeps retrying the broker in the background.
	go func() {
		if err := queue.StartTicketConsumer(); err != nil {
			log.Printf("ticket consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	go func() {
		if err := e.Start(addr); err != nil {
			log.Printf("server stopped: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM so in-flight requests finish
	// before the orchestrator replaces the container.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
