// Command server is the entry point for the photofeed backend server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"photofeed/internal/config"
	"photofeed/internal/observability"
	"photofeed/internal/seed"
	"photofeed/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real env vars take precedence.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:  "photofeed-api",
		Environment:  cfg.Env,
		Enabled:      cfg.TracingEnabled,
		Exporter:     cfg.TraceExporter,
		OTLPEndpoint: cfg.OTLPEndpoint,
	})
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Printf("Tracing shutdown error: %v", err)
		}
	}()

	// Create server with dependency injection
	srv := server.NewServer(cfg)

	// All state is in-memory and lost on exit, so a fresh process seeds the
	// demo dataset unless told otherwise.
	if cfg.SeedDemoData {
		if _, err := seed.Demo(context.Background(), srv.UserStore(), srv.PostStore()); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		if cfg.SeedFillerUsers > 0 {
			factory := seed.NewFactory(srv.UserStore(), srv.PostStore(), time.Now().UnixNano())
			if _, err := factory.Fill(context.Background(), cfg.SeedFillerUsers); err != nil {
				log.Fatalf("Failed to seed filler data: %v", err)
			}
		}
	}

	app := fiber.New(fiber.Config{
		AppName:   "Photofeed API",
		BodyLimit: 1 * 1024 * 1024,
	})

	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
