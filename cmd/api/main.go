package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campus-clinic/health-records-service/internal/auth"
	"github.com/campus-clinic/health-records-service/internal/db"
	internalhttp "github.com/campus-clinic/health-records-service/internal/http"
	"github.com/campus-clinic/health-records-service/internal/messaging"
	"github.com/campus-clinic/health-records-service/internal/telemetry"
)

func main() {
	log.Println("health-records-service starting")

	ctx := context.Background()

	// Telemetry is best-effort: the service still runs without a collector
	provider, err := telemetry.InitProvider(ctx, telemetry.LoadConfig())
	if err != nil {
		log.Printf("Warning: telemetry disabled: %v", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := provider.Shutdown(shutdownCtx); err != nil {
				log.Printf("Warning: telemetry shutdown: %v", err)
			}
		}()
	}

	var metrics *telemetry.Metrics
	if provider != nil {
		metrics, err = telemetry.InitMetrics()
		if err != nil {
			log.Printf("Warning: metrics disabled: %v", err)
		}
	}

	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatalf("Failed to ensure database schema: %v", err)
	}

	var publisher messaging.PublisherInterface
	rmq, err := messaging.NewPublisher()
	if err != nil {
		log.Printf("Warning: event publishing disabled: %v", err)
	} else {
		defer rmq.Close()
		publisher = rmq
	}

	authCfg, err := auth.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load auth config: %v", err)
	}
	verifier := auth.NewVerifier(authCfg)

	permsPath := os.Getenv("PERMISSIONS_FILE")
	if permsPath == "" {
		permsPath = "config/permissions.yml"
	}
	perms, err := auth.LoadPermissions(permsPath)
	if err != nil {
		log.Fatalf("Failed to load permissions from %s: %v", permsPath, err)
	}

	router := internalhttp.SetupRouter(database, verifier, perms, publisher, metrics)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      internalhttp.CORSMiddleware(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("✓ Listening on :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Warning: server shutdown: %v", err)
	}
	log.Println("✓ Shutdown complete")
}
