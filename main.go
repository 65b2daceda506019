package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/outfitgenius/wardrobe-api/api"
	"github.com/outfitgenius/wardrobe-api/config"
	"github.com/outfitgenius/wardrobe-api/imagegen"
	"github.com/outfitgenius/wardrobe-api/storage"
	"github.com/outfitgenius/wardrobe-api/utils"
	"github.com/outfitgenius/wardrobe-api/vision"
)

func main() {
	config.LoadConfig()

	// Initialize MongoDB
	store, err := storage.NewMongoStore(config.MongoURI, config.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// Optional S3 archive for generated outfit images
	var archive storage.Archiver
	if config.AWSRegion != "" && config.AWSBucketName != "" {
		s3Archive, err := storage.NewS3Archive(context.Background(), config.AWSRegion, config.AWSBucketName)
		if err != nil {
			log.Printf("S3 archive disabled: %v", err)
		} else {
			archive = s3Archive
		}
	}

	handlers := api.New(
		store,
		vision.NewStubAnalyzer(),
		imagegen.NewGeminiGenerator(config.GeminiAPIKey, config.GeminiModel),
		archive,
	)

	router := mux.NewRouter()
	handlers.RegisterRoutes(router.PathPrefix("/api").Subrouter())

	// CORS Middleware
	allowAll := false
	allowedOrigins := make(map[string]bool)
	for _, origin := range config.CORSOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowedOrigins[origin] = true
	}
	corsMiddleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if allowAll {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else if allowedOrigins[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}

	srv := &http.Server{
		Addr:    ":" + config.Port,
		Handler: corsMiddleware(utils.LatencyMiddleware(router)),
	}

	go func() {
		fmt.Printf("Server starting on port %s...\n", config.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Disconnect the store on SIGINT/SIGTERM after draining requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if err := store.Close(ctx); err != nil {
		log.Printf("MongoDB disconnect: %v", err)
	}
}
