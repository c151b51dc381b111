package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/damon-houk/exchange-rate-converter/internal/application/service"
	"github.com/damon-houk/exchange-rate-converter/internal/infrastructure/db"
	"github.com/damon-houk/exchange-rate-converter/internal/infrastructure/file"
	"github.com/damon-houk/exchange-rate-converter/internal/infrastructure/handler"
	"github.com/damon-houk/exchange-rate-converter/internal/infrastructure/logger"
	"github.com/damon-houk/exchange-rate-converter/internal/infrastructure/middleware"
	"github.com/dgraph-io/badger/v3"
	"github.com/gorilla/mux"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Println("Usage: server <rates.json> [listen-addr]")
		return
	}

	docPath := os.Args[1]
	addr := ":8080"
	if len(os.Args) == 3 {
		addr = os.Args[2]
	}

	log := logger.NewJSONLogger(os.Stdout, logger.InfoLevel)

	// Setup BadgerDB
	dbPath := filepath.Join(".", "data")
	if err := os.MkdirAll(dbPath, 0755); err != nil {
		log.Fatal("Failed to create database directory", map[string]interface{}{
			"path":  dbPath,
			"error": err.Error(),
		})
	}

	badgerOpts := badger.DefaultOptions(dbPath)
	badgerOpts.Logger = nil // Disable Badger's default logger

	badgerDB, err := badger.Open(badgerOpts)
	if err != nil {
		log.Fatal("Failed to open database", map[string]interface{}{
			"path":  dbPath,
			"error": err.Error(),
		})
	}

	defer func() {
		if err := badgerDB.Close(); err != nil {
			log.Error("Error closing BadgerDB", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	// Initialize repository and service
	rateRepo := db.NewBadgerExchangeRateRepository(badgerDB)
	rateService := service.NewRateService(rateRepo, nil, log)

	// Load the converted document into the store
	doc, err := file.ReadDocument(docPath)
	if err != nil {
		log.Fatal("Failed to load rate document", map[string]interface{}{
			"path":  docPath,
			"error": err.Error(),
		})
	}

	count, err := rateService.ImportDocument(context.Background(), doc)
	if err != nil {
		log.Fatal("Failed to import rate document", map[string]interface{}{
			"path":  docPath,
			"error": err.Error(),
		})
	}

	log.Info("Rates imported", map[string]interface{}{
		"path":    docPath,
		"entries": count,
	})

	// Setup router
	rateHandler := handler.NewRateHandler(rateService, log)

	router := mux.NewRouter()
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.LoggingMiddleware(log))
	rateHandler.RegisterRoutes(router)

	log.Info("Server listening", map[string]interface{}{"addr": addr})
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server stopped", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
