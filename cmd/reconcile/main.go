package main

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"dining-server/db"
	"dining-server/model"
)

// Batch reconciliation over the whole restaurant table. Meant to run from
// cron as a correctness backstop for the in-request counter increments.
// Every pass is idempotent and order-independent, re-running is always safe.
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	testMode := os.Getenv("TEST_MODE")

	database, err := db.InitDB(testMode)
	if err != nil || database == nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer db.CloseDBConnection()

	start := time.Now()

	var restaurants []model.Restaurant
	result := database.Find(&restaurants)
	if result.Error != nil {
		log.Fatalf("Error loading restaurants: %v", result.Error)
	}

	reconciler := db.NewReconciler(database)
	reconciled := 0
	for i := range restaurants {
		err = reconciler.ReconcileCounters(&restaurants[i], db.ReconcileBoth)
		if err != nil {
			log.Fatalf("Error reconciling counters for restaurant %d: %v", restaurants[i].RestaurantID, err)
		}

		err = reconciler.ReconcileDistance(&restaurants[i])
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			log.Fatalf("Error reconciling distance for restaurant %d: %v", restaurants[i].RestaurantID, err)
		}

		reconciled++
	}

	log.Printf("Reconciled %d restaurants in %v", reconciled, time.Since(start))
}
