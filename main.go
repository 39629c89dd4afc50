package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"dining-server/db"
)

func main() {
	// retrieve execution mode
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	testMode := os.Getenv("TEST_MODE")

	// get port from flag
	port := flag.String("port", "80", "Port on which the server listens")
	flag.Parse()

	// init db
	database, err := db.InitDB(testMode)
	if err != nil || database == nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer func() {
		sqlDB, err := database.DB()
		if err != nil {
			log.Println("Failed to get DB from gorm: ", err)
			return
		}
		err = sqlDB.Close()
		if err != nil {
			return
		}
	}()

	// init optional redis cache
	if db.InitRedis() == nil {
		log.Println("Redis not configured, nearest-station cache disabled")
	}

	// setup routes
	SetupRoutes(*port)
}
