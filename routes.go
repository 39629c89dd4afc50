package main

import (
	"dining-server/handlers"
	"log"
	"net/http"
)

func SetupServer(port string) *http.Server {
	mux := http.NewServeMux()

	// setup routes
	mux.HandleFunc("/restaurants", handlers.HandleRestaurants)
	mux.HandleFunc("/restaurants/", handlers.HandleRestaurantDetail)

	mux.HandleFunc("/likes", handlers.HandleLikes)
	mux.HandleFunc("/likes/", handlers.HandleModifyLikes)

	mux.HandleFunc("/reviews", handlers.HandleReviews)
	mux.HandleFunc("/reviews/", handlers.HandleModifyReviews)

	mux.HandleFunc("/images", handlers.HandleImages)
	mux.HandleFunc("/images/", handlers.HandleModifyImages)

	mux.HandleFunc("/stations/nearest", handlers.HandleNearestStations)
	mux.HandleFunc("/stations", handlers.HandleStations)

	mux.HandleFunc("/users", handlers.HandleUsers)
	mux.HandleFunc("/users/", handlers.HandleModifyUser)

	mux.HandleFunc("/resetTestDatabase", handlers.HandleResetTestDatabase)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	return server
}

func SetupRoutes(port string) {
	server := SetupServer(port)

	err := server.ListenAndServe()
	if err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
