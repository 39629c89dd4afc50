package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"dining-server/db"
	"dining-server/model"
)

func HandleRestaurants(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getRestaurants(w, r)
	case "POST":
		createRestaurant(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func getRestaurants(w http.ResponseWriter, r *http.Request) {
	foodCategory := r.URL.Query().Get("foodCategory")
	station := r.URL.Query().Get("station")
	ordering := r.URL.Query().Get("ordering")

	// optional pagination window
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			log.Println("Wrong limit format")
			http.Error(w, "Wrong limit format", http.StatusBadRequest)
			return
		}
	}
	offset := 0
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		var err error
		offset, err = strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			log.Println("Wrong offset format")
			http.Error(w, "Wrong offset format", http.StatusBadRequest)
			return
		}
	}

	restaurantDAO := db.NewRestaurantDAO(db.GetDB())
	restaurants, err := restaurantDAO.GetRestaurants(foodCategory, station, ordering, limit, offset)
	if err != nil {
		writeError(w, "Error getting restaurants", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(restaurants)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func createRestaurant(w http.ResponseWriter, r *http.Request) {
	// decode json data
	var restaurant model.Restaurant
	err := json.NewDecoder(r.Body).Decode(&restaurant)
	if err != nil {
		log.Println("Error decoding JSON: ", err)
		http.Error(w, "Invalid data format", http.StatusBadRequest)
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			log.Println("Error closing request body:", err)
		}
	}()

	restaurantDAO := db.NewRestaurantDAO(db.GetDB())
	err = restaurantDAO.CreateRestaurant(&restaurant)
	if err != nil {
		writeError(w, "Error creating restaurant", err)
		return
	}

	// send restaurant in response
	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(restaurant)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func HandleRestaurantDetail(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getRestaurantDetail(w, r)
	case "PUT":
		updateRestaurant(w, r)
	case "DELETE":
		deleteRestaurant(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

// restaurantIDFromPath extracts the numeric id from /restaurants/{id}.
func restaurantIDFromPath(r *http.Request) (int, bool) {
	parts := strings.Split(r.URL.Path, "/")
	if len(parts) < 3 || parts[2] == "" {
		return 0, false
	}
	restaurantID, err := strconv.Atoi(parts[2])
	if err != nil || restaurantID < 0 {
		return 0, false
	}
	return restaurantID, true
}

func getRestaurantDetail(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := restaurantIDFromPath(r)
	if !ok {
		log.Println("Invalid restaurant id")
		http.Error(w, "Restaurant ID not provided", http.StatusBadRequest)
		return
	}

	// the detail view counts as a search
	restaurantDAO := db.NewRestaurantDAO(db.GetDB())
	restaurant, err := restaurantDAO.GetRestaurantById(restaurantID)
	if err != nil {
		writeError(w, "Error getting restaurant", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(restaurant)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func updateRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := restaurantIDFromPath(r)
	if !ok {
		log.Println("Invalid restaurant id")
		http.Error(w, "Restaurant ID not provided", http.StatusBadRequest)
		return
	}

	// get the restaurant from the body
	var restaurant model.Restaurant
	err := json.NewDecoder(r.Body).Decode(&restaurant)
	if err != nil {
		log.Println("Error while decoding JSON: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			log.Println("Error closing request body:", err)
		}
	}()
	restaurant.RestaurantID = restaurantID

	restaurantDAO := db.NewRestaurantDAO(db.GetDB())
	err = restaurantDAO.UpdateRestaurant(restaurant)
	if err != nil {
		writeError(w, "Error updating restaurant", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(restaurant)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := restaurantIDFromPath(r)
	if !ok {
		log.Println("Invalid restaurant id")
		http.Error(w, "Restaurant ID not provided", http.StatusBadRequest)
		return
	}

	restaurantDAO := db.NewRestaurantDAO(db.GetDB())
	err := restaurantDAO.DeleteRestaurant(restaurantID)
	if err != nil {
		writeError(w, "Error deleting restaurant", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
