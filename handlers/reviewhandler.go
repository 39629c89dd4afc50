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

func HandleReviews(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getReviews(w, r)
	case "POST":
		addReview(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func getReviews(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("uid")

	restaurantID := 0
	if restaurantIDStr := r.URL.Query().Get("restaurant"); restaurantIDStr != "" {
		var err error
		restaurantID, err = strconv.Atoi(restaurantIDStr)
		if err != nil {
			log.Println("Wrong restaurant id")
			http.Error(w, "Wrong restaurant id", http.StatusBadRequest)
			return
		}
	}

	reviewDAO := db.NewReviewDAO(db.GetDB())
	reviews, err := reviewDAO.GetReviews(uid, restaurantID)
	if err != nil {
		writeError(w, "Error getting reviews", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(reviews)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func addReview(w http.ResponseWriter, r *http.Request) {
	// decode json data
	var review model.Review
	err := json.NewDecoder(r.Body).Decode(&review)
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

	// reset time zone
	review.CreatedAt = review.CreatedAt.UTC()

	reviewDAO := db.NewReviewDAO(db.GetDB())
	err = reviewDAO.AddReview(&review)
	if err != nil {
		writeError(w, "Error creating review", err)
		return
	}

	// send review in response
	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(review)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func HandleModifyReviews(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "DELETE":
		removeReview(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func removeReview(w http.ResponseWriter, r *http.Request) {
	// extract review id from URI
	parts := strings.Split(r.URL.Path, "/")
	if len(parts) < 3 || parts[2] == "" {
		log.Println("Invalid path")
		http.Error(w, "Review ID not provided", http.StatusBadRequest)
		return
	}
	reviewID, err := strconv.Atoi(parts[2])
	if err != nil || reviewID < 0 {
		log.Println("Invalid review id")
		http.Error(w, "Invalid review ID", http.StatusBadRequest)
		return
	}

	reviewDAO := db.NewReviewDAO(db.GetDB())
	err = reviewDAO.RemoveReview(reviewID)
	if err != nil {
		writeError(w, "Error removing review", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
