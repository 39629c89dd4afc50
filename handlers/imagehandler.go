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

func HandleImages(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getImages(w, r)
	case "POST":
		createImage(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func getImages(w http.ResponseWriter, r *http.Request) {
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
	reviewID := 0
	if reviewIDStr := r.URL.Query().Get("review"); reviewIDStr != "" {
		var err error
		reviewID, err = strconv.Atoi(reviewIDStr)
		if err != nil {
			log.Println("Wrong review id")
			http.Error(w, "Wrong review id", http.StatusBadRequest)
			return
		}
	}

	imageDAO := db.NewImageDAO(db.GetDB())
	images, err := imageDAO.GetImages(restaurantID, reviewID)
	if err != nil {
		writeError(w, "Error getting images", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(images)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func createImage(w http.ResponseWriter, r *http.Request) {
	// decode json data
	var image model.Image
	err := json.NewDecoder(r.Body).Decode(&image)
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

	imageDAO := db.NewImageDAO(db.GetDB())
	err = imageDAO.CreateImage(&image)
	if err != nil {
		writeError(w, "Error creating image", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(image)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func HandleModifyImages(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "DELETE":
		deleteImage(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func deleteImage(w http.ResponseWriter, r *http.Request) {
	// extract image id from URI
	parts := strings.Split(r.URL.Path, "/")
	if len(parts) < 3 || parts[2] == "" {
		log.Println("Invalid path")
		http.Error(w, "Image ID not provided", http.StatusBadRequest)
		return
	}
	imageID, err := strconv.Atoi(parts[2])
	if err != nil || imageID < 0 {
		log.Println("Invalid image id")
		http.Error(w, "Invalid image ID", http.StatusBadRequest)
		return
	}

	imageDAO := db.NewImageDAO(db.GetDB())
	err = imageDAO.DeleteImage(imageID)
	if err != nil {
		writeError(w, "Error deleting image", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
