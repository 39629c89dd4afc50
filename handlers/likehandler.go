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

func HandleLikes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getLikes(w, r)
	case "POST":
		addLike(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func getLikes(w http.ResponseWriter, r *http.Request) {
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

	likeDAO := db.NewLikeDAO(db.GetDB())
	likes, err := likeDAO.GetLikes(uid, restaurantID)
	if err != nil {
		writeError(w, "Error getting likes", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(likes)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func addLike(w http.ResponseWriter, r *http.Request) {
	// decode json data
	var like model.Like
	err := json.NewDecoder(r.Body).Decode(&like)
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

	likeDAO := db.NewLikeDAO(db.GetDB())
	err = likeDAO.AddLike(&like)
	if err != nil {
		writeError(w, "Error creating like", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(like)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func HandleModifyLikes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "DELETE":
		removeLike(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func removeLike(w http.ResponseWriter, r *http.Request) {
	// extract like id from URI
	parts := strings.Split(r.URL.Path, "/")
	if len(parts) < 3 || parts[2] == "" {
		log.Println("Invalid path")
		http.Error(w, "Like ID not provided", http.StatusBadRequest)
		return
	}
	likeID, err := strconv.Atoi(parts[2])
	if err != nil || likeID < 0 {
		log.Println("Invalid like id")
		http.Error(w, "Invalid like ID", http.StatusBadRequest)
		return
	}

	likeDAO := db.NewLikeDAO(db.GetDB())
	err = likeDAO.RemoveLike(likeID)
	if err != nil {
		writeError(w, "Error removing like", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
