package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"dining-server/db"
	"dining-server/model"
)

func HandleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		createUser(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func createUser(w http.ResponseWriter, r *http.Request) {
	// decode json data
	var user model.User
	err := json.NewDecoder(r.Body).Decode(&user)
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

	userDAO := db.NewUserDAO(db.GetDB())
	err = userDAO.AddUser(&user)
	if err != nil {
		writeError(w, "Error creating user", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(user)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func HandleModifyUser(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getUser(w, r)
	case "PUT":
		updateUser(w, r)
	case "DELETE":
		deleteUser(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

// uidFromPath extracts the uid from /users/{uid}.
func uidFromPath(r *http.Request) (string, bool) {
	parts := strings.Split(r.URL.Path, "/")
	if len(parts) < 3 || parts[2] == "" {
		return "", false
	}
	return parts[2], true
}

func getUser(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromPath(r)
	if !ok {
		log.Println("Invalid path")
		http.Error(w, "User ID not provided", http.StatusBadRequest)
		return
	}

	// counters and score are recomputed on read
	userDAO := db.NewUserDAO(db.GetDB())
	user, err := userDAO.GetUserByUID(uid)
	if err != nil {
		writeError(w, "Error getting user", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(user)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func updateUser(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromPath(r)
	if !ok {
		log.Println("Invalid path")
		http.Error(w, "User ID not provided", http.StatusBadRequest)
		return
	}

	// get the user from the body
	var user model.User
	err := json.NewDecoder(r.Body).Decode(&user)
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
	user.UID = uid

	userDAO := db.NewUserDAO(db.GetDB())
	err = userDAO.UpdateUser(user)
	if err != nil {
		writeError(w, "Error updating user", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(user)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func deleteUser(w http.ResponseWriter, r *http.Request) {
	uid, ok := uidFromPath(r)
	if !ok {
		log.Println("Invalid path")
		http.Error(w, "User ID not provided", http.StatusBadRequest)
		return
	}

	userDAO := db.NewUserDAO(db.GetDB())
	err := userDAO.DeleteUser(uid)
	if err != nil {
		writeError(w, "Error deleting user", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
