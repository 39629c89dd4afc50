package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"dining-server/db"
	"dining-server/internals"
	"dining-server/model"
)

func HandleStations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getStations(w, r)
	case "POST":
		createStation(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func getStations(w http.ResponseWriter, r *http.Request) {
	stationDAO := db.NewStationDAO(db.GetDB())
	stations, err := stationDAO.GetStations()
	if err != nil {
		writeError(w, "Error getting stations", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(stations)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func createStation(w http.ResponseWriter, r *http.Request) {
	// decode json data
	var station model.Station
	err := json.NewDecoder(r.Body).Decode(&station)
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

	stationDAO := db.NewStationDAO(db.GetDB())
	err = stationDAO.CreateStation(&station)
	if err != nil {
		writeError(w, "Error creating station", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(station)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func HandleNearestStations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getNearestStations(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func getNearestStations(w http.ResponseWriter, r *http.Request) {
	// both coordinates are required, no lookup happens without them
	latitudeStr := r.URL.Query().Get("latitude")
	longitudeStr := r.URL.Query().Get("longitude")
	if latitudeStr == "" || longitudeStr == "" {
		writeError(w, "Missing latitude or longitude", model.ErrInvalidInput)
		return
	}
	latitude, err := strconv.ParseFloat(latitudeStr, 64)
	if err != nil {
		writeError(w, "Wrong latitude format", fmt.Errorf("latitude %q: %w", latitudeStr, model.ErrInvalidInput))
		return
	}
	longitude, err := strconv.ParseFloat(longitudeStr, 64)
	if err != nil {
		writeError(w, "Wrong longitude format", fmt.Errorf("longitude %q: %w", longitudeStr, model.ErrInvalidInput))
		return
	}

	limit := internals.DefaultNearestStationsNumber
	if returnNumStr := r.URL.Query().Get("returnNum"); returnNumStr != "" {
		limit, err = strconv.Atoi(returnNumStr)
		if err != nil || limit <= 0 {
			writeError(w, "Wrong returnNum format", fmt.Errorf("returnNum %q: %w", returnNumStr, model.ErrInvalidInput))
			return
		}
	}

	ctx := r.Context()

	// serve from the cache when possible
	stationDistances, cached := db.GetCachedNearestStations(ctx, latitude, longitude, limit)
	if !cached {
		stationDAO := db.NewStationDAO(db.GetDB())
		stationDistances, err = stationDAO.NearestStations(latitude, longitude, limit)
		if err != nil {
			writeError(w, "Error getting nearest stations", err)
			return
		}
		db.SetCachedNearestStations(ctx, latitude, longitude, limit, stationDistances)
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(stationDistances)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}
