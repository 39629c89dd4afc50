package db_test

import (
	"errors"
	"testing"

	"dining-server/db"
	"dining-server/model"
)

// one degree of latitude, in meters, for the haversine radius in use
const metersPerLatDegree = 111194.92664455873

func latOffset(meters float64) float64 {
	return meters / metersPerLatDegree
}

func TestNearestStationsPersistsDistancesWriteOnce(t *testing.T) {
	gdb := openTestDB(t)

	queryLat, queryLon := 37.5000, 127.0300
	near := model.Station{Station: "near", Latitude: queryLat + latOffset(50), Longitude: queryLon, DistFromStation: model.DistanceNotComputed}
	far := model.Station{Station: "far", Latitude: queryLat + latOffset(2000), Longitude: queryLon, DistFromStation: model.DistanceNotComputed}
	mustCreate(t, gdb, &near)
	mustCreate(t, gdb, &far)

	stationDAO := db.NewStationDAO(gdb)
	results, err := stationDAO.NearestStations(queryLat, queryLon, 3)
	if err != nil {
		t.Fatalf("nearest stations: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 stations, got %d", len(results))
	}
	if results[0].Station.Station != "near" || results[1].Station.Station != "far" {
		t.Fatalf("expected [near, far], got [%s, %s]", results[0].Station.Station, results[1].Station.Station)
	}

	// the computed distances landed in the cache column
	var stored model.Station
	if err = gdb.First(&stored, near.StationID).Error; err != nil {
		t.Fatalf("reload station: %v", err)
	}
	if stored.DistFromStation < 0 {
		t.Fatalf("expected persisted distance, got %f", stored.DistFromStation)
	}
	firstFill := stored.DistFromStation

	// a query from elsewhere must not overwrite the cached value
	_, err = stationDAO.NearestStations(queryLat+latOffset(500), queryLon, 3)
	if err != nil {
		t.Fatalf("second query: %v", err)
	}
	if err = gdb.First(&stored, near.StationID).Error; err != nil {
		t.Fatalf("reload station: %v", err)
	}
	if stored.DistFromStation != firstFill {
		t.Errorf("cached distance overwritten: %f -> %f", firstFill, stored.DistFromStation)
	}
}

func TestCreateStationValidation(t *testing.T) {
	gdb := openTestDB(t)

	stationDAO := db.NewStationDAO(gdb)
	err := stationDAO.CreateStation(&model.Station{Latitude: 37.5, Longitude: 127.0})
	if !errors.Is(err, model.ErrValidation) {
		t.Errorf("expected ErrValidation for missing name, got %v", err)
	}

	err = stationDAO.CreateStation(&model.Station{Station: "limbo"})
	if !errors.Is(err, model.ErrValidation) {
		t.Errorf("expected ErrValidation for zero coordinates, got %v", err)
	}
}

func TestCreateStationStartsWithSentinel(t *testing.T) {
	gdb := openTestDB(t)

	station := model.Station{Station: "gangnam", Latitude: 37.4979, Longitude: 127.0276, DistFromStation: 42}
	stationDAO := db.NewStationDAO(gdb)
	if err := stationDAO.CreateStation(&station); err != nil {
		t.Fatalf("create station: %v", err)
	}
	if station.DistFromStation != model.DistanceNotComputed {
		t.Errorf("expected sentinel on creation, got %f", station.DistFromStation)
	}
}

func TestGetStationByNameNotFound(t *testing.T) {
	gdb := openTestDB(t)

	stationDAO := db.NewStationDAO(gdb)
	_, err := stationDAO.GetStationByName("nowhere")
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
