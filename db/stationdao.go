package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"dining-server/internals"
	"dining-server/model"
)

type StationDAO struct {
	db *gorm.DB
}

func NewStationDAO(db *gorm.DB) *StationDAO {
	return &StationDAO{db: db}
}

func (stationDAO *StationDAO) CreateStation(station *model.Station) error {
	// takes a pointer, in order to update the param struct

	if station.Station == "" {
		return fmt.Errorf("missing station name: %w", model.ErrValidation)
	}
	// (0, 0) stands for coordinates not provided, same rule as restaurants
	if station.Latitude == 0 && station.Longitude == 0 {
		return fmt.Errorf("missing coordinates: %w", model.ErrValidation)
	}

	station.DistFromStation = model.DistanceNotComputed
	result := stationDAO.db.Create(station)
	return result.Error
}

func (stationDAO *StationDAO) GetStations() ([]model.Station, error) {
	var stations []model.Station
	// id order so the stable nearest-station sort breaks ties by insertion order
	result := stationDAO.db.Order("id_station asc").Find(&stations)
	return stations, result.Error
}

func (stationDAO *StationDAO) GetStationByName(name string) (model.Station, error) {
	var station model.Station
	result := stationDAO.db.Where("station = ?", name).First(&station)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Station{}, fmt.Errorf("station %q: %w", name, model.ErrNotFound)
		}
		return model.Station{}, result.Error
	}
	return station, nil
}

// NearestStations runs the nearest-k selection over all known stations and
// persists each returned distance into the station's cache field before
// returning. The persistence is write-once, an already computed cache value
// is left alone.
func (stationDAO *StationDAO) NearestStations(latitude, longitude float64, limit int) ([]model.StationDistance, error) {
	stations, err := stationDAO.GetStations()
	if err != nil {
		return nil, err
	}

	stationDistances := internals.NearestStations(stations, latitude, longitude, limit)

	reconciler := NewReconciler(stationDAO.db)
	for i := range stationDistances {
		err = reconciler.ReconcileStationDistance(&stationDistances[i].Station, stationDistances[i].Distance)
		if err != nil {
			return nil, err
		}
	}

	return stationDistances, nil
}
