package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"dining-server/internals"
	"dining-server/model"
)

// which counters to reconcile
const (
	ReconcileLikes = iota
	ReconcileReviews
	ReconcileBoth
)

// Reconciler recomputes denormalized restaurant counters and cached
// distances from the authoritative rows. Every operation is idempotent and
// writes only when the stored value is stale, so the batch job can sweep
// the whole table repeatedly at no cost.
type Reconciler struct {
	db *gorm.DB
}

func NewReconciler(db *gorm.DB) *Reconciler {
	return &Reconciler{db: db}
}

// ReconcileCounters recounts the like and/or review rows of the restaurant
// and writes the counts back only if they differ from the stored values.
// The passed struct is updated in place.
func (reconciler *Reconciler) ReconcileCounters(restaurant *model.Restaurant, which int) error {
	if restaurant == nil {
		return errors.New("restaurant is nil")
	}

	if which == ReconcileLikes || which == ReconcileBoth {
		var likeCount int64
		result := reconciler.db.Model(&model.Like{}).Where("id_restaurant = ?", restaurant.RestaurantID).Count(&likeCount)
		if result.Error != nil {
			return result.Error
		}

		if restaurant.LikeNum != int(likeCount) {
			result = reconciler.db.Model(&model.Restaurant{}).
				Where("id_restaurant = ?", restaurant.RestaurantID).
				UpdateColumn("like_num", int(likeCount))
			if result.Error != nil {
				return result.Error
			}
			restaurant.LikeNum = int(likeCount)
		}
	}

	if which == ReconcileReviews || which == ReconcileBoth {
		var reviewCount int64
		result := reconciler.db.Model(&model.Review{}).Where("id_restaurant = ?", restaurant.RestaurantID).Count(&reviewCount)
		if result.Error != nil {
			return result.Error
		}

		if restaurant.ReviewNum != int(reviewCount) {
			result = reconciler.db.Model(&model.Restaurant{}).
				Where("id_restaurant = ?", restaurant.RestaurantID).
				UpdateColumn("review_num", int(reviewCount))
			if result.Error != nil {
				return result.Error
			}
			restaurant.ReviewNum = int(reviewCount)
		}
	}

	return nil
}

// ReconcileDistance fills the restaurant's cached distance from its station.
// The fill happens only while the sentinel is in place, a computed distance
// is never overwritten.
func (reconciler *Reconciler) ReconcileDistance(restaurant *model.Restaurant) error {
	if restaurant == nil {
		return errors.New("restaurant is nil")
	}
	if restaurant.DistFromStation != model.DistanceNotComputed {
		// already computed
		return nil
	}

	// get the reference station
	var station model.Station
	result := reconciler.db.Where("station = ?", restaurant.Station).First(&station)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("station %q: %w", restaurant.Station, model.ErrNotFound)
		}
		return result.Error
	}

	distance := internals.Distance(restaurant.Latitude, restaurant.Longitude, station.Latitude, station.Longitude)

	result = reconciler.db.Model(&model.Restaurant{}).
		Where("id_restaurant = ?", restaurant.RestaurantID).
		UpdateColumn("dist_from_station", distance)
	if result.Error != nil {
		return result.Error
	}
	restaurant.DistFromStation = distance

	return nil
}

// ReconcileStationDistance caches a computed query distance on the station
// record, with the same write-once sentinel semantics.
func (reconciler *Reconciler) ReconcileStationDistance(station *model.Station, distance float64) error {
	if station == nil {
		return errors.New("station is nil")
	}
	if station.DistFromStation != model.DistanceNotComputed {
		return nil
	}

	result := reconciler.db.Model(&model.Station{}).
		Where("id_station = ?", station.StationID).
		UpdateColumn("dist_from_station", distance)
	if result.Error != nil {
		return result.Error
	}
	station.DistFromStation = distance

	return nil
}
