package db

import (
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"dining-server/internals"
	"dining-server/model"
)

// ordering keys accepted by GetRestaurants
const (
	OrderByLikeNum         = "likeNum"
	OrderByReviewNum       = "reviewNum"
	OrderBySearchNum       = "searchNum"
	OrderByDistFromStation = "distFromStation"
)

type RestaurantDAO struct {
	db *gorm.DB
}

func NewRestaurantDAO(db *gorm.DB) *RestaurantDAO {
	return &RestaurantDAO{db: db}
}

// GetRestaurants returns the filtered, ordered restaurant view.
// The category/station filter is applied only when both values are present.
// Counters and lazy distances are reconciled over the filtered set before
// sorting, so the returned ordering reflects the true ledger state.
// Ties on the ordering key are broken by id descending, most recently
// created first. A limit <= 0 means no limit.
func (restaurantDAO *RestaurantDAO) GetRestaurants(foodCategory, station, ordering string, limit, offset int) ([]model.Restaurant, error) {
	if ordering == "" {
		ordering = OrderByLikeNum
	}
	if ordering != OrderByLikeNum && ordering != OrderByReviewNum &&
		ordering != OrderBySearchNum && ordering != OrderByDistFromStation {
		return nil, fmt.Errorf("unknown ordering %q: %w", ordering, model.ErrValidation)
	}

	// get restaurants, filtered when both parameters present
	var restaurants []model.Restaurant
	query := restaurantDAO.db
	if foodCategory != "" && station != "" {
		query = query.Where("food_category = ? AND station = ?", foodCategory, station)
	}
	result := query.Find(&restaurants)
	if result.Error != nil {
		return nil, result.Error
	}

	// reconcile counters and lazy distances
	reconciler := NewReconciler(restaurantDAO.db)
	for i := range restaurants {
		err := reconciler.ReconcileCounters(&restaurants[i], ReconcileBoth)
		if err != nil {
			return nil, err
		}
		err = reconciler.ReconcileDistance(&restaurants[i])
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			// a restaurant referencing an unknown station keeps the sentinel
			return nil, err
		}
	}

	sortRestaurants(restaurants, ordering)

	// pagination window
	if offset > 0 {
		if offset >= len(restaurants) {
			return []model.Restaurant{}, nil
		}
		restaurants = restaurants[offset:]
	}
	if limit > 0 && len(restaurants) > limit {
		restaurants = restaurants[:limit]
	}

	return restaurants, nil
}

// distFromStation sorts ascending (nearest first), every other key sorts
// descending (highest first); id descending breaks ties either way.
func sortRestaurants(restaurants []model.Restaurant, ordering string) {
	sort.Slice(restaurants, func(i, j int) bool {
		a, b := restaurants[i], restaurants[j]

		switch ordering {
		case OrderByDistFromStation:
			if a.DistFromStation != b.DistFromStation {
				return a.DistFromStation < b.DistFromStation
			}
		case OrderByReviewNum:
			if a.ReviewNum != b.ReviewNum {
				return a.ReviewNum > b.ReviewNum
			}
		case OrderBySearchNum:
			if a.SearchNum != b.SearchNum {
				return a.SearchNum > b.SearchNum
			}
		default:
			if a.LikeNum != b.LikeNum {
				return a.LikeNum > b.LikeNum
			}
		}

		return a.RestaurantID > b.RestaurantID
	})
}

// GetRestaurantById registers the detail view by incrementing searchNum,
// then returns the fresh record. The increment runs as a SQL expression so
// concurrent retrievals each count.
func (restaurantDAO *RestaurantDAO) GetRestaurantById(restaurantID int) (model.Restaurant, error) {
	result := restaurantDAO.db.Model(&model.Restaurant{}).
		Where("id_restaurant = ?", restaurantID).
		UpdateColumn("search_num", gorm.Expr("search_num + 1"))
	if result.Error != nil {
		return model.Restaurant{}, result.Error
	}
	if result.RowsAffected == 0 {
		return model.Restaurant{}, fmt.Errorf("restaurant %d: %w", restaurantID, model.ErrNotFound)
	}

	var restaurant model.Restaurant
	result = restaurantDAO.db.First(&restaurant, restaurantID)
	if result.Error != nil {
		return model.Restaurant{}, result.Error
	}

	return restaurant, nil
}

// CreateRestaurant validates the required fields and computes the distance
// from the named station eagerly, before the row is persisted. A restaurant
// registered against a station not yet seeded keeps the sentinel, the
// reconciler fills it once the station appears.
func (restaurantDAO *RestaurantDAO) CreateRestaurant(restaurant *model.Restaurant) error {
	// takes a pointer, in order to update the param struct

	if restaurant.RestaurantName == "" || restaurant.FoodCategory == "" || restaurant.Station == "" {
		return fmt.Errorf("missing required restaurant fields: %w", model.ErrValidation)
	}
	// (0, 0) stands for coordinates not provided, the service area is
	// nowhere near the null island point
	if restaurant.Latitude == 0 && restaurant.Longitude == 0 {
		return fmt.Errorf("missing coordinates: %w", model.ErrValidation)
	}

	// eager distance computation
	restaurant.DistFromStation = model.DistanceNotComputed
	var station model.Station
	result := restaurantDAO.db.Where("station = ?", restaurant.Station).First(&station)
	if result.Error == nil {
		restaurant.DistFromStation = internals.Distance(
			restaurant.Latitude, restaurant.Longitude, station.Latitude, station.Longitude)
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	result = restaurantDAO.db.Create(restaurant)
	return result.Error
}

func (restaurantDAO *RestaurantDAO) UpdateRestaurant(restaurant model.Restaurant) error {
	result := restaurantDAO.db.Save(&restaurant)
	return result.Error
}

func (restaurantDAO *RestaurantDAO) DeleteRestaurant(restaurantID int) error {
	result := restaurantDAO.db.Delete(&model.Restaurant{}, restaurantID)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("restaurant %d: %w", restaurantID, model.ErrNotFound)
	}

	return nil
}
