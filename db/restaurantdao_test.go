package db_test

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"

	"dining-server/db"
	"dining-server/model"
)

func seedRestaurant(t *testing.T, gdb *gorm.DB, name, category, station string, lat, lon float64, likes int) model.Restaurant {
	t.Helper()

	restaurant := model.Restaurant{
		RestaurantName:  name,
		FoodCategory:    category,
		Station:         station,
		Latitude:        lat,
		Longitude:       lon,
		DistFromStation: model.DistanceNotComputed,
	}
	mustCreate(t, gdb, &restaurant)

	for i := 0; i < likes; i++ {
		mustCreate(t, gdb, &model.Like{UID: fmt.Sprintf("u%d", i), RestaurantID: restaurant.RestaurantID})
	}

	return restaurant
}

func TestGetRestaurantsTieBrokenByIdDescending(t *testing.T) {
	gdb := openTestDB(t)

	mustCreate(t, gdb, &model.Station{Station: "gangnam", Latitude: 37.4979, Longitude: 127.0276, DistFromStation: model.DistanceNotComputed})

	a := seedRestaurant(t, gdb, "A", "grill", "gangnam", 37.4981, 127.0280, 5)
	b := seedRestaurant(t, gdb, "B", "grill", "gangnam", 37.4985, 127.0290, 5)
	c := seedRestaurant(t, gdb, "C", "grill", "gangnam", 37.4990, 127.0300, 3)

	restaurantDAO := db.NewRestaurantDAO(gdb)
	restaurants, err := restaurantDAO.GetRestaurants("grill", "gangnam", db.OrderByLikeNum, 0, 0)
	if err != nil {
		t.Fatalf("get restaurants: %v", err)
	}

	if len(restaurants) != 3 {
		t.Fatalf("expected 3 restaurants, got %d", len(restaurants))
	}
	// equal like counts, higher id first
	expected := []int{b.RestaurantID, a.RestaurantID, c.RestaurantID}
	for i, restaurant := range restaurants {
		if restaurant.RestaurantID != expected[i] {
			t.Errorf("position %d: expected id %d, got %d (%s)", i, expected[i], restaurant.RestaurantID, restaurant.RestaurantName)
		}
	}
}

func TestGetRestaurantsReconcilesBeforeSorting(t *testing.T) {
	gdb := openTestDB(t)

	mustCreate(t, gdb, &model.Station{Station: "gangnam", Latitude: 37.4979, Longitude: 127.0276, DistFromStation: model.DistanceNotComputed})

	// stored counter is stale, the ledger has the truth
	restaurant := seedRestaurant(t, gdb, "A", "grill", "gangnam", 37.4981, 127.0280, 4)
	err := gdb.Model(&model.Restaurant{}).Where("id_restaurant = ?", restaurant.RestaurantID).
		UpdateColumn("like_num", 99).Error
	if err != nil {
		t.Fatalf("set stale counter: %v", err)
	}

	restaurantDAO := db.NewRestaurantDAO(gdb)
	restaurants, err := restaurantDAO.GetRestaurants("grill", "gangnam", "", 0, 0)
	if err != nil {
		t.Fatalf("get restaurants: %v", err)
	}

	if len(restaurants) != 1 || restaurants[0].LikeNum != 4 {
		t.Fatalf("expected reconciled like count 4, got %+v", restaurants)
	}
	if restaurants[0].DistFromStation < 0 {
		t.Errorf("expected lazy distance fill, got %f", restaurants[0].DistFromStation)
	}
}

func TestGetRestaurantsPartialFilterIgnored(t *testing.T) {
	gdb := openTestDB(t)

	mustCreate(t, gdb, &model.Station{Station: "gangnam", Latitude: 37.4979, Longitude: 127.0276, DistFromStation: model.DistanceNotComputed})
	seedRestaurant(t, gdb, "A", "grill", "gangnam", 37.4981, 127.0280, 0)
	seedRestaurant(t, gdb, "B", "noodles", "gangnam", 37.4985, 127.0290, 0)

	// station missing, the category alone must not filter
	restaurantDAO := db.NewRestaurantDAO(gdb)
	restaurants, err := restaurantDAO.GetRestaurants("grill", "", "", 0, 0)
	if err != nil {
		t.Fatalf("get restaurants: %v", err)
	}
	if len(restaurants) != 2 {
		t.Errorf("expected unfiltered set of 2, got %d", len(restaurants))
	}
}

func TestGetRestaurantsOrderByDistanceAscending(t *testing.T) {
	gdb := openTestDB(t)

	mustCreate(t, gdb, &model.Station{Station: "gangnam", Latitude: 37.4979, Longitude: 127.0276, DistFromStation: model.DistanceNotComputed})

	far := seedRestaurant(t, gdb, "Far", "grill", "gangnam", 37.5100, 127.0400, 0)
	near := seedRestaurant(t, gdb, "Near", "grill", "gangnam", 37.4980, 127.0277, 0)

	restaurantDAO := db.NewRestaurantDAO(gdb)
	restaurants, err := restaurantDAO.GetRestaurants("grill", "gangnam", db.OrderByDistFromStation, 0, 0)
	if err != nil {
		t.Fatalf("get restaurants: %v", err)
	}

	if len(restaurants) != 2 {
		t.Fatalf("expected 2 restaurants, got %d", len(restaurants))
	}
	if restaurants[0].RestaurantID != near.RestaurantID || restaurants[1].RestaurantID != far.RestaurantID {
		t.Errorf("expected nearest first, got [%s, %s]", restaurants[0].RestaurantName, restaurants[1].RestaurantName)
	}
}

func TestGetRestaurantsUnknownOrdering(t *testing.T) {
	gdb := openTestDB(t)

	restaurantDAO := db.NewRestaurantDAO(gdb)
	_, err := restaurantDAO.GetRestaurants("", "", "stars", 0, 0)
	if !errors.Is(err, model.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestGetRestaurantByIdCountsSearches(t *testing.T) {
	gdb := openTestDB(t)

	restaurant := seedRestaurant(t, gdb, "A", "grill", "gangnam", 37.4981, 127.0280, 0)

	restaurantDAO := db.NewRestaurantDAO(gdb)
	first, err := restaurantDAO.GetRestaurantById(restaurant.RestaurantID)
	if err != nil {
		t.Fatalf("first retrieve: %v", err)
	}
	if first.SearchNum != 1 {
		t.Errorf("expected searchNum 1 after first retrieve, got %d", first.SearchNum)
	}

	second, err := restaurantDAO.GetRestaurantById(restaurant.RestaurantID)
	if err != nil {
		t.Fatalf("second retrieve: %v", err)
	}
	if second.SearchNum != 2 {
		t.Errorf("expected searchNum 2 after second retrieve, got %d", second.SearchNum)
	}
}

func TestGetRestaurantByIdNotFound(t *testing.T) {
	gdb := openTestDB(t)

	restaurantDAO := db.NewRestaurantDAO(gdb)
	_, err := restaurantDAO.GetRestaurantById(12345)
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateRestaurantRequiresFields(t *testing.T) {
	gdb := openTestDB(t)

	restaurantDAO := db.NewRestaurantDAO(gdb)
	err := restaurantDAO.CreateRestaurant(&model.Restaurant{
		FoodCategory: "grill",
		Station:      "gangnam",
		Latitude:     37.5,
		Longitude:    127.0,
	})
	if !errors.Is(err, model.ErrValidation) {
		t.Errorf("expected ErrValidation for missing name, got %v", err)
	}
}

func TestCreateRestaurantRequiresCoordinates(t *testing.T) {
	gdb := openTestDB(t)

	restaurantDAO := db.NewRestaurantDAO(gdb)
	err := restaurantDAO.CreateRestaurant(&model.Restaurant{
		RestaurantName: "Nowhere",
		FoodCategory:   "grill",
		Station:        "gangnam",
	})
	if !errors.Is(err, model.ErrValidation) {
		t.Errorf("expected ErrValidation for zero coordinates, got %v", err)
	}
}

func TestCreateRestaurantEagerDistance(t *testing.T) {
	gdb := openTestDB(t)

	mustCreate(t, gdb, &model.Station{Station: "gangnam", Latitude: 37.4979, Longitude: 127.0276, DistFromStation: model.DistanceNotComputed})

	restaurant := model.Restaurant{
		RestaurantName: "Grill House",
		FoodCategory:   "grill",
		Station:        "gangnam",
		Latitude:       37.4981,
		Longitude:      127.0280,
	}
	restaurantDAO := db.NewRestaurantDAO(gdb)
	err := restaurantDAO.CreateRestaurant(&restaurant)
	if err != nil {
		t.Fatalf("create restaurant: %v", err)
	}

	if restaurant.RestaurantID == 0 {
		t.Error("expected assigned id")
	}
	if restaurant.DistFromStation < 0 {
		t.Errorf("expected eager distance, got %f", restaurant.DistFromStation)
	}
}

func TestCreateRestaurantUnknownStationKeepsSentinel(t *testing.T) {
	gdb := openTestDB(t)

	restaurant := model.Restaurant{
		RestaurantName: "Pioneer",
		FoodCategory:   "fusion",
		Station:        "not-seeded-yet",
		Latitude:       37.5,
		Longitude:      127.0,
	}
	restaurantDAO := db.NewRestaurantDAO(gdb)
	err := restaurantDAO.CreateRestaurant(&restaurant)
	if err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	if restaurant.DistFromStation != model.DistanceNotComputed {
		t.Errorf("expected sentinel for unknown station, got %f", restaurant.DistFromStation)
	}
}
