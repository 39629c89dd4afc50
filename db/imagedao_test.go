package db_test

import (
	"errors"
	"testing"

	"dining-server/db"
	"dining-server/model"
)

func TestDeleteImageClearsRepresentative(t *testing.T) {
	gdb := openTestDB(t)

	restaurant := seedRestaurant(t, gdb, "Grill House", "grill", "gangnam", 37.4981, 127.0280, 0)
	err := gdb.Model(&model.Restaurant{}).Where("id_restaurant = ?", restaurant.RestaurantID).
		UpdateColumn("representative_image", "http://host/media/a.jpg").Error
	if err != nil {
		t.Fatalf("set representative image: %v", err)
	}

	image := model.Image{
		URL:          "http://host/media/a.jpg",
		Category:     model.ImageCategoryRestaurant,
		RestaurantID: restaurant.RestaurantID,
		UID:          "u1",
	}
	mustCreate(t, gdb, &image)

	imageDAO := db.NewImageDAO(gdb)
	if err = imageDAO.DeleteImage(image.ImageID); err != nil {
		t.Fatalf("delete image: %v", err)
	}

	var stored model.Restaurant
	if err = gdb.First(&stored, restaurant.RestaurantID).Error; err != nil {
		t.Fatalf("reload restaurant: %v", err)
	}
	if stored.RepresentativeImage != "" {
		t.Errorf("expected cleared representative image, got %q", stored.RepresentativeImage)
	}
}

func TestDeleteImageKeepsUnrelatedRepresentative(t *testing.T) {
	gdb := openTestDB(t)

	restaurant := seedRestaurant(t, gdb, "Grill House", "grill", "gangnam", 37.4981, 127.0280, 0)
	err := gdb.Model(&model.Restaurant{}).Where("id_restaurant = ?", restaurant.RestaurantID).
		UpdateColumn("representative_image", "http://host/media/keep.jpg").Error
	if err != nil {
		t.Fatalf("set representative image: %v", err)
	}

	image := model.Image{
		URL:          "http://host/media/other.jpg",
		Category:     model.ImageCategoryFood,
		RestaurantID: restaurant.RestaurantID,
		UID:          "u1",
	}
	mustCreate(t, gdb, &image)

	imageDAO := db.NewImageDAO(gdb)
	if err = imageDAO.DeleteImage(image.ImageID); err != nil {
		t.Fatalf("delete image: %v", err)
	}

	var stored model.Restaurant
	if err = gdb.First(&stored, restaurant.RestaurantID).Error; err != nil {
		t.Fatalf("reload restaurant: %v", err)
	}
	if stored.RepresentativeImage != "http://host/media/keep.jpg" {
		t.Errorf("representative image changed unexpectedly: %q", stored.RepresentativeImage)
	}
}

func TestDeleteImageNotFound(t *testing.T) {
	gdb := openTestDB(t)

	imageDAO := db.NewImageDAO(gdb)
	err := imageDAO.DeleteImage(404)
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateImageRequiresFields(t *testing.T) {
	gdb := openTestDB(t)

	restaurant := seedRestaurant(t, gdb, "Grill House", "grill", "gangnam", 37.4981, 127.0280, 0)

	imageDAO := db.NewImageDAO(gdb)
	err := imageDAO.CreateImage(&model.Image{RestaurantID: restaurant.RestaurantID, UID: "u1"})
	if !errors.Is(err, model.ErrValidation) {
		t.Errorf("expected ErrValidation for missing url, got %v", err)
	}
}

func TestCreateImageUnknownRestaurant(t *testing.T) {
	gdb := openTestDB(t)

	imageDAO := db.NewImageDAO(gdb)
	err := imageDAO.CreateImage(&model.Image{URL: "http://host/media/a.jpg", UID: "u1", RestaurantID: 404})
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
