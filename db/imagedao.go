package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"dining-server/model"
)

type ImageDAO struct {
	db *gorm.DB
}

func NewImageDAO(db *gorm.DB) *ImageDAO {
	return &ImageDAO{db: db}
}

func (imageDAO *ImageDAO) GetImageById(imageID int) (model.Image, error) {
	var image model.Image
	result := imageDAO.db.First(&image, imageID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Image{}, fmt.Errorf("image %d: %w", imageID, model.ErrNotFound)
		}
		return model.Image{}, result.Error
	}
	return image, nil
}

// GetImages filters by restaurant and/or review, both optional.
func (imageDAO *ImageDAO) GetImages(restaurantID, reviewID int) ([]model.Image, error) {
	var images []model.Image

	query := imageDAO.db
	if restaurantID != 0 {
		query = query.Where("id_restaurant = ?", restaurantID)
	}
	if reviewID != 0 {
		query = query.Where("id_review = ?", reviewID)
	}

	result := query.Find(&images)
	return images, result.Error
}

func (imageDAO *ImageDAO) CreateImage(image *model.Image) error {
	// takes a pointer, in order to update the param struct

	if image.URL == "" || image.UID == "" {
		return fmt.Errorf("missing required image fields: %w", model.ErrValidation)
	}

	// check the restaurant exists
	var restaurant model.Restaurant
	result := imageDAO.db.First(&restaurant, image.RestaurantID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("restaurant %d: %w", image.RestaurantID, model.ErrNotFound)
		}
		return result.Error
	}

	result = imageDAO.db.Create(image)
	return result.Error
}

// DeleteImage removes the image row. If the image was the restaurant's
// representative picture, the reference is cleared before the delete
// completes so the restaurant never points to a dead URL.
func (imageDAO *ImageDAO) DeleteImage(imageID int) error {
	// create transaction
	transaction := imageDAO.db.Begin()
	if transaction.Error != nil {
		return transaction.Error
	}

	// get image
	var image model.Image
	result := transaction.First(&image, imageID)
	if result.Error != nil {
		transaction.Rollback()
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("image %d: %w", imageID, model.ErrNotFound)
		}
		return result.Error
	}

	// clear the representative image reference when it matches
	var restaurant model.Restaurant
	result = transaction.First(&restaurant, image.RestaurantID)
	if result.Error == nil && restaurant.RepresentativeImage == image.URL && image.URL != "" {
		result = transaction.Model(&model.Restaurant{}).
			Where("id_restaurant = ?", restaurant.RestaurantID).
			UpdateColumn("representative_image", "")
		if result.Error != nil {
			transaction.Rollback()
			return result.Error
		}
	} else if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		transaction.Rollback()
		return result.Error
	}

	// delete image
	result = transaction.Delete(&model.Image{}, imageID)
	if result.Error != nil {
		transaction.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		transaction.Rollback()
		return fmt.Errorf("image %d: %w", imageID, model.ErrNotFound)
	}

	// commit
	result = transaction.Commit()
	if result.Error != nil {
		return result.Error
	}

	return nil
}
