package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"dining-server/model"
)

type ReviewDAO struct {
	db *gorm.DB
}

func NewReviewDAO(db *gorm.DB) *ReviewDAO {
	return &ReviewDAO{db: db}
}

func (reviewDAO *ReviewDAO) GetReviewById(reviewID int) (model.Review, error) {
	var review model.Review
	result := reviewDAO.db.First(&review, reviewID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Review{}, fmt.Errorf("review %d: %w", reviewID, model.ErrNotFound)
		}
		return model.Review{}, result.Error
	}
	return review, nil
}

// GetReviews filters by uid and/or restaurant, both optional, newest first.
func (reviewDAO *ReviewDAO) GetReviews(uid string, restaurantID int) ([]model.Review, error) {
	var reviews []model.Review

	query := reviewDAO.db
	if uid != "" {
		query = query.Where("uid = ?", uid)
	}
	if restaurantID != 0 {
		query = query.Where("id_restaurant = ?", restaurantID)
	}

	result := query.Order("created_at desc, id_review desc").Find(&reviews)
	return reviews, result.Error
}

// AddReview creates the review row and bumps the restaurant counter in one
// transaction.
func (reviewDAO *ReviewDAO) AddReview(review *model.Review) error {
	// takes a pointer, in order to update the param struct

	if review.UID == "" || review.Content == "" {
		return fmt.Errorf("missing required review fields: %w", model.ErrValidation)
	}

	// create transaction
	transaction := reviewDAO.db.Begin()
	if transaction.Error != nil {
		return transaction.Error
	}

	// check the restaurant exists
	var restaurant model.Restaurant
	result := transaction.First(&restaurant, review.RestaurantID)
	if result.Error != nil {
		transaction.Rollback()
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("restaurant %d: %w", review.RestaurantID, model.ErrNotFound)
		}
		return result.Error
	}

	// save review
	result = transaction.Create(review)
	if result.Error != nil {
		transaction.Rollback()
		return result.Error
	}

	// increment counter
	result = transaction.Model(&model.Restaurant{}).
		Where("id_restaurant = ?", review.RestaurantID).
		UpdateColumn("review_num", gorm.Expr("review_num + 1"))
	if result.Error != nil {
		transaction.Rollback()
		return result.Error
	}

	// commit
	result = transaction.Commit()
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// RemoveReview deletes the review, its attached images and decrements the
// restaurant counter, all in one transaction.
func (reviewDAO *ReviewDAO) RemoveReview(reviewID int) error {
	// create transaction
	transaction := reviewDAO.db.Begin()
	if transaction.Error != nil {
		return transaction.Error
	}

	// get review
	var review model.Review
	result := transaction.First(&review, reviewID)
	if result.Error != nil {
		transaction.Rollback()
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("review %d: %w", reviewID, model.ErrNotFound)
		}
		return result.Error
	}

	// cascade to attached images
	result = transaction.Where("id_review = ?", reviewID).Delete(&model.Image{})
	if result.Error != nil {
		transaction.Rollback()
		return result.Error
	}

	// decrement counter
	result = transaction.Model(&model.Restaurant{}).
		Where("id_restaurant = ?", review.RestaurantID).
		UpdateColumn("review_num", gorm.Expr("review_num - 1"))
	if result.Error != nil {
		transaction.Rollback()
		return result.Error
	}

	// delete review
	result = transaction.Delete(&model.Review{}, reviewID)
	if result.Error != nil {
		transaction.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		transaction.Rollback()
		return fmt.Errorf("review %d: %w", reviewID, model.ErrNotFound)
	}

	// commit
	result = transaction.Commit()
	if result.Error != nil {
		return result.Error
	}

	return nil
}
