package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"dining-server/model"
)

type LikeDAO struct {
	db *gorm.DB
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{db: db}
}

func (likeDAO *LikeDAO) GetLikeById(likeID int) (model.Like, error) {
	var like model.Like
	result := likeDAO.db.First(&like, likeID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Like{}, fmt.Errorf("like %d: %w", likeID, model.ErrNotFound)
		}
		return model.Like{}, result.Error
	}
	return like, nil
}

// GetLikes filters by uid and/or restaurant, both optional.
func (likeDAO *LikeDAO) GetLikes(uid string, restaurantID int) ([]model.Like, error) {
	var likes []model.Like

	query := likeDAO.db
	if uid != "" {
		query = query.Where("uid = ?", uid)
	}
	if restaurantID != 0 {
		query = query.Where("id_restaurant = ?", restaurantID)
	}

	result := query.Find(&likes)
	return likes, result.Error
}

// GetLikeByUIDAndRestaurant returns nil without error when the user has no
// like on the restaurant, the boundary uses it as the duplicate check.
func (likeDAO *LikeDAO) GetLikeByUIDAndRestaurant(uid string, restaurantID int) (*model.Like, error) {
	var like model.Like

	result := likeDAO.db.Where("uid = ? AND id_restaurant = ?", uid, restaurantID).First(&like)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return &like, nil
}

// AddLike creates the like row and bumps the restaurant counter in one
// transaction. The increment is a SQL expression, concurrent likes on the
// same restaurant all count.
func (likeDAO *LikeDAO) AddLike(like *model.Like) error {
	// takes a pointer, in order to update the param struct

	if like.UID == "" {
		return fmt.Errorf("missing uid: %w", model.ErrValidation)
	}

	// create transaction
	transaction := likeDAO.db.Begin()
	if transaction.Error != nil {
		return transaction.Error
	}

	// check the restaurant exists
	var restaurant model.Restaurant
	result := transaction.First(&restaurant, like.RestaurantID)
	if result.Error != nil {
		transaction.Rollback()
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("restaurant %d: %w", like.RestaurantID, model.ErrNotFound)
		}
		return result.Error
	}

	// save like
	result = transaction.Create(like)
	if result.Error != nil {
		transaction.Rollback()
		return result.Error
	}

	// increment counter
	result = transaction.Model(&model.Restaurant{}).
		Where("id_restaurant = ?", like.RestaurantID).
		UpdateColumn("like_num", gorm.Expr("like_num + 1"))
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

// RemoveLike decrements the restaurant counter and deletes the like row in
// one transaction.
func (likeDAO *LikeDAO) RemoveLike(likeID int) error {
	// create transaction
	transaction := likeDAO.db.Begin()
	if transaction.Error != nil {
		return transaction.Error
	}

	// get like
	var like model.Like
	result := transaction.First(&like, likeID)
	if result.Error != nil {
		transaction.Rollback()
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("like %d: %w", likeID, model.ErrNotFound)
		}
		return result.Error
	}

	// decrement counter
	result = transaction.Model(&model.Restaurant{}).
		Where("id_restaurant = ?", like.RestaurantID).
		UpdateColumn("like_num", gorm.Expr("like_num - 1"))
	if result.Error != nil {
		transaction.Rollback()
		return result.Error
	}

	// delete like
	result = transaction.Delete(&model.Like{}, likeID)
	if result.Error != nil {
		transaction.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		transaction.Rollback()
		return fmt.Errorf("like %d: %w", likeID, model.ErrNotFound)
	}

	// commit
	result = transaction.Commit()
	if result.Error != nil {
		return result.Error
	}

	return nil
}
