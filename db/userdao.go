package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"dining-server/internals"
	"dining-server/model"
)

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// GetUserByUID returns the user with counters and score recomputed from the
// ledger. The stored snapshot is refreshed only when the recomputed values
// differ.
func (userDAO *UserDAO) GetUserByUID(uid string) (model.User, error) {
	var user model.User
	result := userDAO.db.First(&user, "uid = ?", uid)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("user %q: %w", uid, model.ErrNotFound)
		}
		return model.User{}, result.Error
	}

	err := userDAO.reconcileUserCounters(&user)
	if err != nil {
		return model.User{}, err
	}

	return user, nil
}

// reconcileUserCounters recounts the user's likes, reviews and registered
// restaurants and recomputes the score.
func (userDAO *UserDAO) reconcileUserCounters(user *model.User) error {
	var likeCount, reviewCount, restaurantCount int64

	result := userDAO.db.Model(&model.Like{}).Where("uid = ?", user.UID).Count(&likeCount)
	if result.Error != nil {
		return result.Error
	}
	result = userDAO.db.Model(&model.Review{}).Where("uid = ?", user.UID).Count(&reviewCount)
	if result.Error != nil {
		return result.Error
	}
	result = userDAO.db.Model(&model.Restaurant{}).Where("registered_by = ?", user.UID).Count(&restaurantCount)
	if result.Error != nil {
		return result.Error
	}

	score := internals.ComputeUserScore(int(likeCount), int(reviewCount), int(restaurantCount))

	if user.LikeNum == int(likeCount) && user.ReviewNum == int(reviewCount) &&
		user.RestaurantNum == int(restaurantCount) && user.Score == score {
		// snapshot already fresh
		return nil
	}

	user.LikeNum = int(likeCount)
	user.ReviewNum = int(reviewCount)
	user.RestaurantNum = int(restaurantCount)
	user.Score = score

	result = userDAO.db.Model(&model.User{}).Where("uid = ?", user.UID).UpdateColumns(map[string]interface{}{
		"like_num":       user.LikeNum,
		"review_num":     user.ReviewNum,
		"restaurant_num": user.RestaurantNum,
		"score":          user.Score,
	})
	return result.Error
}

func (userDAO *UserDAO) AddUser(user *model.User) error {
	// takes a pointer, in order to update the param struct

	if user.UID == "" || user.Nickname == "" {
		return fmt.Errorf("missing required user fields: %w", model.ErrValidation)
	}

	result := userDAO.db.Create(user)
	return result.Error
}

func (userDAO *UserDAO) UpdateUser(user model.User) error {
	result := userDAO.db.Save(&user)
	return result.Error
}

func (userDAO *UserDAO) DeleteUser(uid string) error {
	result := userDAO.db.Delete(&model.User{}, "uid = ?", uid)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %q: %w", uid, model.ErrNotFound)
	}

	return nil
}
