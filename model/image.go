package model

import "time"

// image category codes
const (
	ImageCategoryFood         = 0
	ImageCategoryMenu         = 1
	ImageCategoryRestaurant   = 2
	ImageCategoryUnclassified = 3
)

// Image stores the metadata of an uploaded picture, the binary itself
// lives in external media storage and is referenced by URL.
type Image struct {
	ImageID      int       `gorm:"column:id_image;primaryKey;autoIncrement" json:"image_id"`
	URL          string    `gorm:"column:url;type:text;not null" json:"url"`
	Category     int       `gorm:"column:category;type:integer;not null;default:3" json:"category"`
	RestaurantID int       `gorm:"column:id_restaurant;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"restaurant_id"`
	ReviewID     *int      `gorm:"column:id_review;type:integer" json:"review_id"` // can be nil, pointer
	UID          string    `gorm:"column:uid;type:text;not null" json:"uid"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (Image) TableName() string {
	return "image"
}
