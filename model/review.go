package model

import "time"

type Review struct {
	ReviewID     int       `gorm:"column:id_review;primaryKey;autoIncrement" json:"review_id"`
	RestaurantID int       `gorm:"column:id_restaurant;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"restaurant_id"`
	UID          string    `gorm:"column:uid;type:text;not null" json:"uid"`
	Content      string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (Review) TableName() string {
	return "review"
}
