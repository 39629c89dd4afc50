package model

// Like rows are the authoritative source for Restaurant.LikeNum.
// (uid, id_restaurant) uniqueness is not enforced here, callers check
// with LikeDAO.GetLikeByUIDAndRestaurant before creating.
type Like struct {
	LikeID       int    `gorm:"column:id_like;primaryKey;autoIncrement" json:"like_id"`
	UID          string `gorm:"column:uid;type:text;not null" json:"uid"`
	RestaurantID int    `gorm:"column:id_restaurant;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"restaurant_id"`
}

func (Like) TableName() string {
	return "like"
}
