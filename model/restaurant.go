package model

// DistanceNotComputed marks a distFromStation that has not been filled yet.
// A real distance is always >= 0, so -1 is safe as the sentinel.
const DistanceNotComputed = -1.0

type Restaurant struct {
	RestaurantID        int     `gorm:"column:id_restaurant;primaryKey;autoIncrement" json:"restaurant_id"`
	RestaurantName      string  `gorm:"column:restaurant_name;type:text;not null" json:"restaurant_name"`
	FoodCategory        string  `gorm:"column:food_category;type:text;not null" json:"food_category"`
	Station             string  `gorm:"column:station;type:text;not null" json:"station"`
	Latitude            float64 `gorm:"column:latitude;type:numeric;not null" json:"latitude"`
	Longitude           float64 `gorm:"column:longitude;type:numeric;not null" json:"longitude"`
	Phone               string  `gorm:"column:phone;type:text" json:"phone"`
	OperatingHours      string  `gorm:"column:operating_hours;type:text" json:"operating_hours"`
	SearchNum           int     `gorm:"column:search_num;type:integer;not null;default:0" json:"search_num"`
	LikeNum             int     `gorm:"column:like_num;type:integer;not null;default:0" json:"like_num"`
	ReviewNum           int     `gorm:"column:review_num;type:integer;not null;default:0" json:"review_num"`
	DistFromStation     float64 `gorm:"column:dist_from_station;type:numeric;not null;default:-1" json:"dist_from_station"`
	RepresentativeImage string  `gorm:"column:representative_image;type:text" json:"representative_image"`
	RegisteredBy        string  `gorm:"column:registered_by;type:text" json:"registered_by"`
}

func (Restaurant) TableName() string {
	return "restaurant"
}
