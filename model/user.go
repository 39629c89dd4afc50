package model

type User struct {
	UID          string `gorm:"column:uid;primaryKey" json:"uid"`
	Nickname     string `gorm:"column:nickname;type:text;not null" json:"nickname"`
	ProfileImage string `gorm:"column:profile_image;type:text" json:"profile_image"`
	// counters and score are recomputed from the ledger on read,
	// the stored values are only a snapshot of the last read
	LikeNum       int `gorm:"column:like_num;type:integer;not null;default:0" json:"like_num"`
	ReviewNum     int `gorm:"column:review_num;type:integer;not null;default:0" json:"review_num"`
	RestaurantNum int `gorm:"column:restaurant_num;type:integer;not null;default:0" json:"restaurant_num"`
	Score         int `gorm:"column:score;type:integer;not null;default:0" json:"score"`
}

func (User) TableName() string {
	return "user"
}
