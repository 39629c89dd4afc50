package model

type Station struct {
	StationID       int     `gorm:"column:id_station;primaryKey;autoIncrement" json:"station_id"`
	Station         string  `gorm:"column:station;type:text;not null" json:"station"`
	Latitude        float64 `gorm:"column:latitude;type:numeric;not null" json:"latitude"`
	Longitude       float64 `gorm:"column:longitude;type:numeric;not null" json:"longitude"`
	DistFromStation float64 `gorm:"column:dist_from_station;type:numeric;not null;default:-1" json:"dist_from_station"`
}

func (Station) TableName() string {
	return "station"
}

// StationDistance pairs a station with its distance from a query point,
// as returned by the nearest-station lookup.
type StationDistance struct {
	Station  Station `json:"station"`
	Distance float64 `json:"distance"`
}
