package models

type City struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CityName  string `gorm:"column:city_name;size:16;index" json:"city_name"`
	CityImage string `gorm:"column:city_image" json:"city_image"`

	Hotels []Hotel `gorm:"foreignKey:CityID" json:"-"`
}

func (City) TableName() string { return "city" }
