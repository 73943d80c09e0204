package models

type Country struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CountryName  string `gorm:"column:country_name;size:16;uniqueIndex" json:"country_name"`
	CountryImage string `gorm:"column:country_image" json:"country_image"`

	Hotels []Hotel `gorm:"foreignKey:CountryID" json:"-"`
}

func (Country) TableName() string { return "country" }
