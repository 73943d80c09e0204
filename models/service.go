package models

type Service struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ServiceName  string `gorm:"column:service_name;size:32" json:"service_name"`
	ServiceImage string `gorm:"column:service_image" json:"service_image"`

	Hotels []Hotel `gorm:"many2many:hotel_service" json:"-"`
}

func (Service) TableName() string { return "service" }
