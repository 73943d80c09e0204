package models

// Hotel owns its images, bookings, reviews and favourite items; country, city
// and owner are plain references and survive hotel deletion.
type Hotel struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	HotelName   string `gorm:"column:hotel_name;size:64" json:"hotel_name"`
	Stars       *int   `gorm:"column:stars" json:"stars,omitempty"`
	Street      string `gorm:"column:street;size:100" json:"street"`
	PostalIndex string `gorm:"column:postal_index;size:32" json:"postal_index"`
	Description string `gorm:"column:description;type:text" json:"description"`

	CountryID uint `gorm:"column:country_id;index" json:"country_id"`
	CityID    uint `gorm:"column:city_id;index" json:"city_id"`
	OwnerID   uint `gorm:"column:owner_id;index" json:"owner_id"`

	Country Country     `gorm:"foreignKey:CountryID" json:"-"`
	City    City        `gorm:"foreignKey:CityID" json:"-"`
	Owner   UserProfile `gorm:"foreignKey:OwnerID" json:"-"`

	Services       []Service       `gorm:"many2many:hotel_service" json:"-"`
	HotelImages    []HotelImage    `gorm:"foreignKey:HotelID" json:"-"`
	Bookings       []Booking       `gorm:"foreignKey:HotelID" json:"-"`
	Reviews        []Review        `gorm:"foreignKey:HotelID" json:"-"`
	FavouriteItems []FavouriteItem `gorm:"foreignKey:HotelID" json:"-"`
}

func (Hotel) TableName() string { return "hotel" }
