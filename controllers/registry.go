package controllers

import (
	"hotel-booking/services"

	"gorm.io/gorm"
)

// Registry bundles every resource controller so route registration takes a
// single argument instead of thirteen.
type Registry struct {
	Auth           *AuthController
	Users          *UserController
	Countries      *CountryController
	Cities         *CityController
	Services       *ServiceController
	Hotels         *HotelController
	HotelImages    *HotelImageController
	Rooms          *RoomController
	RoomImages     *RoomImageController
	Bookings       *BookingController
	Reviews        *ReviewController
	Favourites     *FavouriteController
	FavouriteItems *FavouriteItemController
}

// NewRegistry wires services and controllers around the given database
// handle.
func NewRegistry(db *gorm.DB) *Registry {
	userSvc := services.NewUserService(db)
	return &Registry{
		Auth:           NewAuthController(userSvc),
		Users:          NewUserController(userSvc),
		Countries:      NewCountryController(services.NewCountryService(db)),
		Cities:         NewCityController(services.NewCityService(db)),
		Services:       NewServiceController(services.NewServiceService(db)),
		Hotels:         NewHotelController(services.NewHotelService(db)),
		HotelImages:    NewHotelImageController(services.NewHotelImageService(db)),
		Rooms:          NewRoomController(services.NewRoomService(db)),
		RoomImages:     NewRoomImageController(services.NewRoomImageService(db)),
		Bookings:       NewBookingController(services.NewBookingService(db)),
		Reviews:        NewReviewController(services.NewReviewService(db)),
		Favourites:     NewFavouriteController(services.NewFavouriteService(db)),
		FavouriteItems: NewFavouriteItemController(services.NewFavouriteItemService(db)),
	}
}
