package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-booking/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func uintPtr(u uint) *uint    { return &u }

func TestCountryMergeOverwritesOnlyPresentFields(t *testing.T) {
	country := models.Country{ID: 1, CountryName: "Japan", CountryImage: "japan.png"}

	countryUpdatePayload{CountryImage: strPtr("fuji.png")}.merge(&country)

	assert.Equal(t, "Japan", country.CountryName)
	assert.Equal(t, "fuji.png", country.CountryImage)
}

func TestCountryMergeAllowsEmptyString(t *testing.T) {
	country := models.Country{ID: 1, CountryName: "Japan", CountryImage: "japan.png"}

	countryUpdatePayload{CountryImage: strPtr("")}.merge(&country)

	assert.Equal(t, "", country.CountryImage)
}

func TestHotelMergeLeavesOmittedFields(t *testing.T) {
	hotel := models.Hotel{
		ID:          3,
		HotelName:   "Grand",
		Stars:       intPtr(4),
		Street:      "Main st",
		Description: "old",
		CountryID:   1,
		CityID:      2,
		OwnerID:     5,
	}

	hotelUpdatePayload{
		Stars:     intPtr(5),
		CityID:    uintPtr(9),
		HotelName: strPtr("Grand Palace"),
	}.merge(&hotel)

	assert.Equal(t, "Grand Palace", hotel.HotelName)
	assert.Equal(t, 5, *hotel.Stars)
	assert.Equal(t, uint(9), hotel.CityID)

	assert.Equal(t, "Main st", hotel.Street)
	assert.Equal(t, "old", hotel.Description)
	assert.Equal(t, uint(1), hotel.CountryID)
	assert.Equal(t, uint(5), hotel.OwnerID)
}

func TestHotelMergeEmptyPayloadIsNoop(t *testing.T) {
	hotel := models.Hotel{ID: 3, HotelName: "Grand", CountryID: 1, CityID: 2, OwnerID: 5}
	original := hotel

	hotelUpdatePayload{}.merge(&hotel)

	assert.Equal(t, original, hotel)
}
