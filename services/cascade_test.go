package services

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func expectHotelCascade(mock sqlmock.Sqlmock, hotelID int64) {
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM hotel_service WHERE hotel_id = ?")).
		WithArgs(hotelID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `hotel_image` WHERE hotel_id = ?")).
		WithArgs(hotelID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `booking` WHERE hotel_id = ?")).
		WithArgs(hotelID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `review` WHERE hotel_id = ?")).
		WithArgs(hotelID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `favourite_item` WHERE hotel_id = ?")).
		WithArgs(hotelID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `hotel` WHERE `hotel`.`id` = ?")).
		WithArgs(hotelID).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

// Deleting a hotel removes its images, bookings, reviews, favourite items
// and amenity links inside one transaction; the hotel row goes last.
func TestHotelDeleteCascades(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewHotelService(db)

	mock.ExpectBegin()
	expectHotelCascade(mock, 3)
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHotelDeleteMissingRowRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewHotelService(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM hotel_service WHERE hotel_id = ?")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `hotel_image` WHERE hotel_id = ?")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `booking` WHERE hotel_id = ?")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `review` WHERE hotel_id = ?")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `favourite_item` WHERE hotel_id = ?")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `hotel` WHERE `hotel`.`id` = ?")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := svc.Delete(404)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Deleting a user removes every owned hotel (and that hotel's children),
// every favourite with its items, then the user's bookings and reviews, all
// in one transaction.
func TestUserDeleteCascades(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db)

	mock.ExpectBegin()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id` FROM `hotel` WHERE owner_id = ?")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	expectHotelCascade(mock, 3)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id` FROM `favourite` WHERE user_id = ?")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `favourite_item` WHERE favourite_id = ?")).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `favourite` WHERE `favourite`.`id` = ?")).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `booking` WHERE user_id = ?")).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `review` WHERE user_id = ?")).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `userprofile` WHERE `userprofile`.`id` = ?")).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectCommit()

	require.NoError(t, svc.Delete(7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomDeleteCascades(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `room_image` WHERE room_id = ?")).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `booking` WHERE room_id = ?")).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `room` WHERE `room`.`id` = ?")).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavouriteDeleteCascades(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFavouriteService(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `favourite_item` WHERE favourite_id = ?")).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `favourite` WHERE `favourite`.`id` = ?")).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(9))
	assert.NoError(t, mock.ExpectationsWereMet())
}
