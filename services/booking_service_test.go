package services

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-booking/models"
)

func expectCount(mock sqlmock.Sqlmock, table string, id int64, count int64) {
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `" + table + "` WHERE id = ?")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(count))
}

// A booking referencing a nonexistent hotel fails before any insert is
// attempted, naming the dangling field.
func TestBookingCreateDanglingHotel(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBookingService(db)

	expectCount(mock, "hotel", 99, 0)

	booking := models.Booking{HotelID: 99, RoomID: 1, UserID: 1}
	err := svc.Create(&booking)
	require.Error(t, err)

	var refErr *ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "hotel_id", refErr.Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCreateChecksAllRefs(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBookingService(db)

	expectCount(mock, "hotel", 1, 1)
	expectCount(mock, "room", 2, 1)
	expectCount(mock, "userprofile", 3, 0)

	booking := models.Booking{HotelID: 1, RoomID: 2, UserID: 3}
	err := svc.Create(&booking)

	var refErr *ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "user_id", refErr.Field)
	assert.Equal(t, "UserProfile", refErr.Entity)
}

func TestBookingCreatePersistsWhenRefsExist(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBookingService(db)

	expectCount(mock, "hotel", 1, 1)
	expectCount(mock, "room", 2, 1)
	expectCount(mock, "userprofile", 3, 1)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `booking`")).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	booking := models.Booking{
		BookingStatus: models.BookingStatusPending,
		HotelID:       1,
		RoomID:        2,
		UserID:        3,
	}
	require.NoError(t, svc.Create(&booking))
	assert.Equal(t, uint(11), booking.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
