package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-booking/utils"
)

func expectUserByName(mock sqlmock.Sqlmock, t *testing.T, password string) {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT .+ FROM `userprofile`").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_name", "email", "password", "role"}).
			AddRow(1, "admin", "admin@hotel.local", hash, "admin"))
}

func TestLoginReturnsToken(t *testing.T) {
	r, mock := newTestRouter(t)
	expectUserByName(mock, t, "admin123")

	w := perform(r, http.MethodPost, "/auth/login/",
		`{"user_name": "admin", "password": "admin123"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Token string `json:"token"`
		User  struct {
			UserName string `json:"user_name"`
			Password string `json:"password"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Token, 64)
	assert.Equal(t, "admin", body.User.UserName)
	// the hash never leaves the server
	assert.Empty(t, body.User.Password)
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	r, mock := newTestRouter(t)
	expectUserByName(mock, t, "admin123")

	w := perform(r, http.MethodPost, "/auth/login/",
		`{"user_name": "admin", "password": "nope"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail": "invalid credentials"}`, w.Body.String())
}

func TestLoginUnknownUserUnauthorized(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("SELECT .+ FROM `userprofile`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name", "password"}))

	w := perform(r, http.MethodPost, "/auth/login/",
		`{"user_name": "ghost", "password": "x"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail": "invalid credentials"}`, w.Body.String())
}
