package controllers

import (
	"errors"
	"net/http"

	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	Users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{Users: users}
}

type loginPayload struct {
	UserName string `json:"user_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies the credentials against the stored bcrypt hash and hands
// back an opaque session token.
func (ctl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	user, err := ctl.Users.GetByUserName(payload.UserName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONDetail(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeStorageError(c, "User", err)
		return
	}

	if !utils.CheckPassword(user.Password, payload.Password) {
		utils.JSONDetail(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		writeStorageError(c, "User", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
