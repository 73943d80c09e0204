package controllers

import (
	"net/http"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

type userCreatePayload struct {
	FirstName   string      `json:"first_name" binding:"required,max=32"`
	LastName    string      `json:"last_name" binding:"required,max=32"`
	UserName    string      `json:"user_name" binding:"required,max=64"`
	Email       string      `json:"email" binding:"required,email"`
	Age         *int        `json:"age" binding:"omitempty,gte=0"`
	PhoneNumber *string     `json:"phone_number"`
	Role        models.Role `json:"role" binding:"omitempty,oneof=admin owner client"`
	Password    string      `json:"password" binding:"required"`
}

// Same shape as create, but the password is optional: when absent the stored
// hash is kept.
type userUpdatePayload struct {
	FirstName   string      `json:"first_name" binding:"required,max=32"`
	LastName    string      `json:"last_name" binding:"required,max=32"`
	UserName    string      `json:"user_name" binding:"required,max=64"`
	Email       string      `json:"email" binding:"required,email"`
	Age         *int        `json:"age" binding:"omitempty,gte=0"`
	PhoneNumber *string     `json:"phone_number"`
	Role        models.Role `json:"role" binding:"omitempty,oneof=admin owner client"`
	Password    string      `json:"password"`
}

func (ctl *UserController) Create(c *gin.Context) {
	var payload userCreatePayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		writeStorageError(c, "User", err)
		return
	}

	role := payload.Role
	if role == "" {
		role = models.RoleClient
	}

	user := models.UserProfile{
		FirstName:   payload.FirstName,
		LastName:    payload.LastName,
		UserName:    payload.UserName,
		Email:       payload.Email,
		Age:         payload.Age,
		PhoneNumber: payload.PhoneNumber,
		Role:        role,
		Password:    hash,
	}
	if err := ctl.Svc.Create(&user); err != nil {
		writeStorageError(c, "User", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.Svc.GetAll()
	if err != nil {
		writeStorageError(c, "User", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ctl *UserController) Get(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "User", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *UserController) Update(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var payload userUpdatePayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	user, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "User", err)
		return
	}

	user.FirstName = payload.FirstName
	user.LastName = payload.LastName
	user.UserName = payload.UserName
	user.Email = payload.Email
	user.Age = payload.Age
	user.PhoneNumber = payload.PhoneNumber
	if payload.Role != "" {
		user.Role = payload.Role
	}
	if payload.Password != "" {
		hash, err := utils.HashPassword(payload.Password)
		if err != nil {
			writeStorageError(c, "User", err)
			return
		}
		user.Password = hash
	}

	if err := ctl.Svc.Save(user); err != nil {
		writeStorageError(c, "User", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *UserController) Delete(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.Svc.Delete(id); err != nil {
		writeStorageError(c, "User", err)
		return
	}
	utils.JSONDeleted(c, "User", id)
}
