package controllers

import (
	"net/http"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type ServiceController struct {
	Svc *services.ServiceService
}

func NewServiceController(svc *services.ServiceService) *ServiceController {
	return &ServiceController{Svc: svc}
}

type servicePayload struct {
	ServiceName  string `json:"service_name" binding:"required,max=32"`
	ServiceImage string `json:"service_image" binding:"required"`
}

func (ctl *ServiceController) Create(c *gin.Context) {
	var payload servicePayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	service := models.Service{
		ServiceName:  payload.ServiceName,
		ServiceImage: payload.ServiceImage,
	}
	if err := ctl.Svc.Create(&service); err != nil {
		writeStorageError(c, "Service", err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (ctl *ServiceController) List(c *gin.Context) {
	items, err := ctl.Svc.GetAll()
	if err != nil {
		writeStorageError(c, "Service", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ctl *ServiceController) Get(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	service, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "Service", err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (ctl *ServiceController) Update(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var payload servicePayload
	if !utils.BindJSON(c, &payload) {
		return
	}

	service, err := ctl.Svc.GetByID(id)
	if err != nil {
		writeStorageError(c, "Service", err)
		return
	}
	service.ServiceName = payload.ServiceName
	service.ServiceImage = payload.ServiceImage
	if err := ctl.Svc.Save(service); err != nil {
		writeStorageError(c, "Service", err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (ctl *ServiceController) Delete(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.Svc.Delete(id); err != nil {
		writeStorageError(c, "Service", err)
		return
	}
	utils.JSONDeleted(c, "Service", id)
}
