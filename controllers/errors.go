package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// writeStorageError translates a service-layer failure into an HTTP response:
// missing rows become 404, dangling references 422, unique-constraint
// violations 409, anything else an opaque 500.
func writeStorageError(c *gin.Context, entity string, err error) {
	var refErr *services.ReferenceError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONNotFound(c, entity)
	case errors.As(err, &refErr):
		utils.JSONDetail(c, http.StatusUnprocessableEntity, map[string]string{
			refErr.Field: fmt.Sprintf("%s %d does not exist", refErr.Entity, refErr.ID),
		})
	case services.IsDuplicate(err):
		utils.JSONDetail(c, http.StatusConflict, "duplicate value violates a unique constraint")
	case services.IsForeignKeyViolation(err):
		utils.JSONDetail(c, http.StatusUnprocessableEntity, "referenced row does not exist")
	default:
		log.Printf("storage error (%s): %v", entity, err)
		utils.JSONDetail(c, http.StatusInternalServerError, "internal server error")
	}
}
