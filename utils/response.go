package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONDetail writes an error body in the {"detail": ...} shape every error
// response of the API uses.
func JSONDetail(c *gin.Context, code int, detail interface{}) {
	c.JSON(code, gin.H{"detail": detail})
}

// JSONNotFound writes the standard 404 body for a missing entity, e.g.
// {"detail": "Country not found"}.
func JSONNotFound(c *gin.Context, entity string) {
	JSONDetail(c, http.StatusNotFound, entity+" not found")
}

// JSONDeleted confirms a delete, e.g.
// {"message": "Country 5 deleted successfully"}.
func JSONDeleted(c *gin.Context, entity string, id uint) {
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%s %d deleted successfully", entity, id)})
}
