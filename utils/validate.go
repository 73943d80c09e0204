package utils

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterTagNames makes validator report fields by their json tag instead of
// the Go field name, so validation errors match the wire payload.
func RegisterTagNames() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// BindJSON binds the request body into obj and, on failure, writes a 422
// response enumerating the offending fields. Returns false when the response
// has already been written.
func BindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		detail := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			detail[fe.Field()] = validationMessage(fe)
		}
		JSONDetail(c, http.StatusUnprocessableEntity, detail)
		return false
	}

	JSONDetail(c, http.StatusUnprocessableEntity, err.Error())
	return false
}

// ParseIDParam reads the numeric path parameter or writes a 422 response.
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSuffix(c.Param(name), "/")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		JSONDetail(c, http.StatusUnprocessableEntity, map[string]string{
			name: "must be an integer",
		})
		return 0, false
	}
	return uint(id), true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", fe.Param())
	default:
		return "is invalid"
	}
}
