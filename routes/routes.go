package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-booking/controllers"
	"hotel-booking/middleware"
	"hotel-booking/utils"
)

const homePage = `<html>
    <head><title>Booking</title></head>
    <body>
        <h1>Hotel Booking API</h1>
        <p>Health check: <a href="/health">/health</a></p>
    </body>
</html>`

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// crudController is the uniform handler set every resource controller
// exposes.
type crudController interface {
	Create(*gin.Context)
	List(*gin.Context)
	Get(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
}

// registerCRUD mounts the five standard routes under prefix. The trailing
// slashes are part of the public URL contract.
func registerCRUD(r *gin.Engine, prefix string, ctl crudController) {
	grp := r.Group(prefix)
	grp.POST("/", ctl.Create)
	grp.GET("/", ctl.List)
	grp.GET("/:id/", ctl.Get)
	grp.PUT("/:id/", ctl.Update)
	grp.DELETE("/:id/", ctl.Delete)
}

func SetupRouter(reg *controllers.Registry) *gin.Engine {
	utils.RegisterTagNames()

	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homePage))
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/auth/login/", reg.Auth.Login)

	registerCRUD(r, "/user", reg.Users)
	registerCRUD(r, "/country", reg.Countries)
	registerCRUD(r, "/cities", reg.Cities)
	registerCRUD(r, "/service", reg.Services)
	registerCRUD(r, "/hotel", reg.Hotels)
	registerCRUD(r, "/hotel-image", reg.HotelImages)
	registerCRUD(r, "/room", reg.Rooms)
	registerCRUD(r, "/room-image", reg.RoomImages)
	registerCRUD(r, "/bookings", reg.Bookings)
	registerCRUD(r, "/review", reg.Reviews)
	registerCRUD(r, "/favourite", reg.Favourites)
	registerCRUD(r, "/favouriteitem", reg.FavouriteItems)

	return r
}
