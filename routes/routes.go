package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-management/controllers"
	"hotel-management/middleware"
)

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
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

// SetupRouter wires the middleware and the user/room/item route groups.
func SetupRouter(
	uc *controllers.UserController,
	rc *controllers.RoomController,
	ic *controllers.ItemController,
	corsOrigins string,
	log *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	origins := parseCorsOrigins(corsOrigins)
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
		c.String(http.StatusOK, "Hello World")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	user := r.Group("/user")
	{
		user.POST("/signup", uc.Signup)
		user.POST("/login", uc.Login)
		user.GET("/all", uc.GetAll)
		user.GET("/id/:id", uc.GetByID)
		user.GET("/email/:email", uc.GetByEmail)
	}

	room := r.Group("/room")
	{
		room.POST("/create", rc.Create)
		room.GET("/all", rc.GetAll)
		room.GET("/room_number/:room_number", rc.GetByRoomNumber)
		room.GET("/id/:id", rc.GetByID)
		room.PUT("/book", rc.Book)
		room.PUT("/cancel_booking", rc.CancelBooking)
	}

	item := r.Group("/item")
	{
		item.POST("/create", ic.Create)
		item.GET("/all", ic.GetAll)
		item.GET("/id/:id", ic.GetByID)
		item.GET("/name/:name", ic.GetByName)
		item.GET("/search/:text", ic.Search)
		item.PUT("/update/:id", ic.Update)
		item.DELETE("/delete/:id", ic.Delete)
	}

	return r
}
