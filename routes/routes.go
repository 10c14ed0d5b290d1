package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-reservation/controllers"
	"hotel-reservation/middleware"
	"hotel-reservation/models"
	"hotel-reservation/services"
)

// Controllers groups the handlers mounted by SetupRouter.
type Controllers struct {
	Auth      *controllers.AuthController
	Guest     *controllers.GuestController
	Reception *controllers.ReceptionController
	Rooms     *controllers.RoomController
	Users     *controllers.UserController
	Admin     *controllers.AdminController
}

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

func SetupRouter(ctrls Controllers, auth *services.AuthService, corsOrigins string, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(log), gin.Recovery())

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
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/login", ctrls.Auth.Login)

		session := api.Group("", middleware.RequireSession(auth))
		{
			session.POST("/auth/logout", ctrls.Auth.Logout)
			session.GET("/auth/me", ctrls.Auth.Me)
		}

		guest := session.Group("/guest", middleware.RequireRole(models.RoleGuest))
		{
			guest.GET("/rooms", ctrls.Guest.Catalog)
			guest.POST("/quote", ctrls.Guest.Quote)
			guest.GET("/reservations", ctrls.Guest.MyReservations)
			guest.POST("/reservations", ctrls.Guest.CreateReservation)
			guest.POST("/reservations/:id/cancel", ctrls.Guest.CancelReservation)
		}

		reception := session.Group("/reception", middleware.RequireRole(models.RoleReceptionist))
		{
			reception.GET("/stats", ctrls.Reception.Stats)
			reception.GET("/reservations", ctrls.Reception.ListReservations)
			reception.GET("/arrivals", ctrls.Reception.Arrivals)
			reception.POST("/reservations/:id/check-in", ctrls.Reception.CheckIn)
			reception.POST("/reservations/:id/check-out", ctrls.Reception.CheckOut)
			reception.PATCH("/reservations/:id/status", ctrls.Reception.UpdateReservationStatus)
			reception.GET("/rooms", ctrls.Reception.ListRooms)
			reception.PATCH("/rooms/:id/status", ctrls.Reception.UpdateRoomStatus)
		}

		admin := session.Group("/admin", middleware.RequireRole(models.RoleAdministrator))
		{
			rooms := admin.Group("/rooms")
			{
				rooms.GET("", ctrls.Rooms.List)
				rooms.POST("", ctrls.Rooms.Create)
				rooms.PUT("/:id", ctrls.Rooms.Update)
				rooms.DELETE("/:id", ctrls.Rooms.Delete)
			}

			users := admin.Group("/users")
			{
				users.GET("", ctrls.Users.List)
				users.POST("", ctrls.Users.Create)
				users.PUT("/:id", ctrls.Users.Update)
				users.DELETE("/:id", ctrls.Users.Delete)
				users.POST("/:id/toggle-status", ctrls.Users.ToggleStatus)
			}

			admin.GET("/report", ctrls.Admin.Report)
			admin.GET("/settings", ctrls.Admin.GetSettings)
			admin.PUT("/settings", ctrls.Admin.UpdateSettings)
			admin.GET("/export", ctrls.Admin.ExportData)
			admin.POST("/reset", ctrls.Admin.ResetDemo)
		}
	}

	return r
}
