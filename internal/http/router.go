package api

import (
	"log"
	stdhttp "net/http"

	intconfig "backoffice/internal/config"
	h "backoffice/internal/http/handlers"
	"backoffice/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	secret := []byte(env.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login(env))
		auth.POST("/register", h.Register)

		// Registry routes require a valid token; mutations require admin.
		registry := api.Group("", middleware.RequireAuth(secret))
		admin := middleware.RequireRoles("admin")

		cities := registry.Group("/cities")
		cities.GET("", h.GetCities)
		cities.POST("", admin, h.CreateCity)
		cities.PUT("/:id", admin, h.UpdateCity)
		cities.DELETE("/:id", admin, h.DeleteCity)

		vehicleTypes := registry.Group("/vehicle-types")
		vehicleTypes.GET("", h.GetVehicleTypes)
		vehicleTypes.POST("", admin, h.CreateVehicleType)
		vehicleTypes.PUT("/:id", admin, h.UpdateVehicleType)
		vehicleTypes.DELETE("/:id", admin, h.DeleteVehicleType)

		vehicles := registry.Group("/vehicles")
		vehicles.GET("", h.GetVehicles)
		vehicles.POST("", admin, h.CreateVehicle)
		vehicles.PUT("/:id", admin, h.UpdateVehicle)
		vehicles.DELETE("/:id", admin, h.DeleteVehicle)

		timeSlots := registry.Group("/time-slots")
		timeSlots.GET("", h.GetTimeSlots)
		timeSlots.POST("", admin, h.CreateTimeSlot)
		timeSlots.DELETE("/:id", admin, h.DeleteTimeSlot)

		schedules := registry.Group("/trip-schedules")
		schedules.GET("", h.GetTripSchedules)
		schedules.GET("/:id", h.GetTripScheduleByID)
		schedules.GET("/:id/sheet", h.GetTripScheduleSheet)
		schedules.POST("", admin, h.CreateTripSchedule)
		schedules.DELETE("/:id", admin, h.DeleteTripSchedule)
	}

	h.SetRouter(r)
	return r
}
