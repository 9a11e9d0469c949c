package stub

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"laundry-booking-client/config"
	"laundry-booking-client/internal/stub/mw"
)

// NewRouter builds the stub API router. GET catalog routes sit behind a
// short response cache that mutating handlers flush.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	responses := cache.New(time.Duration(cfg.Stub.CacheTTLSeconds)*time.Second, time.Minute)
	h := NewHandler(db, cfg.Stub.JWTSecret, responses)

	r := gin.Default()

	api := r.Group("/api")
	api.Use(mw.RateLimiter(rate.Limit(cfg.Stub.RateLimitPerSec), cfg.Stub.RateLimitBurst))

	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.POST("/admin/login", h.AdminLogin)
	api.POST("/google-login", h.GoogleLogin)
	api.POST("/google-register", h.GoogleRegister)

	cached := api.Group("", mw.Cache(responses, time.Duration(cfg.Stub.CacheTTLSeconds)*time.Second))
	cached.GET("/machines", h.GetMachines)
	cached.GET("/machines/:id/bookings", h.GetMachineBookings)

	api.POST("/bookings", h.CreateBooking)
	api.GET("/bookings/user/:id", h.GetUserBookings)
	api.DELETE("/bookings/:id", h.CancelBooking)

	admin := api.Group("/admin")
	admin.GET("/machines", h.GetAdminMachines)
	admin.POST("/machines", h.AddMachine)
	admin.PUT("/machines/:id/status", h.UpdateMachineStatus)
	admin.GET("/bookings", h.GetAllBookings)

	return r
}
