package routes

import (
	"net/http"
	"time"

	"washbay/handlers"
	"washbay/middleware"
	"washbay/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HandlerBundle carries the assembled handlers routes are registered with.
type HandlerBundle struct {
	Booking *handlers.BookingHandler
	Export  *handlers.ExportHandler
	Web     *handlers.WebHandler
}

// RegisterBookingRoutes registers the booking REST endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.Booking.GetAllBookingsHandler)
		api.GET("/export", hb.Export.ExportBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingByIDHandler)
		api.POST("", hb.Booking.CreateBookingHandler)
		api.PUT("/:id", hb.Booking.UpdateBookingHandler)
		api.DELETE("/:id", hb.Booking.DeleteBookingHandler)
	}
}

// RegisterWebRoutes registers the server-rendered UI.
func RegisterWebRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.GET("/", hb.Web.ListPage)
	r.GET("/add-booking", hb.Web.NewBookingPage)
	r.POST("/add-booking", hb.Web.SubmitBooking)
	r.GET("/edit-booking/:id", hb.Web.EditBookingPage)
	r.POST("/edit-booking/:id", hb.Web.SubmitBooking)
	r.GET("/booking/:id", hb.Web.DetailPage)
	r.POST("/booking/:id/status", hb.Web.ChangeStatus)
	r.POST("/booking/:id/delete", hb.Web.DeleteBooking)
	r.GET("/booking/:id/invoice", hb.Web.InvoicePage)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.MetricsMiddleware())

	RegisterBookingRoutes(r, hb)
	RegisterWebRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
