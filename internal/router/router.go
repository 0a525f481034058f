package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	ListBikes(c *ginext.Context)
	GetBike(c *ginext.Context)
	CreateBike(c *ginext.Context)
	UpdateBike(c *ginext.Context)
	DeleteBike(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	CreatePaymentOrder(c *ginext.Context)
	VerifyPayment(c *ginext.Context)
	ListAllBookings(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth, admin ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		// Bikes: catalog is public, mutation is administrative
		api.GET("/bikes", h.ListBikes)
		api.GET("/bikes/:id", h.GetBike)
		api.POST("/bikes", auth, admin, h.CreateBike)
		api.PUT("/bikes/:id", auth, admin, h.UpdateBike)
		api.DELETE("/bikes/:id", auth, admin, h.DeleteBike)

		// Bookings
		bookings := api.Group("/bookings", auth)
		{
			bookings.POST("", h.CreateBooking)
			bookings.GET("", h.ListMyBookings)
		}

		// Payments
		payments := api.Group("/payments", auth)
		{
			payments.POST("/order", h.CreatePaymentOrder)
			payments.POST("/verify", h.VerifyPayment)
		}

		// Admin
		adm := api.Group("/admin", auth, admin)
		{
			adm.GET("/bookings", h.ListAllBookings)
			adm.PUT("/bookings/:id/status", h.UpdateBookingStatus)
			adm.GET("/users", h.ListUsers)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
