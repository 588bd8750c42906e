package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateTool(c *ginext.Context)
	GetTool(c *ginext.Context)
	SearchTools(c *ginext.Context)
	DeleteTool(c *ginext.Context)
	BookTool(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	AddReview(c *ginext.Context)
	ListReviews(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	GetUserTools(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Tools
		api.POST("/tools", h.CreateTool)
		api.GET("/tools", h.SearchTools)
		api.GET("/tools/:id", h.GetTool)
		api.DELETE("/tools/:id", h.DeleteTool)

		// Bookings
		api.POST("/tools/:id/book", h.BookTool)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Reviews
		api.POST("/tools/:id/reviews", h.AddReview)
		api.GET("/tools/:id/reviews", h.ListReviews)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)
		api.GET("/users/:id/tools", h.GetUserTools)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
