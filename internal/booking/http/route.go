package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	// Slot browsing is public: clients pick a window before signing in.
	g.GET("/offerings/:id/slots", h.Slots)

	group := g.Group("/bookings")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.POST("/:id/cancel", h.Cancel)
		group.POST("/:id/reschedule", h.Reschedule)
		group.DELETE("/:id", h.Delete)
	}

	// === Admin Routes ===
	admin := group.Group("")
	admin.Use(adminMiddleware)
	{
		admin.POST("/:id/accept", h.Accept)
		admin.POST("/:id/reject", h.Reject)
		admin.POST("/:id/complete", h.Complete)
	}
}
