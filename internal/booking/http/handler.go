package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shuttercal/booking-backend/internal/auth"
	"github.com/shuttercal/booking-backend/internal/booking"
	"github.com/shuttercal/booking-backend/internal/pkg/response"
	"github.com/shuttercal/booking-backend/internal/user"
)

type Handler struct {
	service     booking.Service
	userService user.Service
}

func NewHandler(service booking.Service, userService user.Service) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
	}
}

// isAdmin checks whether the current user has the admin role.
func (h *Handler) isAdmin(c *gin.Context, userID string) bool {
	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return false
	}
	return u.IsAdmin
}

// Slots handles GET /offerings/:id/slots
func (h *Handler) Slots(c *gin.Context) {
	offeringID := c.Param("id")
	if _, err := uuid.Parse(offeringID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req AvailableSlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	var photographerID *string
	if req.PhotographerID != "" {
		photographerID = &req.PhotographerID
	}

	slots, err := h.service.AvailableSlots(c.Request.Context(), offeringID, day, photographerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]SlotResponse, len(slots))
	for i, w := range slots {
		items[i] = NewSlotResponse(w)
	}

	c.JSON(http.StatusOK, gin.H{"date": req.Date, "slots": items})
}

func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	currentUserID := auth.GetUserID(c)
	isAdmin := h.isAdmin(c, currentUserID)

	// Normal users only ever see their own bookings; admins may filter by
	// any user or none.
	filterUserID := currentUserID
	if isAdmin {
		filterUserID = req.UserID
	}

	filter := booking.Filter{
		ClientID:       filterUserID,
		OfferingID:     req.OfferingID,
		PhotographerID: req.PhotographerID,
		Status:         req.Status,
		StartTime:      req.StartTimeFrom,
		EndTime:        req.StartTimeTo,
		Page:           req.Page,
		PageSize:       req.PageSize,
		SortBy:         req.SortBy,
		SortOrder:      req.SortOrder,
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	userID := auth.GetUserID(c)

	b, err := h.service.GetByID(c.Request.Context(), id, userID, h.isAdmin(c, userID))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	start, err := parseDayClock(req.Date, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date or start time"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		ClientID:       userID,
		OfferingID:     req.OfferingID,
		PhotographerID: req.PhotographerID,
		StartTime:      start,
		Participants:   req.Participants,
		Notes:          req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

// Accept handles POST /bookings/:id/accept (admin only, see route setup).
func (h *Handler) Accept(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.Accept(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// Reject handles POST /bookings/:id/reject (admin only).
func (h *Handler) Reject(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req RejectBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	b, err := h.service.Reject(c.Request.Context(), id, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// Cancel handles POST /bookings/:id/cancel (booking owner or admin).
func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID := auth.GetUserID(c)

	b, err := h.service.Cancel(c.Request.Context(), id, userID, h.isAdmin(c, userID), req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// Complete handles POST /bookings/:id/complete (admin only).
func (h *Handler) Complete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.Complete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// Reschedule handles POST /bookings/:id/reschedule (booking owner or admin).
func (h *Handler) Reschedule(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	start, err := parseDayClock(req.Date, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date or start time"})
		return
	}

	userID := auth.GetUserID(c)

	b, err := h.service.Reschedule(c.Request.Context(), id, start, userID, h.isAdmin(c, userID), req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	userID := auth.GetUserID(c)

	if err := h.service.Delete(c.Request.Context(), id, userID, h.isAdmin(c, userID)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
