package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shuttercal/booking-backend/internal/offering"
	"github.com/shuttercal/booking-backend/internal/pkg/response"
)

type Handler struct {
	service offering.Service
}

func NewHandler(service offering.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListOfferingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	filter := offering.Filter{
		ActiveOnly: !req.All,
		Keyword:    req.Keyword,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}

	offerings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list offerings"})
		return
	}

	items := make([]OfferingResponse, len(offerings))
	for i, o := range offerings {
		items[i] = NewOfferingResponse(o)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	o, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == offering.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "offering not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get offering"})
		return
	}

	c.JSON(http.StatusOK, NewOfferingResponse(o))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	o, err := h.service.Create(c.Request.Context(), offering.CreateRequest{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		MaxParticipants: req.MaxParticipants,
		Price:           req.Price,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, NewOfferingResponse(o))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req UpdateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	o, err := h.service.Update(c.Request.Context(), id, offering.UpdateRequest{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		MaxParticipants: req.MaxParticipants,
		Price:           req.Price,
		IsActive:        req.IsActive,
	})
	if err != nil {
		if err == offering.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "offering not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, NewOfferingResponse(o))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == offering.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "offering not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete offering"})
		return
	}

	c.Status(http.StatusNoContent)
}
