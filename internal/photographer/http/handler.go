package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shuttercal/booking-backend/internal/media"
	"github.com/shuttercal/booking-backend/internal/photographer"
	"github.com/shuttercal/booking-backend/internal/pkg/response"
)

// Portfolio uploads are capped to keep the in-memory decode bounded.
const maxPortfolioImageBytes = 10 << 20 // 10 MiB

type Handler struct {
	service photographer.Service
	storage media.Storage
}

func NewHandler(service photographer.Service, storage media.Storage) *Handler {
	return &Handler{service: service, storage: storage}
}

func (h *Handler) List(c *gin.Context) {
	var req ListPhotographersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	filter := photographer.Filter{
		ActiveOnly: !req.All,
		Specialty:  req.Specialty,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}

	photographers, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list photographers"})
		return
	}

	items := make([]PhotographerResponse, len(photographers))
	for i, p := range photographers {
		items[i] = NewPhotographerResponse(p)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == photographer.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "photographer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get photographer"})
		return
	}

	c.JSON(http.StatusOK, NewPhotographerResponse(p))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePhotographerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.Create(c.Request.Context(), photographer.CreateRequest{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		Specialty:   req.Specialty,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, NewPhotographerResponse(p))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req UpdatePhotographerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, photographer.UpdateRequest{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		Specialty:   req.Specialty,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if err == photographer.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "photographer not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, NewPhotographerResponse(p))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == photographer.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "photographer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete photographer"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListPortfolio(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	images, err := h.service.ListPortfolio(c.Request.Context(), id)
	if err != nil {
		if err == photographer.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "photographer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list portfolio"})
		return
	}

	items := make([]PortfolioImageResponse, len(images))
	for i, img := range images {
		items[i] = NewPortfolioImageResponse(img)
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) UploadPortfolioImage(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > maxPortfolioImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds maximum size"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}

	thumb, err := media.MakeThumbnail(bytes.NewReader(content), media.ThumbMaxWidth, media.ThumbMaxHeight)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is not a valid image"})
		return
	}

	imageID := uuid.New().String()
	path := fmt.Sprintf("portfolio/%s/%s.jpg", id, imageID)
	thumbPath := fmt.Sprintf("portfolio/%s/%s_thumb.jpg", id, imageID)

	ctx := c.Request.Context()
	if err := h.storage.Save(ctx, path, bytes.NewReader(content)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}
	if err := h.storage.Save(ctx, thumbPath, thumb); err != nil {
		_ = h.storage.Delete(ctx, path)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store thumbnail"})
		return
	}

	img := &photographer.PortfolioImage{
		ID:             imageID,
		PhotographerID: id,
		Path:           path,
		ThumbnailPath:  thumbPath,
		Caption:        c.PostForm("caption"),
	}
	if err := h.service.AddPortfolioImage(ctx, img); err != nil {
		// Roll back the stored files so the directory does not accumulate
		// orphans when the DB write fails.
		_ = h.storage.Delete(ctx, path)
		_ = h.storage.Delete(ctx, thumbPath)
		if err == photographer.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "photographer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save portfolio image"})
		return
	}

	c.JSON(http.StatusCreated, NewPortfolioImageResponse(img))
}

func (h *Handler) DeletePortfolioImage(c *gin.Context) {
	id := c.Param("id")
	imageID := c.Param("imageID")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}
	if _, err := uuid.Parse(imageID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	ctx := c.Request.Context()
	img, err := h.service.RemovePortfolioImage(ctx, id, imageID)
	if err != nil {
		if err == photographer.ErrNotFound || err == photographer.ErrImageNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "portfolio image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete portfolio image"})
		return
	}

	_ = h.storage.Delete(ctx, img.Path)
	_ = h.storage.Delete(ctx, img.ThumbnailPath)

	c.Status(http.StatusNoContent)
}
