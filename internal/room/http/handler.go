package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/maenko-m/meeting-management-backend/internal/pkg/request"
	"github.com/maenko-m/meeting-management-backend/internal/pkg/response"
	"github.com/maenko-m/meeting-management-backend/internal/room"
)

type Handler struct {
	service room.Service
}

func NewHandler(service room.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListRoomsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	req.Normalize()

	filter := room.Filter{
		OfficeID: req.OfficeID,
		Name:     req.Name,
		SizeMin:  req.SizeMin,
		IsPublic: req.IsPublic,
		IsActive: req.IsActive,
		Page:     req.Page,
		Limit:    req.Limit,
	}

	rooms, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		items[i] = NewRoomResponse(r)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.Limit, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRoomResponse(r))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRoomRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	r, err := h.service.Create(c.Request.Context(), room.CreateRequest{
		OfficeID:     body.OfficeID,
		Name:         body.Name,
		Size:         body.Size,
		IsPublic:     body.IsPublic,
		Description:  body.Description,
		CalendarCode: body.CalendarCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewRoomResponse(r))
}

func (h *Handler) Update(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	var body UpdateRoomRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	r, err := h.service.Update(c.Request.Context(), req.ID, room.UpdateRequest{
		Name:         body.Name,
		Size:         body.Size,
		IsActive:     body.IsActive,
		IsPublic:     body.IsPublic,
		Description:  body.Description,
		CalendarCode: body.CalendarCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRoomResponse(r))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) UploadPhoto(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo is required"})
		return
	}

	photo, err := h.service.UploadPhoto(c.Request.Context(), req.ID, fileHeader)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewPhotoResponse(photo))
}

func (h *Handler) GetPhoto(c *gin.Context) {
	photoID := c.Param("photoId")
	if _, err := uuid.Parse(photoID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo id"})
		return
	}

	thumbnail := c.Query("thumbnail") == "true"

	rc, photo, err := h.service.OpenPhoto(c.Request.Context(), photoID, thumbnail)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer rc.Close()

	contentType := "image/jpeg"
	if !thumbnail && strings.HasSuffix(photo.Path, ".png") {
		contentType = "image/png"
	}

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}

func (h *Handler) DeletePhoto(c *gin.Context) {
	photoID := c.Param("photoId")
	if _, err := uuid.Parse(photoID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo id"})
		return
	}

	if err := h.service.DeletePhoto(c.Request.Context(), photoID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
