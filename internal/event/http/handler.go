package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maenko-m/meeting-management-backend/internal/auth"
	"github.com/maenko-m/meeting-management-backend/internal/event"
	"github.com/maenko-m/meeting-management-backend/internal/pkg/request"
	"github.com/maenko-m/meeting-management-backend/internal/pkg/response"
	"github.com/maenko-m/meeting-management-backend/internal/schedule"
)

type Handler struct {
	service event.Service
}

func NewHandler(service event.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListEventsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	req.Normalize()

	filter := event.Filter{
		RoomID:     req.RoomID,
		OfficeID:   req.OfficeID,
		Name:       req.Name,
		EmployeeID: auth.GetEmployeeID(c),
		Role:       req.Role(),
		Archived:   req.Archived,
		Desc:       req.DescOrder,
		Page:       req.Page,
		Limit:      req.Limit,
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]EventResponse, len(result.Occurrences))
	for i, occ := range result.Occurrences {
		items[i] = NewOccurrenceResponse(occ)
	}

	page := response.NewPageResponse(items, req.Page, req.Limit, result.Total).
		WithCounts(result.AuthorCount, result.MemberCount)
	c.JSON(http.StatusOK, page)
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewEventResponse(e))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateEventRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	date, err := schedule.ParseDate(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	timeStart, err := schedule.ParseTimeOfDay(body.TimeStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timeStart"})
		return
	}
	timeEnd, err := schedule.ParseTimeOfDay(body.TimeEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timeEnd"})
		return
	}
	rec, err := body.Recurrence.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recurrence end date"})
		return
	}

	actor := event.Actor{
		EmployeeID:  auth.GetEmployeeID(c),
		IsModerator: auth.IsModerator(c),
	}

	e, err := h.service.Create(c.Request.Context(), actor, event.CreateRequest{
		RoomID:      body.RoomID,
		Name:        body.Name,
		Description: body.Description,
		Date:        date,
		TimeStart:   timeStart,
		TimeEnd:     timeEnd,
		EmployeeIDs: body.EmployeeIDs,
		Recurrence:  rec,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewEventResponse(e))
}

func (h *Handler) Update(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var body UpdateEventRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	update := event.UpdateRequest{
		RoomID:      body.RoomID,
		Name:        body.Name,
		Description: body.Description,
		EmployeeIDs: body.EmployeeIDs,
	}

	if body.Date != nil {
		date, err := schedule.ParseDate(*body.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		update.Date = &date
	}
	if body.TimeStart != nil {
		t, err := schedule.ParseTimeOfDay(*body.TimeStart)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timeStart"})
			return
		}
		update.TimeStart = &t
	}
	if body.TimeEnd != nil {
		t, err := schedule.ParseTimeOfDay(*body.TimeEnd)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timeEnd"})
			return
		}
		update.TimeEnd = &t
	}
	if body.ClearRecurrence {
		var cleared *schedule.Recurrence
		update.Recurrence = &cleared
	} else if body.Recurrence != nil {
		rec, err := body.Recurrence.toModel()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recurrence end date"})
			return
		}
		update.Recurrence = &rec
	}

	actor := event.Actor{
		EmployeeID:  auth.GetEmployeeID(c),
		IsModerator: auth.IsModerator(c),
	}

	e, err := h.service.Update(c.Request.Context(), actor, req.ID, update)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewEventResponse(e))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	actor := event.Actor{
		EmployeeID:  auth.GetEmployeeID(c),
		IsModerator: auth.IsModerator(c),
	}

	if err := h.service.Delete(c.Request.Context(), actor, req.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Timeline renders one room's day as positioned blocks. Width defaults to
// the classic 500px canvas the web client laid events out on.
func (h *Handler) Timeline(c *gin.Context) {
	var uriReq request.ByIDRequest
	if err := c.ShouldBindUri(&uriReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	var req TimelineRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	width := req.Width
	if width == 0 {
		width = 500
	}

	entries, err := h.service.Timeline(c.Request.Context(), uriReq.ID, date, width)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]TimelineEntryResponse, len(entries))
	for i, entry := range entries {
		items[i] = NewTimelineEntryResponse(entry)
	}

	c.JSON(http.StatusOK, gin.H{"date": date.String(), "events": items})
}
