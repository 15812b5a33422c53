package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/abdulaz06/medication-adherence-tracker/internal/auth"
	dom "github.com/abdulaz06/medication-adherence-tracker/internal/domain"
	"github.com/abdulaz06/medication-adherence-tracker/internal/dto"
	"github.com/abdulaz06/medication-adherence-tracker/internal/repo"
	"github.com/abdulaz06/medication-adherence-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// DoseLogHandler handles dose log CRUD plus the schedule and stats views.
type DoseLogHandler struct {
	svc *service.LogService
}

// NewDoseLogHandler returns a new DoseLogHandler.
func NewDoseLogHandler(svc *service.LogService) *DoseLogHandler {
	return &DoseLogHandler{svc: svc}
}

// Create godoc
// @Summary      Mark a dose as taken or skipped
// @Tags         logs
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        item_id  path  int  true  "Item ID"
// @Param        body  body      dto.CreateDoseLogRequest  true  "Dose log body"
// @Success      201   {object}  dto.DoseLogResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /logs/items/{item_id} [post]
func (h *DoseLogHandler) Create(c *gin.Context) {
	itemID, ok := parseID(c, "item_id")
	if !ok {
		return
	}
	var req dto.CreateDoseLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ScheduledDate.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scheduled_date is required"})
		return
	}
	log, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c), itemID, req.Log())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		case errors.Is(err, service.ErrDuplicateLog):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrDoseIndexRange),
			errors.Is(err, service.ErrInvalidDoseIndex),
			errors.Is(err, service.ErrSkipReasonTaken):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.NewDoseLogResponse(log))
}

// List godoc
// @Summary      List dose logs
// @Tags         logs
// @Produce      json
// @Security     CookieAuth
// @Param        start    query  string  false  "Start date (inclusive), YYYY-MM-DD"
// @Param        end      query  string  false  "End date (inclusive), YYYY-MM-DD"
// @Param        item_id  query  int     false  "Filter by item"
// @Success      200  {object}  dto.ListDoseLogsResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /logs [get]
func (h *DoseLogHandler) List(c *gin.Context) {
	var f repo.LogFilter
	if raw := c.Query("start"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start: use YYYY-MM-DD"})
			return
		}
		f.Start = &t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end: use YYYY-MM-DD"})
			return
		}
		f.End = &t
	}
	if raw := c.Query("item_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item_id"})
			return
		}
		f.ItemID = id
	}
	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.DoseLogResponse, len(list))
	for i := range list {
		out[i] = dto.NewDoseLogResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListDoseLogsResponse{Items: out})
}

// Update godoc
// @Summary      Update a dose log's status or skip reason
// @Tags         logs
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Log ID"
// @Param        body  body      dto.UpdateDoseLogRequest  true  "Partial update"
// @Success      200   {object}  dto.DoseLogResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /logs/{id} [patch]
func (h *DoseLogHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateDoseLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var status *dom.DoseStatus
	if req.Status != nil {
		s := dom.DoseStatus(*req.Status)
		status = &s
	}
	log, err := h.svc.Update(c.Request.Context(), auth.UserIDFromContext(c), id, status, req.SkipReason)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewDoseLogResponse(log))
}

// Delete godoc
// @Summary      Delete a dose log (undo a mark)
// @Tags         logs
// @Security     CookieAuth
// @Param        id   path  int  true  "Log ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /logs/{id} [delete]
func (h *DoseLogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), auth.UserIDFromContext(c), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Schedule godoc
// @Summary      Daily schedule with completion state
// @Tags         schedule
// @Produce      json
// @Security     CookieAuth
// @Param        date  query  string  false  "Date (YYYY-MM-DD), defaults to today"
// @Success      200  {object}  adherence.DailySchedule
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /schedule [get]
func (h *DoseLogHandler) Schedule(c *gin.Context) {
	var date time.Time
	if raw := c.Query("date"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date: use YYYY-MM-DD"})
			return
		}
		date = t
	}
	view, err := h.svc.Schedule(c.Request.Context(), auth.UserIDFromContext(c), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// Stats godoc
// @Summary      Adherence statistics with streaks
// @Tags         stats
// @Produce      json
// @Security     CookieAuth
// @Param        days  query  int  false  "Number of past days (1-365), default 7"
// @Success      200  {object}  adherence.Report
// @Failure      422  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /stats [get]
func (h *DoseLogHandler) Stats(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days"})
			return
		}
		days = n
	}
	rep, err := h.svc.Stats(c.Request.Context(), auth.UserIDFromContext(c), days)
	if err != nil {
		if errors.Is(err, service.ErrDaysOutOfRange) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rep)
}
