package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/abdulaz06/medication-adherence-tracker/internal/auth"
	dom "github.com/abdulaz06/medication-adherence-tracker/internal/domain"
	"github.com/abdulaz06/medication-adherence-tracker/internal/dto"
	"github.com/abdulaz06/medication-adherence-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ItemHandler handles item CRUD.
type ItemHandler struct {
	svc *service.ItemService
}

// NewItemHandler returns a new ItemHandler.
func NewItemHandler(svc *service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// Create godoc
// @Summary      Create an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateItemRequest  true  "Item body"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c), req.Item())
	if err != nil {
		if isItemValidationErr(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.NewItemResponse(item))
}

// List godoc
// @Summary      List items
// @Tags         items
// @Produce      json
// @Security     CookieAuth
// @Param        active_only  query  bool  false  "Only active items"
// @Success      200  {object}  dto.ListItemsResponse
// @Failure      500  {object}  map[string]string
// @Router       /items [get]
func (h *ItemHandler) List(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"
	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.ItemResponse, len(list))
	for i := range list {
		out[i] = dto.NewItemResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListItemsResponse{Items: out})
}

// GetByID godoc
// @Summary      Get an item by ID
// @Tags         items
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  dto.ItemResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /items/{id} [get]
func (h *ItemHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), auth.UserIDFromContext(c), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewItemResponse(item))
}

// Update godoc
// @Summary      Update an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Item ID"
// @Param        body  body      dto.UpdateItemRequest  true  "Partial update"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /items/{id} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var itemType *dom.ItemType
	if req.Type != nil {
		t := dom.ItemType(*req.Type)
		itemType = &t
	}
	var schedule *dom.WeekdaySet
	if req.ScheduleDays != nil {
		s := dom.WeekdaySet(*req.ScheduleDays)
		schedule = &s
	}
	item, err := h.svc.Update(c.Request.Context(), auth.UserIDFromContext(c), id,
		req.Name, itemType, req.DosesPerDay, schedule, req.Notes, req.Active)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		if isItemValidationErr(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewItemResponse(item))
}

// Delete godoc
// @Summary      Delete an item
// @Tags         items
// @Security     CookieAuth
// @Param        id   path  int  true  "Item ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
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

func isItemValidationErr(err error) bool {
	return errors.Is(err, service.ErrNameRequired) ||
		errors.Is(err, service.ErrInvalidItemType) ||
		errors.Is(err, service.ErrInvalidDoses) ||
		errors.Is(err, service.ErrInvalidSchedule)
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
