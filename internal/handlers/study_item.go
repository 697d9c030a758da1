package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/harukimori/study-log-api/internal/errors"
	"github.com/harukimori/study-log-api/internal/middleware"
	"github.com/harukimori/study-log-api/internal/services"
)

// StudyItemHandler coordinates study-item HTTP handlers.
type StudyItemHandler struct {
	itemService *services.StudyItemService
}

// NewStudyItemHandler creates a new StudyItemHandler.
func NewStudyItemHandler(itemService *services.StudyItemService) *StudyItemHandler {
	return &StudyItemHandler{itemService: itemService}
}

// studyItemRequest is the shared body for create and update
type studyItemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// ListStudyItems returns the caller's study items, newest first.
func (h *StudyItemHandler) ListStudyItems(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	items, err := h.itemService.List(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch study items", err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateStudyItem creates a new study item for the caller.
func (h *StudyItemHandler) CreateStudyItem(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req studyItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.Create(userID, services.StudyItemInput{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		respondStudyItemError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": item})
}

// UpdateStudyItem replaces the name and category of an item.
func (h *StudyItemHandler) UpdateStudyItem(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req studyItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.Update(id, userID, services.StudyItemInput{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		respondStudyItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

// DeleteStudyItem removes an item and its logs.
func (h *StudyItemHandler) DeleteStudyItem(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.itemService.Delete(id, userID); err != nil {
		respondStudyItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Study item deleted"})
}

func respondStudyItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrItemFieldsRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrDuplicateItem):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrItemNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error", err)
	}
}

// parseIDParam reads the :id path segment; a malformed ID can never match
// a record, so it answers 404 like any other missing resource
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		apierrors.NotFound(c, "Resource not found")
		return 0, false
	}
	return id, true
}
