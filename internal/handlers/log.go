package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/harukimori/study-log-api/internal/errors"
	"github.com/harukimori/study-log-api/internal/middleware"
	"github.com/harukimori/study-log-api/internal/services"
	"github.com/harukimori/study-log-api/internal/utils"
)

// LogHandler coordinates study-log HTTP handlers.
type LogHandler struct {
	logService *services.LogService
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(logService *services.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// logRequest is the shared body for create and update
type logRequest struct {
	StudyItemID uint64   `json:"studyItemId"`
	Date        string   `json:"date"`
	Content     string   `json:"content"`
	Duration    int      `json:"duration"`
	Memo        string   `json:"memo"`
	Tags        []string `json:"tags"`
}

func (r logRequest) toInput() services.LogInput {
	return services.LogInput{
		StudyItemID: r.StudyItemID,
		Date:        r.Date,
		Content:     r.Content,
		Duration:    r.Duration,
		Memo:        r.Memo,
		Tags:        r.Tags,
	}
}

// ListLogs returns the caller's logs, filterable by study item, inclusive
// date range and result limit.
func (h *LogHandler) ListLogs(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	input := services.ListLogsInput{
		UserID: userID,
		Limit:  utils.GetLimitParam(c),
	}

	if raw := c.Query("studyItemId"); raw != "" {
		itemID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid studyItemId")
			return
		}
		input.StudyItemID = &itemID
	}
	if raw := c.Query("startDate"); raw != "" {
		date, err := utils.NormalizeDate(raw)
		if err != nil {
			apierrors.BadRequest(c, "Invalid startDate")
			return
		}
		input.StartDate = &date
	}
	if raw := c.Query("endDate"); raw != "" {
		date, err := utils.NormalizeDate(raw)
		if err != nil {
			apierrors.BadRequest(c, "Invalid endDate")
			return
		}
		input.EndDate = &date
	}

	logs, err := h.logService.List(input)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch logs", err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

// CreateLog records a new study session.
func (h *LogHandler) CreateLog(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req logRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	log, err := h.logService.Create(userID, req.toInput())
	if err != nil {
		respondLogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": log})
}

// UpdateLog replaces every field of an existing log.
func (h *LogHandler) UpdateLog(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req logRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	log, err := h.logService.Update(id, userID, req.toInput())
	if err != nil {
		respondLogError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": log})
}

// DeleteLog removes a log entry.
func (h *LogHandler) DeleteLog(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.logService.Delete(id, userID); err != nil {
		respondLogError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Log deleted"})
}

func respondLogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrLogFieldsRequired),
		errors.Is(err, services.ErrDurationInvalid),
		errors.Is(err, services.ErrDateInvalid):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrLogNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error", err)
	}
}
