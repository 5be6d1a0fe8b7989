package calendar

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/calendar-api/internal/model"
	"github.com/clinicdesk/calendar-api/internal/service/calendarview"
	"github.com/clinicdesk/calendar-api/pkg/httputil"
)

const monthLayout = "2006-01"

type Handler struct {
	service *calendarview.Service
}

func NewHandler(service *calendarview.Service) *Handler {
	return &Handler{service: service}
}

// MonthView returns the projected month grid. month defaults to the current
// month when omitted.
func (h *Handler) MonthView(c *gin.Context) {
	monthDate := time.Now()
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse(monthLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid month format, want yyyy-MM"})
			return
		}
		monthDate = parsed
	}

	var filters model.FilterState
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid filter parameters"})
		return
	}

	view, err := h.service.MonthView(c.Request.Context(), monthDate, filters)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, view)
}

// DayView returns the single-day list. date defaults to today.
func (h *Handler) DayView(c *gin.Context) {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(model.DateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid date format, want yyyy-MM-dd"})
			return
		}
		date = parsed
	}

	var filters model.FilterState
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid filter parameters"})
		return
	}

	view, err := h.service.DayView(c.Request.Context(), date, filters)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, view)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	cal := r.Group("/calendar")
	{
		cal.GET("/month", h.MonthView)
		cal.GET("/day", h.DayView)
	}
}
