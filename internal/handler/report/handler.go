package report

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cliniccare/clinic-api/internal/handler"
	"github.com/cliniccare/clinic-api/internal/model"
	reportService "github.com/cliniccare/clinic-api/internal/service/report"
)

type Handler struct {
	reports *reportService.Service
}

func NewHandler(reports *reportService.Service) *Handler {
	return &Handler{reports: reports}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		reports.GET("/today", h.Today)
		reports.GET("/monthly", h.Monthly)
		reports.GET("/diagnoses", h.Diagnoses)
		reports.GET("/daily", h.Daily)
		reports.GET("/records", h.RecordsByRange)
	}
}

// Today returns the dashboard figures for the current local day.
func (h *Handler) Today(c *gin.Context) {
	handler.RespondOK(c, gin.H{
		"revenue": h.reports.TodayRevenue(),
		"visits":  h.reports.TodayVisitCount(),
	})
}

func (h *Handler) Monthly(c *gin.Context) {
	year, month, ok := h.yearMonth(c)
	if !ok {
		return
	}
	handler.RespondOK(c, h.reports.Monthly(year, month))
}

func (h *Handler) Diagnoses(c *gin.Context) {
	year, month, ok := h.yearMonth(c)
	if !ok {
		return
	}
	handler.RespondOK(c, h.reports.MonthlyDiagnoses(year, month))
}

func (h *Handler) Daily(c *gin.Context) {
	year, month, ok := h.yearMonth(c)
	if !ok {
		return
	}
	handler.RespondOK(c, h.reports.DailyBreakdown(year, month))
}

func (h *Handler) RecordsByRange(c *gin.Context) {
	start, err := model.ParseDate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid from date"))
		return
	}
	end, err := model.ParseDate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid to date"))
		return
	}
	handler.RespondOK(c, h.reports.RecordsByDateRange(start, end))
}

// yearMonth reads year and month query parameters, defaulting to the
// current local month.
func (h *Handler) yearMonth(c *gin.Context) (int, int, bool) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if s := c.Query("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid year"))
			return 0, 0, false
		}
		year = y
	}
	if s := c.Query("month"); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil || m < 1 || m > 12 {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid month"))
			return 0, 0, false
		}
		month = m
	}
	return year, month, true
}
