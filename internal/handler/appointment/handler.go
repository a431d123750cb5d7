package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cliniccare/clinic-api/internal/handler"
	"github.com/cliniccare/clinic-api/internal/model"
	appointmentService "github.com/cliniccare/clinic-api/internal/service/appointment"
)

type Handler struct {
	appointments *appointmentService.Service
}

func NewHandler(appointments *appointmentService.Service) *Handler {
	return &Handler{appointments: appointments}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.GET("/today", h.ListToday)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	appt, err := h.appointments.Create(&req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondCreated(c, appt)
}

// ListAppointments returns all appointments, or one day's when the
// date query parameter (YYYY-MM-DD) is present.
func (h *Handler) ListAppointments(c *gin.Context) {
	if dateStr := c.Query("date"); dateStr != "" {
		d, err := model.ParseDate(dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid date"))
			return
		}
		handler.RespondOK(c, h.appointments.ListByDate(d))
		return
	}
	handler.RespondOK(c, h.appointments.List())
}

// ListToday returns today's still-pending appointments.
func (h *Handler) ListToday(c *gin.Context) {
	handler.RespondOK(c, h.appointments.ListToday())
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	appt, err := h.appointments.Update(model.AppointmentID(c.Param("id")), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondOK(c, appt)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	if err := h.appointments.Delete(model.AppointmentID(c.Param("id"))); err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondOK(c, gin.H{"message": "appointment deleted"})
}
