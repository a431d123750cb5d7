package treatment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cliniccare/clinic-api/internal/handler"
	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/service/pricing"
	treatmentService "github.com/cliniccare/clinic-api/internal/service/treatment"
)

type Handler struct {
	treatments *treatmentService.Service
	pricing    *pricing.Service
}

func NewHandler(treatments *treatmentService.Service, pricingSvc *pricing.Service) *Handler {
	return &Handler{treatments: treatments, pricing: pricingSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	treatments := r.Group("/treatments")
	{
		treatments.POST("", h.CreateTreatment)
		treatments.GET("", h.ListTreatments)
		treatments.PUT("/:id", h.UpdateTreatment)
		treatments.DELETE("/:id", h.DeleteTreatment)
		treatments.POST("/quote", h.QuotePrice)
	}
}

// CreateTreatment saves a visit: prescriptions are pushed through the
// stock ledger and the record is stored with the submitted price.
func (h *Handler) CreateTreatment(c *gin.Context) {
	var req model.CreateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	record, err := h.treatments.Save(&req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondCreated(c, record)
}

// ListTreatments returns all records, or a date-range slice when from
// and to query parameters are present (YYYY-MM-DD, inclusive).
func (h *Handler) ListTreatments(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" && to == "" {
		handler.RespondOK(c, h.treatments.List())
		return
	}

	start, err := model.ParseDate(from)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid from date"))
		return
	}
	end, err := model.ParseDate(to)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid to date"))
		return
	}
	handler.RespondOK(c, h.treatments.ListByDateRange(start, end))
}

func (h *Handler) UpdateTreatment(c *gin.Context) {
	var record model.TreatmentRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	record.ID = model.RecordID(c.Param("id"))

	if err := h.treatments.Update(record); err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondOK(c, record)
}

func (h *Handler) DeleteTreatment(c *gin.Context) {
	if err := h.treatments.Delete(model.RecordID(c.Param("id"))); err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondOK(c, gin.H{"message": "record deleted"})
}

type quoteRequest struct {
	Prescriptions []model.PrescriptionItem `json:"prescriptions"`
	Override      bool                     `json:"override"`
	OverridePrice float64                  `json:"override_price"`
}

// QuotePrice prices a prescription list for the open treatment form
// without saving anything. Each request reconstructs the form's price
// box from the submitted lines and override; the form itself lives in
// the UI.
func (h *Handler) QuotePrice(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	form := pricing.NewFormState(h.pricing)
	form.SetItems(req.Prescriptions)
	if req.Override {
		form.Override(req.OverridePrice)
	}
	handler.RespondOK(c, form.Quote())
}
