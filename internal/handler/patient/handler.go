package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cliniccare/clinic-api/internal/handler"
	"github.com/cliniccare/clinic-api/internal/model"
	patientService "github.com/cliniccare/clinic-api/internal/service/patient"
	treatmentService "github.com/cliniccare/clinic-api/internal/service/treatment"
)

type Handler struct {
	patients   *patientService.Service
	treatments *treatmentService.Service
}

func NewHandler(patients *patientService.Service, treatments *treatmentService.Service) *Handler {
	return &Handler{patients: patients, treatments: treatments}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.POST("", h.CreatePatient)
		patients.GET("", h.ListPatients)
		patients.GET("/:id", h.GetPatient)
		patients.PUT("/:id", h.UpdatePatient)
		patients.DELETE("/:id", h.DeletePatient)

		patients.GET("/:id/records", h.ListPatientRecords)
	}
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	patient, err := h.patients.Create(&req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondCreated(c, patient)
}

func (h *Handler) GetPatient(c *gin.Context) {
	patient, err := h.patients.Get(model.PatientID(c.Param("id")))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondOK(c, patient)
}

// ListPatients returns all patients, or a filtered set when the q
// query parameter is present.
func (h *Handler) ListPatients(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		handler.RespondOK(c, h.patients.Search(q))
		return
	}
	handler.RespondOK(c, h.patients.List())
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	var req model.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	patient, err := h.patients.Update(model.PatientID(c.Param("id")), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondOK(c, patient)
}

// DeletePatient removes the patient and cascades over their treatment
// records.
func (h *Handler) DeletePatient(c *gin.Context) {
	if err := h.patients.Delete(model.PatientID(c.Param("id"))); err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondOK(c, gin.H{"message": "patient deleted"})
}

func (h *Handler) ListPatientRecords(c *gin.Context) {
	records := h.treatments.ListByPatient(model.PatientID(c.Param("id")))
	if records == nil {
		records = []model.TreatmentRecord{}
	}
	handler.RespondOK(c, records)
}
