package clinicsettings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cliniccare/clinic-api/internal/handler"
	"github.com/cliniccare/clinic-api/internal/model"
	settingsService "github.com/cliniccare/clinic-api/internal/service/clinicsettings"
)

// Backuper is the whole-file backup surface of the file storage
// backend. The badger backend does not provide it; backup routes are
// simply not registered then.
type Backuper interface {
	DataPath() string
	CreateBackup() (string, error)
	ListBackups() ([]string, error)
	RestoreBackup(name string) (string, error)
}

type Handler struct {
	settings *settingsService.Service
	backups  Backuper
}

// NewHandler builds the settings handler; backups may be nil.
func NewHandler(settings *settingsService.Service, backups Backuper) *Handler {
	return &Handler{settings: settings, backups: backups}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	settings := r.Group("/settings")
	{
		settings.GET("", h.GetSettings)
		settings.PUT("", h.SaveSettings)
		settings.POST("/receipt-no", h.NextReceiptNo)
		settings.POST("/next-hn", h.NextHN)
	}

	if h.backups != nil {
		backups := r.Group("/backups")
		{
			backups.POST("", h.CreateBackup)
			backups.GET("", h.ListBackups)
			backups.POST("/:name/restore", h.RestoreBackup)
		}
	}
}

func (h *Handler) GetSettings(c *gin.Context) {
	resp := gin.H{"settings": h.settings.Get()}
	if h.backups != nil {
		resp["data_path"] = h.backups.DataPath()
	}
	handler.RespondOK(c, resp)
}

func (h *Handler) SaveSettings(c *gin.Context) {
	var settings model.ClinicSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.settings.Save(settings); err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondOK(c, settings)
}

// NextReceiptNo reserves and returns the next receipt number.
func (h *Handler) NextReceiptNo(c *gin.Context) {
	n, err := h.settings.NextReceiptNo()
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondOK(c, gin.H{"receipt_no": n})
}

// NextHN generates a clinic number from the legacy counter.
func (h *Handler) NextHN(c *gin.Context) {
	hn, err := h.settings.NextHN()
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondOK(c, gin.H{"hn": hn})
}

func (h *Handler) CreateBackup(c *gin.Context) {
	path, err := h.backups.CreateBackup()
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondCreated(c, gin.H{"path": path})
}

func (h *Handler) ListBackups(c *gin.Context) {
	names, err := h.backups.ListBackups()
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondOK(c, names)
}

func (h *Handler) RestoreBackup(c *gin.Context) {
	if _, err := h.backups.RestoreBackup(c.Param("name")); err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondOK(c, gin.H{"message": "backup restored"})
}
