package drug

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cliniccare/clinic-api/internal/handler"
	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/service/inventory"
)

type Handler struct {
	inventory *inventory.Service
}

func NewHandler(inv *inventory.Service) *Handler {
	return &Handler{inventory: inv}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	drugs := r.Group("/drugs")
	{
		drugs.POST("", h.CreateDrug)
		drugs.GET("", h.ListDrugs)
		drugs.GET("/low-stock", h.ListLowStock)
		drugs.GET("/expiring", h.ListExpiring)
		drugs.GET("/:id", h.GetDrug)
		drugs.PUT("/:id", h.UpdateDrug)
		drugs.DELETE("/:id", h.DeleteDrug)
		drugs.GET("/:id/purchases", h.ListDrugPurchases)
	}

	purchases := r.Group("/purchases")
	{
		purchases.POST("", h.RecordPurchase)
		purchases.GET("", h.ListPurchases)
	}
}

func (h *Handler) CreateDrug(c *gin.Context) {
	var req model.CreateDrugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	drug, err := h.inventory.CreateDrug(&req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondCreated(c, drug)
}

func (h *Handler) ListDrugs(c *gin.Context) {
	handler.RespondOK(c, h.inventory.ListDrugs())
}

func (h *Handler) ListLowStock(c *gin.Context) {
	handler.RespondOK(c, h.inventory.ListLowStock())
}

func (h *Handler) ListExpiring(c *gin.Context) {
	handler.RespondOK(c, h.inventory.ListExpiring())
}

func (h *Handler) GetDrug(c *gin.Context) {
	drug, err := h.inventory.GetDrug(model.DrugID(c.Param("id")))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondOK(c, drug)
}

func (h *Handler) UpdateDrug(c *gin.Context) {
	var drug model.DrugItem
	if err := c.ShouldBindJSON(&drug); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	drug.ID = model.DrugID(c.Param("id"))

	if err := h.inventory.UpdateDrug(drug); err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondOK(c, drug)
}

func (h *Handler) DeleteDrug(c *gin.Context) {
	if err := h.inventory.DeleteDrug(model.DrugID(c.Param("id"))); err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondOK(c, gin.H{"message": "drug deleted"})
}

// RecordPurchase appends a restock event; the matched drug's stock and
// expiry date are updated as a side effect.
func (h *Handler) RecordPurchase(c *gin.Context) {
	var req model.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	purchase, err := h.inventory.RecordPurchase(&req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondCreated(c, purchase)
}

func (h *Handler) ListPurchases(c *gin.Context) {
	handler.RespondOK(c, h.inventory.ListPurchases())
}

func (h *Handler) ListDrugPurchases(c *gin.Context) {
	handler.RespondOK(c, h.inventory.ListPurchasesByDrug(model.DrugID(c.Param("id"))))
}
