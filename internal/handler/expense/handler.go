package expense

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cliniccare/clinic-api/internal/handler"
	"github.com/cliniccare/clinic-api/internal/model"
	expenseService "github.com/cliniccare/clinic-api/internal/service/expense"
)

type Handler struct {
	expenses *expenseService.Service
}

func NewHandler(expenses *expenseService.Service) *Handler {
	return &Handler{expenses: expenses}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	expenses := r.Group("/expenses")
	{
		expenses.POST("", h.CreateExpense)
		expenses.GET("", h.ListExpenses)
		expenses.DELETE("/:id", h.DeleteExpense)
	}
}

func (h *Handler) CreateExpense(c *gin.Context) {
	var req model.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	expense, err := h.expenses.Create(&req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondCreated(c, expense)
}

// ListExpenses returns all expenses, or one month's when year and month
// query parameters are present.
func (h *Handler) ListExpenses(c *gin.Context) {
	yearStr, monthStr := c.Query("year"), c.Query("month")
	if yearStr == "" && monthStr == "" {
		handler.RespondOK(c, h.expenses.List())
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid year"))
		return
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid month"))
		return
	}
	handler.RespondOK(c, h.expenses.ListByMonth(year, month))
}

func (h *Handler) DeleteExpense(c *gin.Context) {
	if err := h.expenses.Delete(model.ExpenseID(c.Param("id"))); err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondOK(c, gin.H{"message": "expense deleted"})
}
