package expense

import (
	"fmt"
	"time"

	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/repository"
)

type Service struct {
	expenses repository.ExpenseRepository
}

func NewService(expenses repository.ExpenseRepository) *Service {
	return &Service{expenses: expenses}
}

func (s *Service) Create(req *model.CreateExpenseRequest) (*model.Expense, error) {
	expense := model.Expense{
		ID:          model.ExpenseID(model.NewID()),
		Date:        time.Now(),
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Note:        req.Note,
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if expense.Category == "" {
		expense.Category = model.DefaultExpenseCategory
	}

	if err := s.expenses.Create(expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return &expense, nil
}

func (s *Service) List() []model.Expense {
	return s.expenses.List()
}

func (s *Service) ListByMonth(year int, month int) []model.Expense {
	return s.expenses.ListByMonth(year, month)
}

func (s *Service) Delete(id model.ExpenseID) error {
	return s.expenses.Delete(id)
}
