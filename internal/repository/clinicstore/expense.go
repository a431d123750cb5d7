package clinicstore

import (
	"time"

	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/repository"
	"github.com/cliniccare/clinic-api/internal/storage"
	"github.com/cliniccare/clinic-api/pkg/logger"
	"github.com/cliniccare/clinic-api/pkg/metrics"
)

type expenseRepository struct {
	base
}

func NewExpenseRepository(store storage.Store, log *logger.Logger, m *metrics.Metrics) repository.ExpenseRepository {
	return &expenseRepository{base: newBase(store, log, m)}
}

func (r *expenseRepository) List() []model.Expense {
	return readCollection[model.Expense](&r.base, storage.KeyExpenses)
}

// ListByMonth filters by the expense's local-timezone year and month.
func (r *expenseRepository) ListByMonth(year int, month int) []model.Expense {
	var out []model.Expense
	for _, e := range r.List() {
		d := e.Date.In(time.Local)
		if d.Year() == year && int(d.Month()) == month {
			out = append(out, e)
		}
	}
	return out
}

func (r *expenseRepository) Create(e model.Expense) error {
	expenses := r.List()
	expenses = append(expenses, e)
	return writeCollection(&r.base, storage.KeyExpenses, expenses)
}

func (r *expenseRepository) Update(e model.Expense) error {
	expenses := r.List()
	for i := range expenses {
		if expenses[i].ID == e.ID {
			expenses[i] = e
			return writeCollection(&r.base, storage.KeyExpenses, expenses)
		}
	}
	return repository.ErrNotFound
}

func (r *expenseRepository) Delete(id model.ExpenseID) error {
	expenses := r.List()
	kept := expenses[:0]
	for _, e := range expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return writeCollection(&r.base, storage.KeyExpenses, kept)
}
