package clinicstore

import (
	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/repository"
	"github.com/cliniccare/clinic-api/internal/storage"
	"github.com/cliniccare/clinic-api/pkg/logger"
	"github.com/cliniccare/clinic-api/pkg/metrics"
)

type purchaseRepository struct {
	base
}

func NewPurchaseRepository(store storage.Store, log *logger.Logger, m *metrics.Metrics) repository.PurchaseRepository {
	return &purchaseRepository{base: newBase(store, log, m)}
}

func (r *purchaseRepository) List() []model.DrugPurchase {
	return readCollection[model.DrugPurchase](&r.base, storage.KeyDrugPurchases)
}

func (r *purchaseRepository) ListByDrug(id model.DrugID) []model.DrugPurchase {
	var out []model.DrugPurchase
	for _, p := range r.List() {
		if p.DrugID == id {
			out = append(out, p)
		}
	}
	return out
}

func (r *purchaseRepository) Create(p model.DrugPurchase) error {
	purchases := r.List()
	purchases = append(purchases, p)
	return writeCollection(&r.base, storage.KeyDrugPurchases, purchases)
}
