package clinicstore

import (
	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/repository"
	"github.com/cliniccare/clinic-api/internal/storage"
	"github.com/cliniccare/clinic-api/pkg/logger"
	"github.com/cliniccare/clinic-api/pkg/metrics"
)

type drugRepository struct {
	base
}

func NewDrugRepository(store storage.Store, log *logger.Logger, m *metrics.Metrics) repository.DrugRepository {
	return &drugRepository{base: newBase(store, log, m)}
}

func (r *drugRepository) List() []model.DrugItem {
	return readCollection[model.DrugItem](&r.base, storage.KeyDrugs)
}

func (r *drugRepository) Get(id model.DrugID) (*model.DrugItem, error) {
	for _, d := range r.List() {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

// FindByName matches exactly and case-sensitively; when two items share
// a name the first wins.
func (r *drugRepository) FindByName(name string) (*model.DrugItem, error) {
	for _, d := range r.List() {
		if d.Name == name {
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *drugRepository) ListLowStock() []model.DrugItem {
	var out []model.DrugItem
	for _, d := range r.List() {
		if d.LowStock() {
			out = append(out, d)
		}
	}
	return out
}

func (r *drugRepository) ListExpiringWithin(days int) []model.DrugItem {
	warningDate := model.Today().AddDays(days)
	var out []model.DrugItem
	for _, d := range r.List() {
		if d.ExpiryDate != nil && !d.ExpiryDate.After(warningDate) {
			out = append(out, d)
		}
	}
	return out
}

func (r *drugRepository) Create(d model.DrugItem) error {
	drugs := r.List()
	drugs = append(drugs, d)
	return writeCollection(&r.base, storage.KeyDrugs, drugs)
}

func (r *drugRepository) Update(d model.DrugItem) error {
	drugs := r.List()
	for i := range drugs {
		if drugs[i].ID == d.ID {
			drugs[i] = d
			return writeCollection(&r.base, storage.KeyDrugs, drugs)
		}
	}
	return repository.ErrNotFound
}

func (r *drugRepository) Delete(id model.DrugID) error {
	drugs := r.List()
	kept := drugs[:0]
	for _, d := range drugs {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	return writeCollection(&r.base, storage.KeyDrugs, kept)
}
