package clinicstore

import (
	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/repository"
	"github.com/cliniccare/clinic-api/internal/storage"
	"github.com/cliniccare/clinic-api/pkg/logger"
	"github.com/cliniccare/clinic-api/pkg/metrics"
)

type patientRepository struct {
	base
}

func NewPatientRepository(store storage.Store, log *logger.Logger, m *metrics.Metrics) repository.PatientRepository {
	return &patientRepository{base: newBase(store, log, m)}
}

func (r *patientRepository) List() []model.Patient {
	return readCollection[model.Patient](&r.base, storage.KeyPatients)
}

func (r *patientRepository) Get(id model.PatientID) (*model.Patient, error) {
	for _, p := range r.List() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *patientRepository) Create(p model.Patient) error {
	patients := r.List()
	patients = append(patients, p)
	return writeCollection(&r.base, storage.KeyPatients, patients)
}

func (r *patientRepository) Update(p model.Patient) error {
	patients := r.List()
	for i := range patients {
		if patients[i].ID == p.ID {
			patients[i] = p
			return writeCollection(&r.base, storage.KeyPatients, patients)
		}
	}
	return repository.ErrNotFound
}

func (r *patientRepository) Delete(id model.PatientID) error {
	patients := r.List()
	kept := patients[:0]
	for _, p := range patients {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return writeCollection(&r.base, storage.KeyPatients, kept)
}
