package clinicstore

import (
	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/repository"
	"github.com/cliniccare/clinic-api/internal/storage"
	"github.com/cliniccare/clinic-api/pkg/logger"
	"github.com/cliniccare/clinic-api/pkg/metrics"
)

type appointmentRepository struct {
	base
}

func NewAppointmentRepository(store storage.Store, log *logger.Logger, m *metrics.Metrics) repository.AppointmentRepository {
	return &appointmentRepository{base: newBase(store, log, m)}
}

func (r *appointmentRepository) List() []model.Appointment {
	return readCollection[model.Appointment](&r.base, storage.KeyAppointments)
}

func (r *appointmentRepository) ListByDate(d model.Date) []model.Appointment {
	var out []model.Appointment
	for _, a := range r.List() {
		if a.Date == d {
			out = append(out, a)
		}
	}
	return out
}

func (r *appointmentRepository) ListPendingByDate(d model.Date) []model.Appointment {
	var out []model.Appointment
	for _, a := range r.List() {
		if a.Date == d && a.Status == model.AppointmentPending {
			out = append(out, a)
		}
	}
	return out
}

func (r *appointmentRepository) Create(a model.Appointment) error {
	appointments := r.List()
	appointments = append(appointments, a)
	return writeCollection(&r.base, storage.KeyAppointments, appointments)
}

func (r *appointmentRepository) Update(a model.Appointment) error {
	appointments := r.List()
	for i := range appointments {
		if appointments[i].ID == a.ID {
			appointments[i] = a
			return writeCollection(&r.base, storage.KeyAppointments, appointments)
		}
	}
	return repository.ErrNotFound
}

func (r *appointmentRepository) Delete(id model.AppointmentID) error {
	appointments := r.List()
	kept := appointments[:0]
	for _, a := range appointments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	return writeCollection(&r.base, storage.KeyAppointments, kept)
}
