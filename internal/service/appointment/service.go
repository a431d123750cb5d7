package appointment

import (
	"fmt"

	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/repository"
	"github.com/cliniccare/clinic-api/pkg/errors"
)

type Service struct {
	appointments repository.AppointmentRepository
}

func NewService(appointments repository.AppointmentRepository) *Service {
	return &Service{appointments: appointments}
}

func (s *Service) Create(req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	appt := model.Appointment{
		ID:          model.AppointmentID(model.NewID()),
		PatientID:   model.PatientID(req.PatientID),
		PatientName: req.PatientName,
		Date:        req.Date,
		Time:        req.Time,
		Reason:      req.Reason,
		Status:      model.AppointmentPending,
		Note:        req.Note,
	}
	if err := s.appointments.Create(appt); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return &appt, nil
}

func (s *Service) List() []model.Appointment {
	return s.appointments.List()
}

func (s *Service) ListByDate(d model.Date) []model.Appointment {
	return s.appointments.ListByDate(d)
}

func (s *Service) ListToday() []model.Appointment {
	return s.appointments.ListPendingByDate(model.Today())
}

func (s *Service) Update(id model.AppointmentID, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	var target *model.Appointment
	for _, a := range s.appointments.List() {
		if a.ID == id {
			target = &a
			break
		}
	}
	if target == nil {
		return nil, repository.ErrNotFound
	}

	if req.Date != nil {
		target.Date = *req.Date
	}
	if req.Time != nil {
		target.Time = *req.Time
	}
	if req.Reason != nil {
		target.Reason = *req.Reason
	}
	if req.Note != nil {
		target.Note = *req.Note
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, errors.BadRequest(fmt.Sprintf("invalid appointment status %q", *req.Status), nil)
		}
		target.Status = *req.Status
	}

	if err := s.appointments.Update(*target); err != nil {
		return nil, err
	}
	return target, nil
}

func (s *Service) Delete(id model.AppointmentID) error {
	return s.appointments.Delete(id)
}
