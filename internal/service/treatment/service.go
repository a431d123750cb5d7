// Package treatment records clinic visits. Saving a record is the one
// place where several entities meet: the prescription lines are pushed
// through the stock ledger and the record is appended with whatever
// price, calculated or manually overridden, the form held at submit.
package treatment

import (
	"fmt"
	"time"

	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/repository"
	"github.com/cliniccare/clinic-api/internal/service/inventory"
	"github.com/cliniccare/clinic-api/pkg/logger"
)

type Service struct {
	records   repository.TreatmentRecordRepository
	inventory *inventory.Service
	log       *logger.Logger
}

func NewService(records repository.TreatmentRecordRepository, inv *inventory.Service, log *logger.Logger) *Service {
	return &Service{records: records, inventory: inv, log: log}
}

// Save dispenses every prescription line and appends the record. A
// dispense failure is logged but does not block the save.
func (s *Service) Save(req *model.CreateTreatmentRequest) (*model.TreatmentRecord, error) {
	record := model.TreatmentRecord{
		ID:            model.RecordID(model.NewID()),
		PatientID:     model.PatientID(req.PatientID),
		Date:          time.Now(),
		Symptoms:      req.Symptoms,
		Diagnosis:     req.Diagnosis,
		Weight:        req.Weight,
		Pressure:      req.Pressure,
		Prescriptions: req.Prescriptions,
		Injections:    req.Injections,
		DoctorNote:    req.DoctorNote,
		Price:         req.Price,
	}
	if req.Date != nil {
		record.Date = *req.Date
	}
	if record.Prescriptions == nil {
		record.Prescriptions = []model.PrescriptionItem{}
	}
	if record.Injections == nil {
		record.Injections = []model.InjectionItem{}
	}

	if err := s.inventory.DispenseAll(record.Prescriptions); err != nil {
		s.log.Error(err, "stock decrement failed, saving record anyway", "record_id", record.ID)
	}

	if err := s.records.Create(record); err != nil {
		return nil, fmt.Errorf("save treatment record: %w", err)
	}
	return &record, nil
}

func (s *Service) List() []model.TreatmentRecord {
	return s.records.List()
}

func (s *Service) ListByPatient(id model.PatientID) []model.TreatmentRecord {
	return s.records.ListByPatient(id)
}

func (s *Service) ListByDateRange(start, end model.Date) []model.TreatmentRecord {
	return s.records.ListByDateRange(start, end)
}

func (s *Service) Update(record model.TreatmentRecord) error {
	return s.records.Update(record)
}

func (s *Service) Delete(id model.RecordID) error {
	return s.records.Delete(id)
}
