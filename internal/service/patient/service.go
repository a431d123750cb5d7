package patient

import (
	"fmt"
	"strings"
	"time"

	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/repository"
	"github.com/cliniccare/clinic-api/pkg/logger"
)

type Service struct {
	patients repository.PatientRepository
	records  repository.TreatmentRecordRepository
	log      *logger.Logger
}

func NewService(patients repository.PatientRepository, records repository.TreatmentRecordRepository, log *logger.Logger) *Service {
	return &Service{patients: patients, records: records, log: log}
}

func (s *Service) Create(req *model.CreatePatientRequest) (*model.Patient, error) {
	patient := model.Patient{
		ID:                model.PatientID(model.NewID()),
		HN:                req.HN,
		CitizenID:         req.CitizenID,
		Title:             req.Title,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		BirthDate:         req.BirthDate,
		Age:               req.Age,
		BloodGroup:        req.BloodGroup,
		UnderlyingDisease: req.UnderlyingDisease,
		DrugAllergy:       req.DrugAllergy,
		Phone:             req.Phone,
		Address:           req.Address,
		CreatedAt:         time.Now(),
	}
	if err := s.patients.Create(patient); err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return &patient, nil
}

func (s *Service) Get(id model.PatientID) (*model.Patient, error) {
	return s.patients.Get(id)
}

func (s *Service) List() []model.Patient {
	return s.patients.List()
}

// Search filters patients by a case-insensitive substring of HN,
// citizen ID, name or phone.
func (s *Service) Search(query string) []model.Patient {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.patients.List()
	}
	var out []model.Patient
	for _, p := range s.patients.List() {
		haystack := strings.ToLower(strings.Join([]string{
			p.HN, p.CitizenID, p.FirstName, p.LastName, p.Phone,
		}, " "))
		if strings.Contains(haystack, q) {
			out = append(out, p)
		}
	}
	return out
}

// Update applies the non-nil request fields to the stored patient. HN
// is immutable by convention and is not updatable here.
func (s *Service) Update(id model.PatientID, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.patients.Get(id)
	if err != nil {
		return nil, err
	}

	if req.CitizenID != nil {
		patient.CitizenID = *req.CitizenID
	}
	if req.Title != nil {
		patient.Title = *req.Title
	}
	if req.FirstName != nil {
		patient.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		patient.LastName = *req.LastName
	}
	if req.BirthDate != nil {
		patient.BirthDate = req.BirthDate
	}
	if req.Age != nil {
		patient.Age = req.Age
	}
	if req.BloodGroup != nil {
		patient.BloodGroup = *req.BloodGroup
	}
	if req.UnderlyingDisease != nil {
		patient.UnderlyingDisease = *req.UnderlyingDisease
	}
	if req.DrugAllergy != nil {
		patient.DrugAllergy = *req.DrugAllergy
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}

	if err := s.patients.Update(*patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Delete removes the patient and then every treatment record that
// references them. The two collection writes are separate and not
// transactional; a crash between them orphans records, which
// patient-scoped listings never return.
func (s *Service) Delete(id model.PatientID) error {
	if err := s.patients.Delete(id); err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if err := s.records.DeleteByPatient(id); err != nil {
		return fmt.Errorf("delete patient records: %w", err)
	}
	return nil
}
