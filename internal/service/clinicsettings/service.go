package clinicsettings

import (
	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/repository"
)

type Service struct {
	settings repository.SettingsRepository
}

func NewService(settings repository.SettingsRepository) *Service {
	return &Service{settings: settings}
}

func (s *Service) Get() model.ClinicSettings {
	return s.settings.Get()
}

func (s *Service) Save(settings model.ClinicSettings) error {
	return s.settings.Save(settings)
}

// NextReceiptNo hands out the next receipt number for a printed
// receipt.
func (s *Service) NextReceiptNo() (uint32, error) {
	return s.settings.NextReceiptNo()
}

// NextHN generates a clinic number from the legacy auto-increment
// counter, for clinics that let the app assign HNs.
func (s *Service) NextHN() (string, error) {
	return s.settings.NextHN()
}
