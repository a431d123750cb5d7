// Package repository defines the typed CRUD contracts over the clinic
// collections. Reads are fail-open: a missing or unreadable collection
// yields its empty value, never an error. Mutations report I/O errors,
// and Update reports ErrNotFound when the target ID is absent instead
// of silently doing nothing.
package repository

import (
	"errors"

	"github.com/cliniccare/clinic-api/internal/model"
)

// ErrNotFound is returned when an update or lookup target does not
// exist in its collection.
var ErrNotFound = errors.New("entity not found")

type PatientRepository interface {
	List() []model.Patient
	Get(id model.PatientID) (*model.Patient, error)
	Create(p model.Patient) error
	Update(p model.Patient) error
	Delete(id model.PatientID) error
}

type TreatmentRecordRepository interface {
	List() []model.TreatmentRecord
	ListByPatient(id model.PatientID) []model.TreatmentRecord
	ListByDateRange(start, end model.Date) []model.TreatmentRecord
	Create(r model.TreatmentRecord) error
	Update(r model.TreatmentRecord) error
	Delete(id model.RecordID) error
	// DeleteByPatient removes every record belonging to the patient;
	// the cascade half of patient deletion.
	DeleteByPatient(id model.PatientID) error
}

type DrugRepository interface {
	List() []model.DrugItem
	Get(id model.DrugID) (*model.DrugItem, error)
	// FindByName returns the first item whose name equals name exactly
	// (case-sensitive), or ErrNotFound.
	FindByName(name string) (*model.DrugItem, error)
	ListLowStock() []model.DrugItem
	ListExpiringWithin(days int) []model.DrugItem
	Create(d model.DrugItem) error
	Update(d model.DrugItem) error
	Delete(id model.DrugID) error
}

type PurchaseRepository interface {
	List() []model.DrugPurchase
	ListByDrug(id model.DrugID) []model.DrugPurchase
	Create(p model.DrugPurchase) error
}

type ExpenseRepository interface {
	List() []model.Expense
	ListByMonth(year int, month int) []model.Expense
	Create(e model.Expense) error
	Update(e model.Expense) error
	Delete(id model.ExpenseID) error
}

type AppointmentRepository interface {
	List() []model.Appointment
	ListByDate(d model.Date) []model.Appointment
	// ListPendingByDate returns the day's still-pending appointments,
	// the home-screen "today" view.
	ListPendingByDate(d model.Date) []model.Appointment
	Create(a model.Appointment) error
	Update(a model.Appointment) error
	Delete(id model.AppointmentID) error
}

type SettingsRepository interface {
	// Get returns the singleton settings, or the hardcoded default when
	// none are stored.
	Get() model.ClinicSettings
	Save(s model.ClinicSettings) error
	// NextReceiptNo returns the current receipt number and persists the
	// increment.
	NextReceiptNo() (uint32, error)
	// NextHN advances the legacy auto-increment HN counter and returns
	// the formatted clinic number.
	NextHN() (string, error)
}
