package model

import "time"

// PrescriptionItem is one drug line inside a treatment record. Name is
// free text that may match a DrugItem by exact name; Amount is a
// human-readable total quantity ("10 เม็ด") whose leading numeric run is
// what pricing and the stock ledger parse. Dose fields are decimal so
// fractional doses like 1.5 tsp are representable.
type PrescriptionItem struct {
	Name         string  `json:"name"`
	Amount       string  `json:"amount"`
	Usage        string  `json:"usage"`
	DurationDays *uint32 `json:"duration_days,omitempty"`
	Morning      float64 `json:"morning"`
	Noon         float64 `json:"noon"`
	Evening      float64 `json:"evening"`
	BeforeBed    float64 `json:"before_bed"`
	Timing       string  `json:"timing"`
	Warning      string  `json:"warning"`
}

// DefaultPrescriptionItem carries the form defaults (timing: after
// meals).
func DefaultPrescriptionItem() PrescriptionItem {
	return PrescriptionItem{Timing: "หลังอาหาร"}
}

// InjectionItem is modelled for completeness; current flows never
// populate it.
type InjectionItem struct {
	Name string `json:"name"`
	Dose string `json:"dose"`
	Site string `json:"site"`
}

// TreatmentRecord is one clinic visit. PatientID is a bare reference;
// deleting a patient cascades over records, but nothing prevents a
// dangling reference created by other means.
type TreatmentRecord struct {
	ID            RecordID           `json:"id"`
	PatientID     PatientID          `json:"patient_id"`
	Date          time.Time          `json:"date"`
	Symptoms      string             `json:"symptoms"`
	Diagnosis     string             `json:"diagnosis"`
	Weight        *float32           `json:"weight,omitempty"`
	Pressure      string             `json:"pressure"`
	Prescriptions []PrescriptionItem `json:"prescriptions"`
	Injections    []InjectionItem    `json:"injections"`
	DoctorNote    string             `json:"doctor_note"`
	Price         float64            `json:"price"`
}

type CreateTreatmentRequest struct {
	PatientID     string             `json:"patient_id" binding:"required"`
	Date          *time.Time         `json:"date"`
	Symptoms      string             `json:"symptoms"`
	Diagnosis     string             `json:"diagnosis"`
	Weight        *float32           `json:"weight"`
	Pressure      string             `json:"pressure"`
	Prescriptions []PrescriptionItem `json:"prescriptions"`
	Injections    []InjectionItem    `json:"injections"`
	DoctorNote    string             `json:"doctor_note"`
	Price         float64            `json:"price"`
}
