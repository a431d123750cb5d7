package model

// AppointmentStatus is a closed enumeration at the repository boundary.
// It persists as its plain string form, so documents written by older
// app versions remain readable.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the closed set.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentPending, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment is a scheduled visit. PatientName is denormalised for
// display and is not kept in sync with the patient record.
type Appointment struct {
	ID          AppointmentID     `json:"id"`
	PatientID   PatientID         `json:"patient_id"`
	PatientName string            `json:"patient_name"`
	Date        Date              `json:"date"`
	Time        string            `json:"time"`
	Reason      string            `json:"reason"`
	Status      AppointmentStatus `json:"status"`
	Note        string            `json:"note"`
}

type CreateAppointmentRequest struct {
	PatientID   string `json:"patient_id" binding:"required"`
	PatientName string `json:"patient_name" binding:"required"`
	Date        Date   `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required,clocktime"`
	Reason      string `json:"reason"`
	Note        string `json:"note"`
}

type UpdateAppointmentRequest struct {
	Date   *Date              `json:"date"`
	Time   *string            `json:"time" binding:"omitempty,clocktime"`
	Reason *string            `json:"reason"`
	Status *AppointmentStatus `json:"status"`
	Note   *string            `json:"note"`
}
