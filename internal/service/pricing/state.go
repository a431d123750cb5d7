package pricing

import "github.com/cliniccare/clinic-api/internal/model"

// FormState is the price box of one open treatment form. The total
// recomputes whenever the prescription list changes, unless the
// operator has taken over manually; clearing the override snaps the
// price back to the calculation. State is owned by the form that
// created it; nothing here is shared or persisted.
type FormState struct {
	svc      *Service
	items    []model.PrescriptionItem
	override bool
	manual   float64
}

func NewFormState(svc *Service) *FormState {
	return &FormState{svc: svc}
}

// SetItems replaces the prescription list, as when the operator adds or
// removes a line.
func (f *FormState) SetItems(items []model.PrescriptionItem) {
	f.items = items
}

// Override suspends recalculation and pins the price to value.
func (f *FormState) Override(value float64) {
	f.override = true
	f.manual = value
}

// ClearOverride resumes automatic calculation.
func (f *FormState) ClearOverride() {
	f.override = false
}

// Quote returns the current calculated and final prices.
func (f *FormState) Quote() Quote {
	return f.svc.QuoteFor(f.items, f.override, f.manual)
}

// Final is the price that would be persisted if the form were
// submitted now.
func (f *FormState) Final() float64 {
	return f.Quote().Final
}
