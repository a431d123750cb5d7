package clinicstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/repository/clinicstore"
)

func TestAppointmentListByDate(t *testing.T) {
	store, log, m := testDeps()
	repo := clinicstore.NewAppointmentRepository(store, log, m)

	day := model.NewDate(2026, time.April, 9)
	add := func(d model.Date, status model.AppointmentStatus, name string) {
		require.NoError(t, repo.Create(model.Appointment{
			ID:          model.AppointmentID(model.NewID()),
			PatientID:   model.PatientID(model.NewID()),
			PatientName: name,
			Date:        d,
			Time:        "09:30",
			Status:      status,
		}))
	}

	add(day, model.AppointmentPending, "pending-today")
	add(day, model.AppointmentCompleted, "done-today")
	add(day, model.AppointmentCancelled, "cancelled-today")
	add(day.AddDays(1), model.AppointmentPending, "pending-tomorrow")

	all := repo.ListByDate(day)
	assert.Len(t, all, 3)

	pending := repo.ListPendingByDate(day)
	require.Len(t, pending, 1)
	assert.Equal(t, "pending-today", pending[0].PatientName)
}

func TestAppointmentStatusTransition(t *testing.T) {
	store, log, m := testDeps()
	repo := clinicstore.NewAppointmentRepository(store, log, m)

	a := model.Appointment{
		ID:          model.AppointmentID(model.NewID()),
		PatientID:   model.PatientID(model.NewID()),
		PatientName: "สมหญิง",
		Date:        model.Today(),
		Time:        "10:00",
		Status:      model.AppointmentPending,
	}
	require.NoError(t, repo.Create(a))

	a.Status = model.AppointmentCompleted
	require.NoError(t, repo.Update(a))

	assert.Empty(t, repo.ListPendingByDate(model.Today()))
	all := repo.List()
	require.Len(t, all, 1)
	assert.Equal(t, model.AppointmentCompleted, all[0].Status)
}
