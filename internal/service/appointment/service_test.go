package appointment_test

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/repository"
	"github.com/cliniccare/clinic-api/internal/repository/clinicstore"
	"github.com/cliniccare/clinic-api/internal/service/appointment"
	"github.com/cliniccare/clinic-api/internal/storage"
	apperrors "github.com/cliniccare/clinic-api/pkg/errors"
	"github.com/cliniccare/clinic-api/pkg/logger"
	"github.com/cliniccare/clinic-api/pkg/metrics"
)

func newTestService(t *testing.T) *appointment.Service {
	t.Helper()
	store := storage.NewMemStore()
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, TimeFormat: time.RFC3339, Output: io.Discard})
	repo := clinicstore.NewAppointmentRepository(store, log, metrics.New("test"))
	return appointment.NewService(repo)
}

func create(t *testing.T, svc *appointment.Service, d model.Date) *model.Appointment {
	t.Helper()
	a, err := svc.Create(&model.CreateAppointmentRequest{
		PatientID:   model.NewID(),
		PatientName: "สมชาย ใจดี",
		Date:        d,
		Time:        "09:30",
		Reason:      "นัดฟังผล",
	})
	require.NoError(t, err)
	return a
}

func TestCreateStartsPending(t *testing.T) {
	svc := newTestService(t)
	a := create(t, svc, model.Today())
	assert.Equal(t, model.AppointmentPending, a.Status)
	assert.NotEmpty(t, a.ID)
}

func TestListTodayOnlyPending(t *testing.T) {
	svc := newTestService(t)
	a := create(t, svc, model.Today())
	create(t, svc, model.Today().AddDays(1))

	require.Len(t, svc.ListToday(), 1)

	done := model.AppointmentCompleted
	_, err := svc.Update(a.ID, &model.UpdateAppointmentRequest{Status: &done})
	require.NoError(t, err)

	assert.Empty(t, svc.ListToday())
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc := newTestService(t)
	a := create(t, svc, model.Today())

	bogus := model.AppointmentStatus("rescheduled")
	_, err := svc.Update(a.ID, &model.UpdateAppointmentRequest{Status: &bogus})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestUpdateMissingAppointment(t *testing.T) {
	svc := newTestService(t)

	note := "x"
	_, err := svc.Update(model.AppointmentID("no-such-id"), &model.UpdateAppointmentRequest{Note: &note})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
