package clinicstore

import (
	"errors"
	"time"

	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/repository"
	"github.com/cliniccare/clinic-api/internal/storage"
	"github.com/cliniccare/clinic-api/pkg/logger"
	"github.com/cliniccare/clinic-api/pkg/metrics"
	"github.com/cliniccare/clinic-api/pkg/thaitext"
)

type settingsRepository struct {
	base
}

func NewSettingsRepository(store storage.Store, log *logger.Logger, m *metrics.Metrics) repository.SettingsRepository {
	return &settingsRepository{base: newBase(store, log, m)}
}

func (r *settingsRepository) Get() model.ClinicSettings {
	settings := model.DefaultSettings()
	start := time.Now()
	err := r.store.Read(storage.KeySettings, &settings)
	r.m.StoreLatency.WithLabelValues("read").Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		r.m.StoreReads.WithLabelValues(storage.KeySettings, "ok").Inc()
	case errors.Is(err, storage.ErrKeyNotFound):
		r.m.StoreReads.WithLabelValues(storage.KeySettings, "missing").Inc()
		return model.DefaultSettings()
	default:
		r.m.StoreReads.WithLabelValues(storage.KeySettings, "corrupt").Inc()
		r.m.CorruptReads.WithLabelValues(storage.KeySettings).Inc()
		r.log.Error(err, "settings unreadable, using defaults")
		return model.DefaultSettings()
	}
	return settings
}

func (r *settingsRepository) Save(s model.ClinicSettings) error {
	if err := r.store.Write(storage.KeySettings, s); err != nil {
		r.m.StoreWrites.WithLabelValues(storage.KeySettings, "error").Inc()
		return err
	}
	r.m.StoreWrites.WithLabelValues(storage.KeySettings, "ok").Inc()
	return nil
}

// NextReceiptNo hands out the current receipt number and persists the
// increment, so consecutive receipts never share a number.
func (r *settingsRepository) NextReceiptNo() (uint32, error) {
	settings := r.Get()
	n := settings.NextReceiptNo
	settings.NextReceiptNo = n + 1
	if err := r.Save(settings); err != nil {
		return 0, err
	}
	return n, nil
}

// NextHN advances the legacy clinic-number counter kept under its own
// key and formats it as HN-00001 style.
func (r *settingsRepository) NextHN() (string, error) {
	var last uint32
	if err := r.store.Read(storage.KeyLastHN, &last); err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		r.log.Error(err, "HN counter unreadable, restarting from zero")
	}
	next := last + 1
	if err := r.store.Write(storage.KeyLastHN, next); err != nil {
		return "", err
	}
	return thaitext.FormatHN(next), nil
}
