package clinicstore

import (
	"time"

	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/repository"
	"github.com/cliniccare/clinic-api/internal/storage"
	"github.com/cliniccare/clinic-api/pkg/logger"
	"github.com/cliniccare/clinic-api/pkg/metrics"
)

type recordRepository struct {
	base
}

func NewTreatmentRecordRepository(store storage.Store, log *logger.Logger, m *metrics.Metrics) repository.TreatmentRecordRepository {
	return &recordRepository{base: newBase(store, log, m)}
}

func (r *recordRepository) List() []model.TreatmentRecord {
	return readCollection[model.TreatmentRecord](&r.base, storage.KeyRecords)
}

func (r *recordRepository) ListByPatient(id model.PatientID) []model.TreatmentRecord {
	var out []model.TreatmentRecord
	for _, rec := range r.List() {
		if rec.PatientID == id {
			out = append(out, rec)
		}
	}
	return out
}

// ListByDateRange filters by the record's local-timezone calendar date,
// inclusive on both ends.
func (r *recordRepository) ListByDateRange(start, end model.Date) []model.TreatmentRecord {
	var out []model.TreatmentRecord
	for _, rec := range r.List() {
		d := model.DateOf(rec.Date.In(time.Local))
		if !d.Before(start) && !d.After(end) {
			out = append(out, rec)
		}
	}
	return out
}

func (r *recordRepository) Create(rec model.TreatmentRecord) error {
	records := r.List()
	records = append(records, rec)
	return writeCollection(&r.base, storage.KeyRecords, records)
}

func (r *recordRepository) Update(rec model.TreatmentRecord) error {
	records := r.List()
	for i := range records {
		if records[i].ID == rec.ID {
			records[i] = rec
			return writeCollection(&r.base, storage.KeyRecords, records)
		}
	}
	return repository.ErrNotFound
}

func (r *recordRepository) Delete(id model.RecordID) error {
	records := r.List()
	kept := records[:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	return writeCollection(&r.base, storage.KeyRecords, kept)
}

func (r *recordRepository) DeleteByPatient(id model.PatientID) error {
	records := r.List()
	kept := records[:0]
	for _, rec := range records {
		if rec.PatientID != id {
			kept = append(kept, rec)
		}
	}
	return writeCollection(&r.base, storage.KeyRecords, kept)
}
