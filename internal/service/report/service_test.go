package report_test

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/repository"
	"github.com/cliniccare/clinic-api/internal/repository/clinicstore"
	"github.com/cliniccare/clinic-api/internal/service/report"
	"github.com/cliniccare/clinic-api/internal/storage"
	"github.com/cliniccare/clinic-api/pkg/logger"
	"github.com/cliniccare/clinic-api/pkg/metrics"
)

func newTestService(t *testing.T) (*report.Service, repository.TreatmentRecordRepository, repository.ExpenseRepository) {
	t.Helper()
	store := storage.NewMemStore()
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, TimeFormat: time.RFC3339, Output: io.Discard})
	m := metrics.New("test")
	records := clinicstore.NewTreatmentRecordRepository(store, log, m)
	expenses := clinicstore.NewExpenseRepository(store, log, m)
	return report.NewService(records, expenses), records, expenses
}

func addRecord(t *testing.T, records repository.TreatmentRecordRepository, date time.Time, diagnosis string, price float64) {
	t.Helper()
	require.NoError(t, records.Create(model.TreatmentRecord{
		ID:        model.RecordID(model.NewID()),
		PatientID: model.PatientID(model.NewID()),
		Date:      date,
		Diagnosis: diagnosis,
		Price:     price,
	}))
}

func addExpense(t *testing.T, expenses repository.ExpenseRepository, date time.Time, amount float64) {
	t.Helper()
	require.NoError(t, expenses.Create(model.Expense{
		ID:          model.ExpenseID(model.NewID()),
		Date:        date,
		Category:    model.DefaultExpenseCategory,
		Description: "ทดสอบ",
		Amount:      amount,
	}))
}

func TestTodayFigures(t *testing.T) {
	svc, records, _ := newTestService(t)

	now := time.Now()
	addRecord(t, records, now, "ไข้หวัด", 150)
	addRecord(t, records, now, "ปวดหัว", 250)
	addRecord(t, records, now.AddDate(0, 0, -1), "ไข้หวัด", 400)

	assert.Equal(t, 400.0, svc.TodayRevenue())
	assert.Equal(t, 2, svc.TodayVisitCount())
}

func TestMonthlySummary(t *testing.T) {
	svc, records, expenses := newTestService(t)

	march := func(day int) time.Time {
		return time.Date(2026, time.March, day, 10, 0, 0, 0, time.Local)
	}
	addRecord(t, records, march(1), "ไข้หวัด", 150)
	addRecord(t, records, march(15), "ปวดหลัง", 350)
	addRecord(t, records, time.Date(2026, time.April, 1, 10, 0, 0, 0, time.Local), "ไข้หวัด", 500)

	addExpense(t, expenses, march(5), 1200)
	addExpense(t, expenses, march(20), 300)
	addExpense(t, expenses, time.Date(2026, time.February, 28, 10, 0, 0, 0, time.Local), 999)

	got := svc.Monthly(2026, 3)
	assert.Equal(t, 2026, got.Year)
	assert.Equal(t, 3, got.Month)
	assert.Equal(t, 500.0, got.Revenue)
	assert.Equal(t, 2, got.Visits)
	assert.Equal(t, 1500.0, got.ExpenseTotal)
	assert.Equal(t, -1000.0, got.NetProfit)

	assert.Equal(t, -1000.0, svc.NetProfit(2026, 3))
}

func TestAggregatesAreIdempotent(t *testing.T) {
	svc, records, expenses := newTestService(t)

	day := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)
	addRecord(t, records, day, "ไข้หวัด", 100)
	addExpense(t, expenses, day, 40)

	first := svc.Monthly(2026, 3)
	second := svc.Monthly(2026, 3)
	assert.Equal(t, first, second, "reporting reads must not change stored state")
	assert.Len(t, records.List(), 1)
	assert.Len(t, expenses.List(), 1)
}

func TestDiagnosisFrequencyOrdering(t *testing.T) {
	svc, records, _ := newTestService(t)

	day := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)
	addRecord(t, records, day, "ไข้หวัด", 100)
	addRecord(t, records, day, "ไข้หวัด", 100)
	addRecord(t, records, day, "ปวดหัว", 100)
	addRecord(t, records, day, "ท้องเสีย", 100)
	addRecord(t, records, day, "", 100) // empty diagnosis is not counted

	got := svc.MonthlyDiagnoses(2026, 3)
	require.Len(t, got, 3)
	assert.Equal(t, report.DiagnosisCount{Diagnosis: "ไข้หวัด", Count: 2}, got[0])
	// Ties break on diagnosis text ascending.
	assert.Equal(t, report.DiagnosisCount{Diagnosis: "ท้องเสีย", Count: 1}, got[1])
	assert.Equal(t, report.DiagnosisCount{Diagnosis: "ปวดหัว", Count: 1}, got[2])
}

func TestDailyBreakdown(t *testing.T) {
	svc, records, _ := newTestService(t)

	march := func(day, hour int) time.Time {
		return time.Date(2026, time.March, day, hour, 0, 0, 0, time.Local)
	}
	addRecord(t, records, march(20, 9), "a", 100)
	addRecord(t, records, march(5, 9), "b", 150)
	addRecord(t, records, march(5, 16), "c", 250)

	got := svc.DailyBreakdown(2026, 3)
	require.Len(t, got, 2)
	assert.Equal(t, model.NewDate(2026, time.March, 5), got[0].Date)
	assert.Equal(t, 400.0, got[0].Revenue)
	assert.Equal(t, 2, got[0].Visits)
	assert.Equal(t, model.NewDate(2026, time.March, 20), got[1].Date)
	assert.Equal(t, 100.0, got[1].Revenue)
	assert.Equal(t, 1, got[1].Visits)
}
