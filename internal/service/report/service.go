// Package report derives dashboard and monthly-report figures from the
// record and expense collections. Every operation is a pure fold over a
// freshly loaded collection: no derived state is persisted and nothing
// is cached, so results always reflect the store at call time.
package report

import (
	"sort"
	"time"

	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/repository"
)

type Service struct {
	records  repository.TreatmentRecordRepository
	expenses repository.ExpenseRepository
}

func NewService(records repository.TreatmentRecordRepository, expenses repository.ExpenseRepository) *Service {
	return &Service{records: records, expenses: expenses}
}

// DiagnosisCount is one row of the diagnosis frequency report.
type DiagnosisCount struct {
	Diagnosis string `json:"diagnosis"`
	Count     int    `json:"count"`
}

// DailyFigure is one day's revenue and visit count within a month.
type DailyFigure struct {
	Date    model.Date `json:"date"`
	Revenue float64    `json:"revenue"`
	Visits  int        `json:"visits"`
}

// MonthlySummary bundles the monthly report numbers.
type MonthlySummary struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	Revenue      float64 `json:"revenue"`
	Visits       int     `json:"visits"`
	ExpenseTotal float64 `json:"expense_total"`
	NetProfit    float64 `json:"net_profit"`
}

func localDate(t time.Time) model.Date {
	return model.DateOf(t.In(time.Local))
}

func inMonth(t time.Time, year, month int) bool {
	d := t.In(time.Local)
	return d.Year() == year && int(d.Month()) == month
}

// TodayRevenue sums the prices of records dated today, local time.
func (s *Service) TodayRevenue() float64 {
	today := model.Today()
	var total float64
	for _, r := range s.records.List() {
		if localDate(r.Date) == today {
			total += r.Price
		}
	}
	return total
}

// TodayVisitCount counts records dated today, local time.
func (s *Service) TodayVisitCount() int {
	today := model.Today()
	count := 0
	for _, r := range s.records.List() {
		if localDate(r.Date) == today {
			count++
		}
	}
	return count
}

func (s *Service) MonthlyRevenue(year, month int) float64 {
	var total float64
	for _, r := range s.records.List() {
		if inMonth(r.Date, year, month) {
			total += r.Price
		}
	}
	return total
}

func (s *Service) MonthlyVisitCount(year, month int) int {
	count := 0
	for _, r := range s.records.List() {
		if inMonth(r.Date, year, month) {
			count++
		}
	}
	return count
}

func (s *Service) MonthlyExpenseTotal(year, month int) float64 {
	var total float64
	for _, e := range s.expenses.ListByMonth(year, month) {
		total += e.Amount
	}
	return total
}

// NetProfit is monthly revenue minus monthly expenses, signed.
func (s *Service) NetProfit(year, month int) float64 {
	return s.MonthlyRevenue(year, month) - s.MonthlyExpenseTotal(year, month)
}

// Monthly bundles the month's figures in one call.
func (s *Service) Monthly(year, month int) MonthlySummary {
	revenue := s.MonthlyRevenue(year, month)
	expenses := s.MonthlyExpenseTotal(year, month)
	return MonthlySummary{
		Year:         year,
		Month:        month,
		Revenue:      revenue,
		Visits:       s.MonthlyVisitCount(year, month),
		ExpenseTotal: expenses,
		NetProfit:    revenue - expenses,
	}
}

// DiagnosisFrequency groups non-empty diagnosis strings by exact text
// match over the given records and sorts by count descending. Ties are
// broken by diagnosis text ascending so the report is reproducible.
func (s *Service) DiagnosisFrequency(records []model.TreatmentRecord) []DiagnosisCount {
	counts := make(map[string]int)
	for _, r := range records {
		if r.Diagnosis != "" {
			counts[r.Diagnosis]++
		}
	}

	out := make([]DiagnosisCount, 0, len(counts))
	for diag, n := range counts {
		out = append(out, DiagnosisCount{Diagnosis: diag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Diagnosis < out[j].Diagnosis
	})
	return out
}

// MonthlyDiagnoses is DiagnosisFrequency restricted to one month.
func (s *Service) MonthlyDiagnoses(year, month int) []DiagnosisCount {
	var records []model.TreatmentRecord
	for _, r := range s.records.List() {
		if inMonth(r.Date, year, month) {
			records = append(records, r)
		}
	}
	return s.DiagnosisFrequency(records)
}

// DailyBreakdown returns per-day revenue and visit counts for a month,
// days in ascending order, days without visits omitted.
func (s *Service) DailyBreakdown(year, month int) []DailyFigure {
	revenue := make(map[model.Date]float64)
	visits := make(map[model.Date]int)
	for _, r := range s.records.List() {
		if !inMonth(r.Date, year, month) {
			continue
		}
		d := localDate(r.Date)
		revenue[d] += r.Price
		visits[d]++
	}

	out := make([]DailyFigure, 0, len(visits))
	for d, n := range visits {
		out = append(out, DailyFigure{Date: d, Revenue: revenue[d], Visits: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// RecordsByDateRange exposes the range listing used by the printable
// report, inclusive on both ends.
func (s *Service) RecordsByDateRange(start, end model.Date) []model.TreatmentRecord {
	return s.records.ListByDateRange(start, end)
}
