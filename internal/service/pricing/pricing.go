// Package pricing derives a treatment's payable total from inventory
// sell prices and prescribed quantities, with a per-visit manual
// override.
package pricing

import (
	"strconv"
	"strings"

	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/repository"
	"github.com/cliniccare/clinic-api/pkg/metrics"
)

// ParseQuantity extracts the leading numeric run from a free-text
// amount string like "10 เม็ด" or "1.5 ซอง": ASCII digits with at most
// one decimal point, stopping at the first other character. A string
// with no leading digit parses as 0.
func ParseQuantity(s string) float64 {
	end := 0
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot && end > 0 {
			seenDot = true
			end++
			continue
		}
		break
	}
	run := strings.TrimSuffix(s[:end], ".")
	if run == "" {
		return 0
	}
	q, err := strconv.ParseFloat(run, 64)
	if err != nil {
		return 0
	}
	return q
}

// HasQuantity reports whether an amount string carries a leading
// numeric run at all. It separates an explicit "0 เม็ด" from free text
// like "ตามอาการ"; only the latter counts as a parse fallback.
func HasQuantity(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

// Quote is the outcome of pricing one treatment form. Final tracks
// Calculated unless the operator has overridden it.
type Quote struct {
	Calculated float64 `json:"calculated"`
	Final      float64 `json:"final"`
	Overridden bool    `json:"overridden"`
}

type Service struct {
	serviceFee float64
	drugs      repository.DrugRepository
	m          *metrics.Metrics
}

// NewService builds a pricing service. serviceFee is the flat charge
// added to every treatment regardless of drugs dispensed.
func NewService(serviceFee float64, drugs repository.DrugRepository, m *metrics.Metrics) *Service {
	return &Service{serviceFee: serviceFee, drugs: drugs, m: m}
}

func (s *Service) ServiceFee() float64 {
	return s.serviceFee
}

// Calculate returns service fee + Σ(sell price × parsed quantity) over
// the prescription lines. Lines whose drug name matches nothing in
// inventory, or whose amount has no parsable quantity, contribute zero;
// the record is priced with what can be priced rather than rejected.
func (s *Service) Calculate(items []model.PrescriptionItem) float64 {
	total := s.serviceFee
	for _, item := range items {
		qty := ParseQuantity(item.Amount)
		if qty == 0 {
			if strings.TrimSpace(item.Amount) != "" && !HasQuantity(item.Amount) {
				s.m.ParseFallbacks.Inc()
			}
			continue
		}
		drug, err := s.drugs.FindByName(item.Name)
		if err != nil {
			continue
		}
		total += drug.SellPrice * qty
	}
	return total
}

// QuoteFor prices a prescription list, honouring a manual override:
// while active the final price is exactly the operator's value and the
// calculation is informational only.
func (s *Service) QuoteFor(items []model.PrescriptionItem, override bool, overridePrice float64) Quote {
	calculated := s.Calculate(items)
	if override {
		return Quote{Calculated: calculated, Final: overridePrice, Overridden: true}
	}
	return Quote{Calculated: calculated, Final: calculated}
}
