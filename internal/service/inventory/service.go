// Package inventory owns the drug catalogue and the stock ledger rule:
// stock falls when prescriptions are dispensed and rises when purchases
// are recorded, and never goes below zero.
package inventory

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/repository"
	"github.com/cliniccare/clinic-api/internal/service/pricing"
	"github.com/cliniccare/clinic-api/pkg/logger"
	"github.com/cliniccare/clinic-api/pkg/metrics"
)

// ExpiryWarningDays is how far ahead the expiring-drugs view looks.
const ExpiryWarningDays = 30

type Service struct {
	drugs     repository.DrugRepository
	purchases repository.PurchaseRepository
	log       *logger.Logger
	m         *metrics.Metrics
}

func NewService(drugs repository.DrugRepository, purchases repository.PurchaseRepository, log *logger.Logger, m *metrics.Metrics) *Service {
	return &Service{drugs: drugs, purchases: purchases, log: log, m: m}
}

func (s *Service) ListDrugs() []model.DrugItem {
	return s.drugs.List()
}

func (s *Service) GetDrug(id model.DrugID) (*model.DrugItem, error) {
	return s.drugs.Get(id)
}

func (s *Service) ListLowStock() []model.DrugItem {
	return s.drugs.ListLowStock()
}

func (s *Service) ListExpiring() []model.DrugItem {
	return s.drugs.ListExpiringWithin(ExpiryWarningDays)
}

func (s *Service) CreateDrug(req *model.CreateDrugRequest) (*model.DrugItem, error) {
	drug := model.DefaultDrugItem()
	drug.ID = model.DrugID(model.NewID())
	drug.Name = req.Name
	drug.Stock = req.Stock
	drug.CostPrice = req.CostPrice
	drug.SellPrice = req.SellPrice
	drug.ExpiryDate = req.ExpiryDate
	drug.Description = req.Description
	drug.DefaultUsage = req.DefaultUsage
	drug.Warning = req.Warning
	if req.Unit != "" {
		drug.Unit = req.Unit
	}
	if req.Category != "" {
		drug.Category = req.Category
	}
	if req.MinStock != nil {
		drug.MinStock = *req.MinStock
	}

	if err := s.drugs.Create(drug); err != nil {
		return nil, fmt.Errorf("create drug: %w", err)
	}
	return &drug, nil
}

func (s *Service) UpdateDrug(drug model.DrugItem) error {
	return s.drugs.Update(drug)
}

func (s *Service) DeleteDrug(id model.DrugID) error {
	return s.drugs.Delete(id)
}

// Dispense applies one prescription line to the ledger: the leading
// numeric run of amount is the quantity, the drug is matched by exact
// name, and the subtraction saturates at zero. Skipped lines never fail
// the sale, but each leaves a trace in the logs and counters.
func (s *Service) Dispense(drugName, amount string) error {
	qty := pricing.ParseQuantity(amount)
	if qty == 0 {
		if strings.TrimSpace(amount) != "" && !pricing.HasQuantity(amount) {
			s.m.ParseFallbacks.Inc()
		}
		return nil
	}
	// A quantity too large for uint32 is treated like an unparsable
	// amount: no stock effect. Converting it would be implementation
	// defined.
	if qty >= math.MaxUint32 {
		s.log.Warn("dispense amount out of range, stock untouched", "drug", drugName, "amount", amount)
		return nil
	}
	// Stock is counted in whole units; fractional dispenses round down.
	units := uint32(qty)
	if units == 0 {
		return nil
	}

	drug, err := s.drugs.FindByName(drugName)
	if err != nil {
		s.m.UnknownDrugs.Inc()
		s.log.Warn("dispense for unknown drug, stock untouched", "drug", drugName)
		return nil
	}

	if units >= drug.Stock {
		if units > drug.Stock {
			s.m.StockClamps.Inc()
			s.log.Warn("dispense exceeds stock, clamping to zero",
				"drug", drugName, "stock", drug.Stock, "requested", units)
		}
		drug.Stock = 0
	} else {
		drug.Stock -= units
	}

	return s.drugs.Update(*drug)
}

// DispenseAll runs Dispense over every line of a prescription list.
func (s *Service) DispenseAll(items []model.PrescriptionItem) error {
	for _, item := range items {
		if err := s.Dispense(item.Name, item.Amount); err != nil {
			return err
		}
	}
	return nil
}

// RecordPurchase appends a restock event and applies it to the ledger.
// The stock increase matches by drug ID; a purchase against an unknown
// ID still enters history, with no stock effect.
func (s *Service) RecordPurchase(req *model.CreatePurchaseRequest) (*model.DrugPurchase, error) {
	purchase := model.DrugPurchase{
		ID:          model.PurchaseID(model.NewID()),
		DrugID:      model.DrugID(req.DrugID),
		DrugName:    req.DrugName,
		Date:        time.Now(),
		Quantity:    req.Quantity,
		CostPerUnit: req.CostPerUnit,
		TotalCost:   req.TotalCost,
		LotNumber:   req.LotNumber,
		ExpiryDate:  req.ExpiryDate,
		Supplier:    req.Supplier,
		Note:        req.Note,
	}
	if req.Date != nil {
		purchase.Date = *req.Date
	}
	if purchase.TotalCost == 0 {
		purchase.TotalCost = purchase.CostPerUnit * float64(purchase.Quantity)
	}

	drug, err := s.drugs.Get(purchase.DrugID)
	if err == nil {
		drug.Stock += purchase.Quantity
		if purchase.ExpiryDate != nil {
			// Last purchase wins; there is no per-lot expiry tracking.
			drug.ExpiryDate = purchase.ExpiryDate
		}
		if err := s.drugs.Update(*drug); err != nil {
			return nil, fmt.Errorf("restock drug: %w", err)
		}
	} else {
		s.m.UnknownDrugs.Inc()
		s.log.Warn("purchase references unknown drug, stock untouched", "drug_id", purchase.DrugID)
	}

	if err := s.purchases.Create(purchase); err != nil {
		return nil, fmt.Errorf("record purchase: %w", err)
	}
	return &purchase, nil
}

func (s *Service) ListPurchases() []model.DrugPurchase {
	return s.purchases.List()
}

func (s *Service) ListPurchasesByDrug(id model.DrugID) []model.DrugPurchase {
	return s.purchases.ListByDrug(id)
}
