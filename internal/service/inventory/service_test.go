package inventory_test

import (
	"io"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/repository"
	"github.com/cliniccare/clinic-api/internal/repository/clinicstore"
	"github.com/cliniccare/clinic-api/internal/service/inventory"
	"github.com/cliniccare/clinic-api/internal/storage"
	"github.com/cliniccare/clinic-api/pkg/logger"
	"github.com/cliniccare/clinic-api/pkg/metrics"
)

func newTestService(t *testing.T) (*inventory.Service, repository.DrugRepository, repository.PurchaseRepository) {
	t.Helper()
	store := storage.NewMemStore()
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, TimeFormat: time.RFC3339, Output: io.Discard})
	m := metrics.New("test")
	drugs := clinicstore.NewDrugRepository(store, log, m)
	purchases := clinicstore.NewPurchaseRepository(store, log, m)
	return inventory.NewService(drugs, purchases, log, m), drugs, purchases
}

func seedDrug(t *testing.T, drugs repository.DrugRepository, name string, stock uint32) model.DrugItem {
	t.Helper()
	d := model.DefaultDrugItem()
	d.ID = model.DrugID(model.NewID())
	d.Name = name
	d.Stock = stock
	require.NoError(t, drugs.Create(d))
	return d
}

func stockOf(t *testing.T, drugs repository.DrugRepository, id model.DrugID) uint32 {
	t.Helper()
	d, err := drugs.Get(id)
	require.NoError(t, err)
	return d.Stock
}

func TestDispenseSubtractsStock(t *testing.T) {
	svc, drugs, _ := newTestService(t)
	d := seedDrug(t, drugs, "ParaX", 20)

	require.NoError(t, svc.Dispense("ParaX", "12 เม็ด"))
	assert.Equal(t, uint32(8), stockOf(t, drugs, d.ID))
}

func TestDispenseClampsAtZero(t *testing.T) {
	svc, drugs, _ := newTestService(t)
	d := seedDrug(t, drugs, "ParaX", 8)

	require.NoError(t, svc.Dispense("ParaX", "15"))
	assert.Equal(t, uint32(0), stockOf(t, drugs, d.ID))

	// A further dispense against empty stock stays at zero.
	require.NoError(t, svc.Dispense("ParaX", "5"))
	assert.Equal(t, uint32(0), stockOf(t, drugs, d.ID))
}

func TestDispenseExactStockEmpties(t *testing.T) {
	svc, drugs, _ := newTestService(t)
	d := seedDrug(t, drugs, "ParaX", 12)

	require.NoError(t, svc.Dispense("ParaX", "12"))
	assert.Equal(t, uint32(0), stockOf(t, drugs, d.ID))
}

func TestDispenseUnknownDrugIsNoop(t *testing.T) {
	svc, drugs, _ := newTestService(t)
	d := seedDrug(t, drugs, "ParaX", 20)

	require.NoError(t, svc.Dispense("ไม่มีในคลัง", "5"))
	assert.Equal(t, uint32(20), stockOf(t, drugs, d.ID))
}

func TestDispenseUnparsableAmountIsNoop(t *testing.T) {
	svc, drugs, _ := newTestService(t)
	d := seedDrug(t, drugs, "ParaX", 20)

	require.NoError(t, svc.Dispense("ParaX", "ตามอาการ"))
	require.NoError(t, svc.Dispense("ParaX", ""))
	assert.Equal(t, uint32(20), stockOf(t, drugs, d.ID))
}

func TestDispenseOverRangeAmountIsNoop(t *testing.T) {
	svc, drugs, _ := newTestService(t)
	d := seedDrug(t, drugs, "ParaX", 20)

	// A quantity past uint32 range must not be converted; it behaves
	// like an unparsable amount.
	require.NoError(t, svc.Dispense("ParaX", "5000000000 เม็ด"))
	assert.Equal(t, uint32(20), stockOf(t, drugs, d.ID))

	require.NoError(t, svc.Dispense("ParaX", "99999999999999999999"))
	assert.Equal(t, uint32(20), stockOf(t, drugs, d.ID))
}

func TestDispenseCountsOnlyDigitlessFallbacks(t *testing.T) {
	store := storage.NewMemStore()
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, TimeFormat: time.RFC3339, Output: io.Discard})
	m := metrics.New("test")
	drugs := clinicstore.NewDrugRepository(store, log, m)
	purchases := clinicstore.NewPurchaseRepository(store, log, m)
	svc := inventory.NewService(drugs, purchases, log, m)
	seedDrug(t, drugs, "ParaX", 20)

	require.NoError(t, svc.Dispense("ParaX", "ตามอาการ")) // free text, counted
	require.NoError(t, svc.Dispense("ParaX", "0 เม็ด"))   // explicit zero, not counted
	require.NoError(t, svc.Dispense("ParaX", ""))         // blank, not counted
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ParseFallbacks))
}

func TestDispenseFractionRoundsDown(t *testing.T) {
	svc, drugs, _ := newTestService(t)
	d := seedDrug(t, drugs, "Syrup", 10)

	require.NoError(t, svc.Dispense("Syrup", "1.5 ขวด"))
	assert.Equal(t, uint32(9), stockOf(t, drugs, d.ID))

	// A purely fractional quantity rounds down to nothing.
	require.NoError(t, svc.Dispense("Syrup", "0.5"))
	assert.Equal(t, uint32(9), stockOf(t, drugs, d.ID))
}

func TestDispenseAll(t *testing.T) {
	svc, drugs, _ := newTestService(t)
	para := seedDrug(t, drugs, "ParaX", 20)
	amoxy := seedDrug(t, drugs, "Amoxy", 30)

	items := []model.PrescriptionItem{
		{Name: "ParaX", Amount: "12"},
		{Name: "Amoxy", Amount: "10"},
		{Name: "ไม่มีในคลัง", Amount: "99"},
	}
	require.NoError(t, svc.DispenseAll(items))

	assert.Equal(t, uint32(8), stockOf(t, drugs, para.ID))
	assert.Equal(t, uint32(20), stockOf(t, drugs, amoxy.ID))
}

func TestRecordPurchaseRestocks(t *testing.T) {
	svc, drugs, purchases := newTestService(t)
	d := seedDrug(t, drugs, "ParaX", 5)

	for _, qty := range []uint32{10, 20, 30} {
		_, err := svc.RecordPurchase(&model.CreatePurchaseRequest{
			DrugID:      string(d.ID),
			DrugName:    "ParaX",
			Quantity:    qty,
			CostPerUnit: 2,
		})
		require.NoError(t, err)
	}

	assert.Equal(t, uint32(65), stockOf(t, drugs, d.ID), "restocks accumulate without clamping")
	assert.Len(t, purchases.List(), 3)
	assert.Len(t, purchases.ListByDrug(d.ID), 3)
}

func TestRecordPurchaseOverwritesExpiry(t *testing.T) {
	svc, drugs, _ := newTestService(t)
	d := seedDrug(t, drugs, "ParaX", 5)

	first := model.NewDate(2026, time.December, 31)
	second := model.NewDate(2027, time.June, 30)

	_, err := svc.RecordPurchase(&model.CreatePurchaseRequest{
		DrugID: string(d.ID), Quantity: 10, ExpiryDate: &first,
	})
	require.NoError(t, err)
	_, err = svc.RecordPurchase(&model.CreatePurchaseRequest{
		DrugID: string(d.ID), Quantity: 10, ExpiryDate: &second,
	})
	require.NoError(t, err)

	got, err := drugs.Get(d.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ExpiryDate)
	assert.Equal(t, second, *got.ExpiryDate, "last purchase wins")

	// A purchase without an expiry leaves the recorded one alone.
	_, err = svc.RecordPurchase(&model.CreatePurchaseRequest{DrugID: string(d.ID), Quantity: 5})
	require.NoError(t, err)
	got, err = drugs.Get(d.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ExpiryDate)
	assert.Equal(t, second, *got.ExpiryDate)
}

func TestRecordPurchaseUnknownDrugStillRecorded(t *testing.T) {
	svc, drugs, purchases := newTestService(t)
	d := seedDrug(t, drugs, "ParaX", 5)

	p, err := svc.RecordPurchase(&model.CreatePurchaseRequest{
		DrugID:   "no-such-id",
		DrugName: "ของเก่า",
		Quantity: 10,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	assert.Equal(t, uint32(5), stockOf(t, drugs, d.ID), "no stock effect")
	assert.Len(t, purchases.List(), 1, "history keeps the purchase anyway")
}

func TestRecordPurchaseDefaultsTotalCost(t *testing.T) {
	svc, drugs, _ := newTestService(t)
	d := seedDrug(t, drugs, "ParaX", 0)

	p, err := svc.RecordPurchase(&model.CreatePurchaseRequest{
		DrugID:      string(d.ID),
		Quantity:    10,
		CostPerUnit: 2.5,
	})
	require.NoError(t, err)
	assert.Equal(t, 25.0, p.TotalCost)

	// An explicit total is taken as-is.
	p, err = svc.RecordPurchase(&model.CreatePurchaseRequest{
		DrugID:      string(d.ID),
		Quantity:    10,
		CostPerUnit: 2.5,
		TotalCost:   20,
	})
	require.NoError(t, err)
	assert.Equal(t, 20.0, p.TotalCost)
}
