package model

import "time"

// DrugItem is an inventory entry. Stock is never allowed below zero;
// dispensing saturates at zero rather than underflowing or erroring.
type DrugItem struct {
	ID           DrugID  `json:"id"`
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	Stock        uint32  `json:"stock"`
	MinStock     uint32  `json:"min_stock"`
	CostPrice    float64 `json:"cost_price"`
	SellPrice    float64 `json:"sell_price"`
	ExpiryDate   *Date   `json:"expiry_date,omitempty"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	DefaultUsage string  `json:"default_usage"`
	Warning      string  `json:"warning"`
}

// DefaultDrugItem carries the inventory form defaults.
func DefaultDrugItem() DrugItem {
	return DrugItem{
		Unit:     "เม็ด",
		MinStock: 10,
		Category: "ยาทั่วไป",
	}
}

// LowStock reports whether the item is at or below its alert threshold.
func (d *DrugItem) LowStock() bool {
	return d.Stock <= d.MinStock
}

// DrugPurchase records a restock event. Saving a purchase is the only
// operation that increases a DrugItem's stock, and it overwrites the
// drug's expiry date when the purchase carries one (last purchase wins;
// there is no multi-lot expiry tracking).
type DrugPurchase struct {
	ID          PurchaseID `json:"id"`
	DrugID      DrugID     `json:"drug_id"`
	DrugName    string     `json:"drug_name"`
	Date        time.Time  `json:"date"`
	Quantity    uint32     `json:"quantity"`
	CostPerUnit float64    `json:"cost_per_unit"`
	TotalCost   float64    `json:"total_cost"`
	LotNumber   string     `json:"lot_number"`
	ExpiryDate  *Date      `json:"expiry_date,omitempty"`
	Supplier    string     `json:"supplier"`
	Note        string     `json:"note"`
}

type CreateDrugRequest struct {
	Name         string  `json:"name" binding:"required"`
	Unit         string  `json:"unit"`
	Stock        uint32  `json:"stock"`
	MinStock     *uint32 `json:"min_stock"`
	CostPrice    float64 `json:"cost_price"`
	SellPrice    float64 `json:"sell_price"`
	ExpiryDate   *Date   `json:"expiry_date"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	DefaultUsage string  `json:"default_usage"`
	Warning      string  `json:"warning"`
}

type CreatePurchaseRequest struct {
	DrugID      string     `json:"drug_id" binding:"required"`
	DrugName    string     `json:"drug_name"`
	Date        *time.Time `json:"date"`
	Quantity    uint32     `json:"quantity" binding:"required,gt=0"`
	CostPerUnit float64    `json:"cost_per_unit"`
	TotalCost   float64    `json:"total_cost"`
	LotNumber   string     `json:"lot_number"`
	ExpiryDate  *Date      `json:"expiry_date"`
	Supplier    string     `json:"supplier"`
	Note        string     `json:"note"`
}
