package savings

import (
	"fmt"
	"math"
)

// StorageRates holds storage unit economics.
type StorageRates struct {
	CostPerSqm                 float64 `json:"costPerSqm"`
	MerchantOverheadMultiplier float64 `json:"merchantOverheadMultiplier"`
}

// HandlingInRates holds inbound handling unit economics, keyed by item.
type HandlingInRates struct {
	LaborCostPerMinute            float64 `json:"laborCostPerMinute"`
	MerchantMinutesPerItem        float64 `json:"merchantMinutesPerItem"`
	AlternateMinutesPerItem       float64 `json:"alternateMinutesPerItem"`
	AlternateEfficiencyMultiplier float64 `json:"alternateEfficiencyMultiplier"`
}

// HandlingOutRates holds outbound handling unit economics, keyed by order.
type HandlingOutRates struct {
	LaborCostPerMinute            float64 `json:"laborCostPerMinute"`
	MerchantMinutesPerOrder       float64 `json:"merchantMinutesPerOrder"`
	AlternateMinutesPerOrder      float64 `json:"alternateMinutesPerOrder"`
	AlternateEfficiencyMultiplier float64 `json:"alternateEfficiencyMultiplier"`
}

// DeliveryRates holds the flat per-order delivery price of each party.
type DeliveryRates struct {
	MerchantCostPerOrder  float64 `json:"merchantCostPerOrder"`
	AlternateCostPerOrder float64 `json:"alternateCostPerOrder"`
}

// OverheadRates holds the surcharge applied on top of each party's subtotal.
// MerchantRate is a fraction of the merchant subtotal; AlternateOverhead is a flat amount.
type OverheadRates struct {
	MerchantRate      float64 `json:"merchantRate"`
	AlternateOverhead float64 `json:"alternateOverhead"`
}

// Assumptions is the operational table the engine prices against.
// It is passed by value into Compute and never read from package state.
type Assumptions struct {
	Storage     StorageRates     `json:"storage"`
	HandlingIn  HandlingInRates  `json:"handlingIn"`
	HandlingOut HandlingOutRates `json:"handlingOut"`
	Delivery    DeliveryRates    `json:"delivery"`
	Overhead    OverheadRates    `json:"overhead"`
}

// DefaultAssumptions returns the compiled-in assumptions table.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		Storage: StorageRates{
			CostPerSqm:                 12,
			MerchantOverheadMultiplier: 1.25,
		},
		HandlingIn: HandlingInRates{
			LaborCostPerMinute:            0.5,
			MerchantMinutesPerItem:        2,
			AlternateMinutesPerItem:       1,
			AlternateEfficiencyMultiplier: 0.85,
		},
		HandlingOut: HandlingOutRates{
			LaborCostPerMinute:            0.5,
			MerchantMinutesPerOrder:       5,
			AlternateMinutesPerOrder:      3,
			AlternateEfficiencyMultiplier: 0.85,
		},
		Delivery: DeliveryRates{
			MerchantCostPerOrder:  2.2,
			AlternateCostPerOrder: 2.0,
		},
		Overhead: OverheadRates{
			MerchantRate:      0.2,
			AlternateOverhead: 0,
		},
	}
}

// Validate rejects tables with negative or non-finite rates.
// Compute does not call it; loaders do.
func (a Assumptions) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"storage.costPerSqm", a.Storage.CostPerSqm},
		{"storage.merchantOverheadMultiplier", a.Storage.MerchantOverheadMultiplier},
		{"handlingIn.laborCostPerMinute", a.HandlingIn.LaborCostPerMinute},
		{"handlingIn.merchantMinutesPerItem", a.HandlingIn.MerchantMinutesPerItem},
		{"handlingIn.alternateMinutesPerItem", a.HandlingIn.AlternateMinutesPerItem},
		{"handlingIn.alternateEfficiencyMultiplier", a.HandlingIn.AlternateEfficiencyMultiplier},
		{"handlingOut.laborCostPerMinute", a.HandlingOut.LaborCostPerMinute},
		{"handlingOut.merchantMinutesPerOrder", a.HandlingOut.MerchantMinutesPerOrder},
		{"handlingOut.alternateMinutesPerOrder", a.HandlingOut.AlternateMinutesPerOrder},
		{"handlingOut.alternateEfficiencyMultiplier", a.HandlingOut.AlternateEfficiencyMultiplier},
		{"delivery.merchantCostPerOrder", a.Delivery.MerchantCostPerOrder},
		{"delivery.alternateCostPerOrder", a.Delivery.AlternateCostPerOrder},
		{"overhead.merchantRate", a.Overhead.MerchantRate},
		{"overhead.alternateOverhead", a.Overhead.AlternateOverhead},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s must be a finite number", f.name)
		}
		if f.value < 0 {
			return fmt.Errorf("%s must be greater than or equal to 0", f.name)
		}
	}
	return nil
}
