package order

import (
	"github.com/shopspring/decimal"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/catalog"
)

// TruckCapacityKg is the load of one full truck.
const TruckCapacityKg = 18000

var truckCapacity = decimal.NewFromInt(TruckCapacityKg)

// CostLine is one resolved line item: the product's current price and weight
// and the requested quantity.
type CostLine struct {
	UnitPrice    decimal.Decimal
	UnitWeightKg decimal.Decimal
	Quantity     int
}

type Costing struct {
	TotalCost       decimal.Decimal
	TotalWeightKg   decimal.Decimal
	TruckCount      int64
	BorderCostExtra decimal.Decimal
	// RepresentativeBorderCostID is the first border cost in store order,
	// nil when border costs were not applied or none exist.
	RepresentativeBorderCostID *int64
}

// ComputeCosting aggregates cost and weight over lines. When applyBorderCosts
// is set every record in borderCosts is added to the total.
func ComputeCosting(lines []CostLine, applyBorderCosts bool, borderCosts []catalog.BorderCost) Costing {
	c := Costing{
		TotalCost:       decimal.Zero,
		TotalWeightKg:   decimal.Zero,
		BorderCostExtra: decimal.Zero,
	}

	for _, l := range lines {
		qty := decimal.NewFromInt(int64(l.Quantity))
		c.TotalCost = c.TotalCost.Add(l.UnitPrice.Mul(qty))
		c.TotalWeightKg = c.TotalWeightKg.Add(l.UnitWeightKg.Mul(qty))
	}

	if applyBorderCosts && len(borderCosts) > 0 {
		for _, bc := range borderCosts {
			c.BorderCostExtra = c.BorderCostExtra.Add(bc.Cost)
		}
		c.TotalCost = c.TotalCost.Add(c.BorderCostExtra)
		id := borderCosts[0].ID
		c.RepresentativeBorderCostID = &id
	}

	c.TruckCount = TruckCount(c.TotalWeightKg)
	return c
}

// TruckCount is ceil(weight / TruckCapacityKg); zero or negative weight needs
// no truck.
func TruckCount(totalWeightKg decimal.Decimal) int64 {
	if !totalWeightKg.IsPositive() {
		return 0
	}
	return totalWeightKg.Div(truckCapacity).Ceil().IntPart()
}
