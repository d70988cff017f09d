package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/catalog"
)

// Order is a persisted pedido. Relation pointers are populated by readers
// only; writers work with the *ID fields.
type Order struct {
	ID           int64           `json:"id"`
	Code         string          `json:"codigo"`
	TotalCost    decimal.Decimal `json:"costoTotal"`
	ClientID     int64           `json:"clienteId"`
	InsuranceID  int64           `json:"seguroId"`
	CarrierID    int64           `json:"transportadoraId"`
	TaxRateID    int64           `json:"tasaImpositivaId"`
	BorderCostID *int64          `json:"costoFronterizoId"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`

	Client     *catalog.Client     `json:"cliente,omitempty"`
	Insurance  *catalog.Insurance  `json:"seguro,omitempty"`
	Carrier    *catalog.Carrier    `json:"transportadora,omitempty"`
	TaxRate    *catalog.TaxRate    `json:"tasaImpositiva,omitempty"`
	BorderCost *catalog.BorderCost `json:"costoFronterizo"`
	Items      []LineItem          `json:"productosPedido"`
}

// LineItem belongs to exactly one order. UnitWeightKg is the product weight
// captured when the item was written and never follows later product edits.
type LineItem struct {
	ID           int64           `json:"id"`
	OrderID      int64           `json:"pedidoId"`
	ProductID    int64           `json:"productoId"`
	Quantity     int             `json:"cantidad"`
	UnitWeightKg decimal.Decimal `json:"pesoKg"`

	Product *catalog.Product `json:"producto,omitempty"`
}

// TotalWeightKg sums the weight snapshots of the order's items.
func (o *Order) TotalWeightKg() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.UnitWeightKg.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// View is an order as returned to callers: the stored record plus the
// shipping summary, which is recomputed on every read.
type View struct {
	Order
	TotalWeightKg decimal.Decimal `json:"pesoTotal"`
	TruckCount    int64           `json:"camionesNecesarios"`
}

func NewView(o *Order) *View {
	weight := o.TotalWeightKg()
	return &View{
		Order:         *o,
		TotalWeightKg: weight,
		TruckCount:    TruckCount(weight),
	}
}
