package asset

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset - physical inventory item. QuantityOnHand is a stored aggregate
// mutated only through the ledger operations, each paired with exactly one
// assignment create/edit/delete.
type Asset struct {
	ID             string
	Name           string
	UnitPrice      decimal.Decimal
	QuantityOnHand int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
