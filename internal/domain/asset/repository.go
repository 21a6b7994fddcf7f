package asset

import "context"

// AssetRepository owns asset records and the inventory ledger. The ledger
// mutators are single conditional statements so concurrent assignment
// operations against the same asset cannot drive quantity_on_hand negative.
type AssetRepository interface {
	Create(ctx context.Context, a Asset) (Asset, error)
	GetByID(ctx context.Context, id string) (Asset, error)
	List(ctx context.Context) ([]Asset, error)
	Update(ctx context.Context, a Asset) (Asset, error)

	// Ledger operations. Decrement fails with ErrOutOfStock when amount
	// exceeds the current quantity; Increment restores stock; AdjustByDelta
	// applies a signed difference during assignment edits.
	Decrement(ctx context.Context, id string, amount int) error
	Increment(ctx context.Context, id string, amount int) error
	AdjustByDelta(ctx context.Context, id string, delta int) error
}
