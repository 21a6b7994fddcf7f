package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sakthi-mills/hr-backend-go/internal/domain/asset"
	"github.com/sakthi-mills/hr-backend-go/internal/pkg/database"
)

type assetRepository struct {
	db *database.DB
}

func NewAssetRepository(db *database.DB) asset.AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(ctx context.Context, a asset.Asset) (asset.Asset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO assets (name, unit_price, quantity_on_hand)
		VALUES ($1, $2, $3)
		RETURNING id, name, unit_price, quantity_on_hand, created_at, updated_at
	`

	var created asset.Asset
	err := q.QueryRow(ctx, query, a.Name, a.UnitPrice, a.QuantityOnHand).Scan(
		&created.ID, &created.Name, &created.UnitPrice, &created.QuantityOnHand,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return asset.Asset{}, fmt.Errorf("failed to create asset: %w", err)
	}

	return created, nil
}

func (r *assetRepository) GetByID(ctx context.Context, id string) (asset.Asset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, unit_price, quantity_on_hand, created_at, updated_at
		FROM assets
		WHERE id = $1
	`

	var a asset.Asset
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.UnitPrice, &a.QuantityOnHand, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return asset.Asset{}, asset.ErrAssetNotFound
		}
		return asset.Asset{}, fmt.Errorf("failed to get asset: %w", err)
	}

	return a, nil
}

func (r *assetRepository) List(ctx context.Context) ([]asset.Asset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, unit_price, quantity_on_hand, created_at, updated_at
		FROM assets
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []asset.Asset
	for rows.Next() {
		var a asset.Asset
		if err := rows.Scan(
			&a.ID, &a.Name, &a.UnitPrice, &a.QuantityOnHand, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, a)
	}

	return assets, nil
}

func (r *assetRepository) Update(ctx context.Context, a asset.Asset) (asset.Asset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE assets
		SET name = $2, unit_price = $3, quantity_on_hand = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, unit_price, quantity_on_hand, created_at, updated_at
	`

	var updated asset.Asset
	err := q.QueryRow(ctx, query, a.ID, a.Name, a.UnitPrice, a.QuantityOnHand).Scan(
		&updated.ID, &updated.Name, &updated.UnitPrice, &updated.QuantityOnHand,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return asset.Asset{}, asset.ErrAssetNotFound
		}
		return asset.Asset{}, fmt.Errorf("failed to update asset: %w", err)
	}

	return updated, nil
}

// ========== INVENTORY LEDGER ==========

// Decrement reduces quantity_on_hand by amount. The stock check and the write
// are one conditional statement, so two concurrent assignments against the
// same asset cannot oversell it.
func (r *assetRepository) Decrement(ctx context.Context, id string, amount int) error {
	return r.AdjustByDelta(ctx, id, -amount)
}

// Increment restores stock, used on assignment deletion and downward quantity
// edits.
func (r *assetRepository) Increment(ctx context.Context, id string, amount int) error {
	return r.AdjustByDelta(ctx, id, amount)
}

// AdjustByDelta applies a signed difference to quantity_on_hand. A delta that
// would drive the quantity negative leaves the row untouched and returns
// ErrOutOfStock.
func (r *assetRepository) AdjustByDelta(ctx context.Context, id string, delta int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE assets
		SET quantity_on_hand = quantity_on_hand + $2, updated_at = NOW()
		WHERE id = $1 AND quantity_on_hand + $2 >= 0
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, delta).Scan(&updatedID)
	if err == nil {
		return nil
	}
	if err != pgx.ErrNoRows {
		return fmt.Errorf("failed to adjust asset quantity: %w", err)
	}

	// No row matched: either the asset is missing or the delta would have
	// gone negative. Distinguish the two for the caller.
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM assets WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check asset existence: %w", err)
	}
	if !exists {
		return asset.ErrAssetNotFound
	}
	return asset.ErrOutOfStock
}
