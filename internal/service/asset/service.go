package asset

import (
	"context"

	"github.com/sakthi-mills/hr-backend-go/internal/domain/asset"
	"github.com/sakthi-mills/hr-backend-go/internal/pkg/database"
)

type Service interface {
	Create(ctx context.Context, req asset.CreateAssetRequest) (asset.AssetResponse, error)
	Update(ctx context.Context, req asset.UpdateAssetRequest) (asset.AssetResponse, error)
	List(ctx context.Context) ([]asset.AssetResponse, error)
}

type serviceImpl struct {
	db        *database.DB
	assetRepo asset.AssetRepository
}

func NewAssetService(db *database.DB, assetRepo asset.AssetRepository) Service {
	return &serviceImpl{db: db, assetRepo: assetRepo}
}

func (s *serviceImpl) Create(ctx context.Context, req asset.CreateAssetRequest) (asset.AssetResponse, error) {
	if err := req.Validate(); err != nil {
		return asset.AssetResponse{}, err
	}

	created, err := s.assetRepo.Create(ctx, asset.Asset{
		Name:           req.Name,
		UnitPrice:      req.UnitPrice,
		QuantityOnHand: req.Quantity,
	})
	if err != nil {
		return asset.AssetResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *serviceImpl) Update(ctx context.Context, req asset.UpdateAssetRequest) (asset.AssetResponse, error) {
	if err := req.Validate(); err != nil {
		return asset.AssetResponse{}, err
	}

	updated, err := s.assetRepo.Update(ctx, asset.Asset{
		ID:             req.ID,
		Name:           req.Name,
		UnitPrice:      req.UnitPrice,
		QuantityOnHand: req.Quantity,
	})
	if err != nil {
		return asset.AssetResponse{}, err
	}

	return mapToResponse(updated), nil
}

func (s *serviceImpl) List(ctx context.Context) ([]asset.AssetResponse, error) {
	assets, err := s.assetRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]asset.AssetResponse, 0, len(assets))
	for _, a := range assets {
		result = append(result, mapToResponse(a))
	}
	return result, nil
}

func mapToResponse(a asset.Asset) asset.AssetResponse {
	return asset.AssetResponse{
		ID:             a.ID,
		Name:           a.Name,
		UnitPrice:      a.UnitPrice,
		QuantityOnHand: a.QuantityOnHand,
	}
}
