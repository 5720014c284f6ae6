package repositories

import (
	"context"
	"pickup-route-service/internal/adapters/files"
	"pickup-route-service/internal/domain"
)

// StopRepository backed by a product file, re-read on every call so edits
// are picked up without a restart.
type ProductFileStopRepository struct{ Path string }

func NewProductFileStopRepository(path string) *ProductFileStopRepository {
	return &ProductFileStopRepository{Path: path}
}

func (r *ProductFileStopRepository) ListStops(ctx context.Context) ([]domain.Coordinate, error) {
	return files.ReadProducts(r.Path)
}
