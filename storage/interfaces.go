package storage

import (
	"context"
	"errors"

	"github.com/dcode-github/property_valuation/models"
)

var (
	ErrNotFound = errors.New("valuation not found")
	ErrConflict = errors.New("valuation already exists")
)

// ValuationStore is the interface any storage backend must satisfy. Every
// read and delete is scoped to the owner.
type ValuationStore interface {
	Save(ctx context.Context, v *models.SavedValuation) error
	List(ctx context.Context, owner string, limit int64) ([]models.SavedValuation, error)
	Get(ctx context.Context, owner, id string) (*models.SavedValuation, error)
	Delete(ctx context.Context, owner, id string) (bool, error)
	Close(ctx context.Context) error
}
