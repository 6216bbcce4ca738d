package ports

import (
	"context"

	"go.trai.ch/oematch/internal/core/domain"
)

// InventoryLoader builds the list of local recipes from bitbake outputs.
//
//go:generate mockgen -source=inventory.go -destination=mocks/mock_inventory.go -package=mocks
type InventoryLoader interface {
	Load(ctx context.Context, src domain.InventorySources) ([]*domain.LocalRecipe, error)
}
