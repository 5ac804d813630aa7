// Package catalog provides the product catalog and user directory data
// source consumed by the browse and management endpoints. The core
// stores never read it directly; products enter the try-on store only
// through explicit selection.
package catalog

import (
	"context"

	"github.com/iliyamo/virtual-tryon-platform/internal/model"
)

// Source supplies the product catalog and the tenant's user directory.
// Two implementations exist: Memory serves the built-in fixtures after
// a simulated delay, and SQL reads from MySQL through the repositories.
type Source interface {
	ListProducts(ctx context.Context, category string) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (model.Product, error)
	ListUsers(ctx context.Context, tenantID string) ([]model.User, error)
	GetUser(ctx context.Context, id string) (model.User, error)
}
