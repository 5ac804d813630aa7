package catalog

import (
	"context"
	"database/sql"

	"github.com/iliyamo/virtual-tryon-platform/internal/model"
	"github.com/iliyamo/virtual-tryon-platform/internal/repository"
)

// SQL serves the catalog and directory from MySQL through the
// repositories. Used when database configuration is present.
type SQL struct {
	Products *repository.ProductRepo
	Users    *repository.UserRepo
}

// NewSQL builds a SQL source over the shared connection pool.
func NewSQL(db *sql.DB) *SQL {
	return &SQL{
		Products: repository.NewProductRepo(db),
		Users:    repository.NewUserRepo(db),
	}
}

func (s *SQL) ListProducts(ctx context.Context, category string) ([]model.Product, error) {
	return s.Products.List(ctx, category)
}

func (s *SQL) GetProduct(ctx context.Context, id string) (model.Product, error) {
	return s.Products.GetByID(ctx, id)
}

func (s *SQL) ListUsers(ctx context.Context, tenantID string) ([]model.User, error) {
	return s.Users.ListByTenant(ctx, tenantID)
}

func (s *SQL) GetUser(ctx context.Context, id string) (model.User, error) {
	return s.Users.GetByID(ctx, id)
}
