package catalog

import (
	"context"
	"time"

	"github.com/iliyamo/virtual-tryon-platform/internal/model"
	"github.com/iliyamo/virtual-tryon-platform/internal/repository"
)

// Memory serves the built-in demo catalog and directory. Each call
// waits Delay first, simulating the network round trip the real data
// source would take.
type Memory struct {
	Delay    time.Duration
	products []model.Product
	users    []model.User
}

// NewMemory returns a Memory source seeded with the demo fixtures.
func NewMemory(delay time.Duration) *Memory {
	return &Memory{Delay: delay, products: fixtureProducts(), users: fixtureUsers()}
}

func (m *Memory) wait(ctx context.Context) error {
	if m.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(m.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ListProducts returns the fixture catalog, optionally filtered by
// category ("" and "all" mean no filter).
func (m *Memory) ListProducts(ctx context.Context, category string) ([]model.Product, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	if category == "" || category == "all" {
		return append([]model.Product(nil), m.products...), nil
	}
	var out []model.Product
	for _, p := range m.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetProduct returns one fixture product or repository.ErrNotFound.
func (m *Memory) GetProduct(ctx context.Context, id string) (model.Product, error) {
	if err := m.wait(ctx); err != nil {
		return model.Product{}, err
	}
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, repository.ErrNotFound
}

// GetUser returns one fixture directory user or repository.ErrNotFound.
func (m *Memory) GetUser(ctx context.Context, id string) (model.User, error) {
	if err := m.wait(ctx); err != nil {
		return model.User{}, err
	}
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

// ListUsers returns the fixture directory for the tenant.
func (m *Memory) ListUsers(ctx context.Context, tenantID string) ([]model.User, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	var out []model.User
	for _, u := range m.users {
		if u.TenantID == tenantID {
			out = append(out, u)
		}
	}
	return out, nil
}
