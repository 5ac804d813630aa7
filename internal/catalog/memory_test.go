package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/iliyamo/virtual-tryon-platform/internal/model"
	"github.com/iliyamo/virtual-tryon-platform/internal/repository"
)

func TestMemoryListProductsFiltersByCategory(t *testing.T) {
	m := NewMemory(0)
	ctx := context.Background()

	all, err := m.ListProducts(ctx, "all")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("catalog size = %d, want 4", len(all))
	}

	shoes, err := m.ListProducts(ctx, model.CategoryShoes)
	if err != nil {
		t.Fatalf("list shoes: %v", err)
	}
	for _, p := range shoes {
		if p.Category != model.CategoryShoes {
			t.Fatalf("filtered list contains category %q", p.Category)
		}
	}
	if len(shoes) != 1 {
		t.Fatalf("shoes = %d, want 1", len(shoes))
	}
}

func TestMemoryGetProduct(t *testing.T) {
	m := NewMemory(0)
	p, err := m.GetProduct(context.Background(), "3")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Name != "Leather Crossbody Bag" {
		t.Fatalf("name = %q", p.Name)
	}
	if _, err := m.GetProduct(context.Background(), "nope"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryDirectoryScopedToTenant(t *testing.T) {
	m := NewMemory(0)
	users, err := m.ListUsers(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) == 0 {
		t.Fatal("expected fixture directory users")
	}
	for _, u := range users {
		if u.TenantID != "tenant-1" {
			t.Fatalf("user %s belongs to tenant %q", u.ID, u.TenantID)
		}
	}
	other, err := m.ListUsers(context.Background(), "tenant-2")
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(other) != 0 {
		t.Fatal("foreign tenant must see an empty directory")
	}
}

func TestMemoryHonorsContext(t *testing.T) {
	m := NewMemory(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.ListProducts(ctx, ""); err == nil {
		t.Fatal("expected context error")
	}
}
