package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/iliyamo/virtual-tryon-platform/internal/model"
)

// ProductRepo reads the try-on catalog from the 'products' table.
// List-valued columns (images, sizes, colors, tags) are stored as JSON
// arrays; MySQL JSON columns scan as []byte.
type ProductRepo struct{ DB *sql.DB }

func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{DB: db} }

const productColumns = `id, name, category, brand, images, sizes, colors,
	price, description, tags`

// GetByID fetches one product.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (model.Product, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id=? LIMIT 1", id)
	p, err := scanProduct(row.Scan)
	if err == sql.ErrNoRows {
		return model.Product{}, ErrNotFound
	}
	return p, err
}

// List returns products, optionally filtered by category. An empty or
// "all" category returns the whole catalog.
func (r *ProductRepo) List(ctx context.Context, category string) ([]model.Product, error) {
	query := "SELECT " + productColumns + " FROM products"
	args := []any{}
	if category != "" && category != "all" {
		query += " WHERE category=?"
		args = append(args, category)
	}
	query += " ORDER BY name"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func scanProduct(scan func(dest ...any) error) (model.Product, error) {
	var (
		p                           model.Product
		images, sizes, colors, tags []byte
	)
	if err := scan(&p.ID, &p.Name, &p.Category, &p.Brand, &images, &sizes,
		&colors, &p.Price, &p.Description, &tags); err != nil {
		return model.Product{}, err
	}
	for _, col := range []struct {
		raw []byte
		dst *[]string
	}{{images, &p.Images}, {sizes, &p.Sizes}, {colors, &p.Colors}, {tags, &p.Tags}} {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dst); err != nil {
			return model.Product{}, err
		}
	}
	return p, nil
}
