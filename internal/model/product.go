package model

// Product is a catalog entry available for virtual try-on. Products
// are immutable once loaded; they are sourced from the catalog
// collaborator (in-memory fixtures or the SQL catalog) and only ever
// referenced by id from try-on sessions.
//
// Fields:
//  ID          – unique product identifier.
//  Name        – display name.
//  Category    – clothing | accessories | shoes.
//  Brand       – brand name.
//  Images      – ordered image references, first is the primary image.
//  Sizes       – available sizes.
//  Colors      – available colors.
//  Price       – unit price.
//  Description – marketing description.
//  Tags        – free-form tag set used for search and recommendations.
type Product struct {
	ID          string
	Name        string
	Category    string
	Brand       string
	Images      []string
	Sizes       []string
	Colors      []string
	Price       float64
	Description string
	Tags        []string
}

// Product categories.
const (
	CategoryClothing    = "clothing"
	CategoryAccessories = "accessories"
	CategoryShoes       = "shoes"
)
