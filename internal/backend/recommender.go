package backend

import (
	"context"
	"time"

	"github.com/iliyamo/virtual-tryon-platform/internal/model"
)

// Recommender produces an ordered product list tailored to a user.
// Results are best-effort cache material, not a consistency-critical
// path: the try-on store applies them last-call-wins.
type Recommender interface {
	Recommend(ctx context.Context, userID string) ([]model.Product, error)
}

// MockRecommender is the stubbed recommendation engine. It ignores the
// user id and returns the same two-item list after Delay.
type MockRecommender struct {
	Delay time.Duration
}

// NewMockRecommender returns a MockRecommender with the given simulated latency.
func NewMockRecommender(delay time.Duration) *MockRecommender {
	return &MockRecommender{Delay: delay}
}

// Recommend waits out the simulated latency and returns the canned list.
func (m *MockRecommender) Recommend(ctx context.Context, _ string) ([]model.Product, error) {
	if err := sleep(ctx, m.Delay); err != nil {
		return nil, err
	}
	return []model.Product{
		{
			ID:          "1",
			Name:        "Classic Denim Jacket",
			Category:    model.CategoryClothing,
			Brand:       "StyleCo",
			Images:      []string{"https://images.pexels.com/photos/1040945/pexels-photo-1040945.jpeg"},
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Blue", "Black", "White"},
			Price:       89.99,
			Description: "Timeless denim jacket perfect for any occasion",
			Tags:        []string{"casual", "versatile", "trending"},
		},
		{
			ID:          "2",
			Name:        "Elegant Evening Dress",
			Category:    model.CategoryClothing,
			Brand:       "LuxeFashion",
			Images:      []string{"https://images.pexels.com/photos/1536619/pexels-photo-1536619.jpeg"},
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Black", "Navy", "Burgundy"},
			Price:       159.99,
			Description: "Sophisticated dress for special occasions",
			Tags:        []string{"formal", "elegant", "premium"},
		},
	}, nil
}
