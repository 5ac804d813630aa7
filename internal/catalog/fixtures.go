package catalog

import "github.com/iliyamo/virtual-tryon-platform/internal/model"

// Demo data served by the Memory source. Mirrors what the seeded SQL
// catalog would contain for the demo tenant.

func fixtureProducts() []model.Product {
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
		{
			ID:          "3",
			Name:        "Leather Crossbody Bag",
			Category:    model.CategoryAccessories,
			Brand:       "AccessoryHub",
			Images:      []string{"https://images.pexels.com/photos/1152077/pexels-photo-1152077.jpeg"},
			Sizes:       []string{"One Size"},
			Colors:      []string{"Brown", "Black", "Tan"},
			Price:       79.99,
			Description: "Premium leather crossbody bag with adjustable strap",
			Tags:        []string{"leather", "crossbody", "premium"},
		},
		{
			ID:          "4",
			Name:        "Athletic Running Shoes",
			Category:    model.CategoryShoes,
			Brand:       "SportMax",
			Images:      []string{"https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg"},
			Sizes:       []string{"6", "7", "8", "9", "10", "11", "12"},
			Colors:      []string{"White", "Black", "Gray", "Blue"},
			Price:       129.99,
			Description: "High-performance running shoes with advanced cushioning",
			Tags:        []string{"athletic", "running", "comfort"},
		},
	}
}

func fixtureUsers() []model.User {
	return []model.User{
		{
			ID:       "1",
			Email:    "john.doe@company.com",
			Name:     "John Doe",
			Role:     model.RoleAdmin,
			TenantID: "tenant-1",
			Avatar:   "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=150",
			Preferences: model.UserPreferences{
				SkinTone: "medium", BodyType: "rectangle",
				PreferredLighting: "natural", AIRecommendations: true,
			},
			Measurements: &model.BodyMeasurements{
				Height: 180, Weight: 75, Chest: 100, Waist: 85, Hips: 95, Shoulders: 45,
			},
		},
		{
			ID:       "2",
			Email:    "sarah.johnson@company.com",
			Name:     "Sarah Johnson",
			Role:     model.RoleManager,
			TenantID: "tenant-1",
			Avatar:   "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150",
			Preferences: model.UserPreferences{
				SkinTone: "light", BodyType: "hourglass",
				PreferredLighting: "warm", AIRecommendations: true,
			},
			Measurements: &model.BodyMeasurements{
				Height: 165, Weight: 60, Chest: 90, Waist: 70, Hips: 95, Shoulders: 40,
			},
		},
		{
			ID:       "3",
			Email:    "mike.chen@company.com",
			Name:     "Mike Chen",
			Role:     model.RoleUser,
			TenantID: "tenant-1",
			Avatar:   "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=150",
			Preferences: model.UserPreferences{
				SkinTone: "medium", BodyType: "rectangle",
				PreferredLighting: "cool", AIRecommendations: false,
			},
			Measurements: &model.BodyMeasurements{
				Height: 175, Weight: 70, Chest: 95, Waist: 80, Hips: 90, Shoulders: 42,
			},
		},
		{
			ID:       "4",
			Email:    "emma.wilson@company.com",
			Name:     "Emma Wilson",
			Role:     model.RoleUser,
			TenantID: "tenant-1",
			Avatar:   "https://images.pexels.com/photos/1130626/pexels-photo-1130626.jpeg?auto=compress&cs=tinysrgb&w=150",
			Preferences: model.UserPreferences{
				SkinTone: "light", BodyType: "pear",
				PreferredLighting: "natural", AIRecommendations: true,
			},
			Measurements: &model.BodyMeasurements{
				Height: 160, Weight: 55, Chest: 85, Waist: 65, Hips: 90, Shoulders: 38,
			},
		},
		{
			ID:       "5",
			Email:    "david.brown@company.com",
			Name:     "David Brown",
			Role:     model.RoleUser,
			TenantID: "tenant-1",
			Avatar:   "https://images.pexels.com/photos/1043471/pexels-photo-1043471.jpeg?auto=compress&cs=tinysrgb&w=150",
			Preferences: model.UserPreferences{
				SkinTone: "dark", BodyType: "inverted-triangle",
				PreferredLighting: "studio", AIRecommendations: true,
			},
			Measurements: &model.BodyMeasurements{
				Height: 185, Weight: 85, Chest: 110, Waist: 90, Hips: 95, Shoulders: 50,
			},
		},
	}
}
