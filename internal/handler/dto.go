// Package handler exposes HTTP handlers for the dashboard API. The
// internal model structs carry no JSON tags; this file defines the
// response shapes shared across handlers and the conversions into them.
package handler

import (
	"time"

	"github.com/iliyamo/virtual-tryon-platform/internal/model"
)

// userDTO is a user as exposed over the API.
type userDTO struct {
	ID           string           `json:"id"`
	Email        string           `json:"email"`
	Name         string           `json:"name"`
	Role         string           `json:"role"`
	TenantID     string           `json:"tenant_id"`
	Avatar       string           `json:"avatar,omitempty"`
	Preferences  preferencesDTO   `json:"preferences"`
	Measurements *measurementsDTO `json:"measurements,omitempty"`
}

type preferencesDTO struct {
	SkinTone          string `json:"skin_tone"`
	BodyType          string `json:"body_type"`
	PreferredLighting string `json:"preferred_lighting"`
	AIRecommendations bool   `json:"ai_recommendations"`
}

type measurementsDTO struct {
	Height    float64 `json:"height"`
	Weight    float64 `json:"weight"`
	Chest     float64 `json:"chest"`
	Waist     float64 `json:"waist"`
	Hips      float64 `json:"hips"`
	Shoulders float64 `json:"shoulders"`
}

type tenantDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Domain       string   `json:"domain"`
	Logo         string   `json:"logo,omitempty"`
	AllowedUsers int      `json:"allowed_users"`
	Features     []string `json:"features"`
	Subscription string   `json:"subscription"`
}

type productDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Images      []string `json:"images"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type sessionDTO struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ProductID    string    `json:"product_id"`
	StartedAt    time.Time `json:"started_at"`
	DurationMS   int64     `json:"duration_ms"`
	Interactions int       `json:"interactions"`
	Converted    bool      `json:"converted"`
	Feedback     *int      `json:"feedback,omitempty"`
}

func toUserDTO(u model.User) userDTO {
	dto := userDTO{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
		TenantID: u.TenantID,
		Avatar:   u.Avatar,
		Preferences: preferencesDTO{
			SkinTone:          u.Preferences.SkinTone,
			BodyType:          u.Preferences.BodyType,
			PreferredLighting: u.Preferences.PreferredLighting,
			AIRecommendations: u.Preferences.AIRecommendations,
		},
	}
	if u.Measurements != nil {
		dto.Measurements = &measurementsDTO{
			Height:    u.Measurements.Height,
			Weight:    u.Measurements.Weight,
			Chest:     u.Measurements.Chest,
			Waist:     u.Measurements.Waist,
			Hips:      u.Measurements.Hips,
			Shoulders: u.Measurements.Shoulders,
		}
	}
	return dto
}

func toTenantDTO(t model.Tenant) tenantDTO {
	return tenantDTO{
		ID:           t.ID,
		Name:         t.Name,
		Domain:       t.Domain,
		Logo:         t.Logo,
		AllowedUsers: t.Settings.AllowedUsers,
		Features:     t.Settings.Features,
		Subscription: t.Subscription,
	}
}

func toProductDTO(p model.Product) productDTO {
	return productDTO{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Brand:       p.Brand,
		Images:      p.Images,
		Sizes:       p.Sizes,
		Colors:      p.Colors,
		Price:       p.Price,
		Description: p.Description,
		Tags:        p.Tags,
	}
}

func toProductDTOs(products []model.Product) []productDTO {
	out := make([]productDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	return out
}

func toSessionDTO(s model.TryOnSession) sessionDTO {
	return sessionDTO{
		ID:           s.ID,
		UserID:       s.UserID,
		ProductID:    s.ProductID,
		StartedAt:    s.StartedAt,
		DurationMS:   s.Duration.Milliseconds(),
		Interactions: s.Interactions,
		Converted:    s.Converted,
		Feedback:     s.Feedback,
	}
}
