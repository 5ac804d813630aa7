package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/virtual-tryon-platform/internal/analytics"
)

// AnalyticsHandler serves the dashboard overview numbers.
type AnalyticsHandler struct {
	Stats *analytics.Aggregator
}

func NewAnalyticsHandler(a *analytics.Aggregator) *AnalyticsHandler {
	return &AnalyticsHandler{Stats: a}
}

type engagementDTO struct {
	Day         string `json:"day"`
	Sessions    int    `json:"sessions"`
	Conversions int    `json:"conversions"`
}

type categoryShareDTO struct {
	Category string `json:"category"`
	Percent  int    `json:"percent"`
}

// Overview returns the headline stats plus the engagement and category
// series the dashboard charts render.
func (h *AnalyticsHandler) Overview(c echo.Context) error {
	ov := h.Stats.Overview()
	engagement := make([]engagementDTO, 0, len(ov.Engagement))
	for _, p := range ov.Engagement {
		engagement = append(engagement, engagementDTO{Day: p.Day, Sessions: p.Sessions, Conversions: p.Conversions})
	}
	categories := make([]categoryShareDTO, 0, len(ov.CategoryShare))
	for _, s := range ov.CategoryShare {
		categories = append(categories, categoryShareDTO{Category: s.Category, Percent: s.Percent})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"total_users":     ov.TotalUsers,
		"active_sessions": ov.ActiveSessions,
		"total_tryons":    ov.TotalTryOns,
		"conversion_rate": ov.ConversionRate,
		"engagement":      engagement,
		"category_share":  categories,
	})
}
