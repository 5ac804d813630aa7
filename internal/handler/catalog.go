package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/virtual-tryon-platform/internal/catalog"
	"github.com/iliyamo/virtual-tryon-platform/internal/repository"
)

// CatalogHandler exposes the product catalog for unauthenticated
// browsing. Responses sit behind the Redis response cache when one is
// configured, since the catalog changes rarely.
type CatalogHandler struct {
	Source catalog.Source
}

func NewCatalogHandler(src catalog.Source) *CatalogHandler { return &CatalogHandler{Source: src} }

// ListProducts returns the catalog, optionally filtered with
// ?category=clothing|accessories|shoes.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	products, err := h.Source.ListProducts(ctx, c.QueryParam("category"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"products": toProductDTOs(products)})
}

// GetProduct returns one product by id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Source.GetProduct(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog unavailable"})
	}
	return c.JSON(http.StatusOK, toProductDTO(p))
}
