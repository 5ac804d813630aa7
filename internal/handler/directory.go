package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/virtual-tryon-platform/internal/catalog"
	"github.com/iliyamo/virtual-tryon-platform/internal/model"
	"github.com/iliyamo/virtual-tryon-platform/internal/repository"
	"github.com/iliyamo/virtual-tryon-platform/internal/store"
)

// DirectoryHandler serves the tenant's user directory for the user
// management page. Restricted to admin and manager roles by the router.
// Users is nil in fixture mode, which makes the directory read-only.
type DirectoryHandler struct {
	Source     catalog.Source
	Session    *store.AuthStore
	Users      *repository.UserRepo
	BcryptCost int
}

func NewDirectoryHandler(src catalog.Source, s *store.AuthStore, users *repository.UserRepo, bcryptCost int) *DirectoryHandler {
	return &DirectoryHandler{Source: src, Session: s, Users: users, BcryptCost: bcryptCost}
}

// ListUsers returns the directory of the logged-in user's tenant.
func (h *DirectoryHandler) ListUsers(c echo.Context) error {
	snap := h.Session.Snapshot()
	if snap.Tenant == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Source.ListUsers(ctx, snap.Tenant.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "directory unavailable"})
	}
	out := make([]userDTO, 0, len(users))
	for _, u := range users {
		out = append(out, toUserDTO(u))
	}
	return c.JSON(http.StatusOK, echo.Map{"users": out})
}

type createUserReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
}

// CreateUser adds a directory user to the logged-in user's tenant
// (admin only). Fixture mode has no writable directory and answers 503.
func (h *DirectoryHandler) CreateUser(c echo.Context) error {
	if h.Users == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "directory is read-only"})
	}
	snap := h.Session.Snapshot()
	if snap.Tenant == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}

	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email, password and name required"})
	}
	switch req.Role {
	case "":
		req.Role = model.RoleUser
	case model.RoleAdmin, model.RoleManager, model.RoleUser:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown role"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u := model.User{
		Email:    req.Email,
		Name:     req.Name,
		Role:     req.Role,
		TenantID: snap.Tenant.ID,
		Avatar:   req.Avatar,
	}
	id, err := h.Users.Create(ctx, u, req.Password, h.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	u.ID = id
	return c.JSON(http.StatusCreated, toUserDTO(u))
}
