package handler

import (
	"context"  // provides context with cancellation for backend calls
	"errors"   // sentinel error comparisons
	"net/http" // HTTP status codes and primitives
	"strings"  // string manipulation utilities
	"time"     // timeouts for backend calls

	"github.com/golang-jwt/jwt/v5" // JSON Web Token library for parsing access tokens
	"github.com/labstack/echo/v4"  // Echo framework for HTTP routing

	"github.com/iliyamo/virtual-tryon-platform/internal/backend"    // credential errors from the auth backend
	"github.com/iliyamo/virtual-tryon-platform/internal/catalog"    // user directory lookups for token refresh
	"github.com/iliyamo/virtual-tryon-platform/internal/config"     // app configuration
	"github.com/iliyamo/virtual-tryon-platform/internal/model"      // domain value types
	"github.com/iliyamo/virtual-tryon-platform/internal/repository" // token persistence
	"github.com/iliyamo/virtual-tryon-platform/internal/store"      // session/auth state
	"github.com/iliyamo/virtual-tryon-platform/internal/utils"      // helper functions (hashing, token issuing)
)

// AuthHandler bundles dependencies for auth endpoints. The session
// store is the source of truth for the logged-in identity; tokens only
// let stateless HTTP clients re-prove who they are between requests.
type AuthHandler struct {
	Cfg       config.Config
	Session   *store.AuthStore
	Tokens    repository.TokenStore
	Directory catalog.Source
}

func NewAuthHandler(cfg config.Config, s *store.AuthStore, t repository.TokenStore, d catalog.Source) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Session: s, Tokens: t, Directory: d}
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}
type updateMeReq struct {
	Name         *string          `json:"name"`
	Avatar       *string          `json:"avatar"`
	Preferences  *preferencesDTO  `json:"preferences"`
	Measurements *measurementsDTO `json:"measurements"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type authResp struct {
	User    userDTO   `json:"user"`
	Tenant  tenantDTO `json:"tenant"`
	Access  tokenPart `json:"access"`
	Refresh tokenPart `json:"refresh"`
}

// Login: resolve the identity through the session store and return a
// token pair. The store drives the configured authentication backend:
// the stub accepts anything after a fixed delay, the directory-backed
// one checks the password against the stored hash.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Session.Login(ctx, req.Email, req.Password); err != nil {
		if errors.Is(err, backend.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "authentication backend unavailable"})
	}
	snap := h.Session.Snapshot()
	if snap.User == nil || snap.Tenant == nil {
		// A concurrent logout or newer login changed the state while
		// this call resolved; tell the client to retry.
		return c.JSON(http.StatusConflict, echo.Map{"error": "session superseded"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, snap.User.ID, snap.User.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	if err := h.Tokens.StoreRefresh(ctx, snap.User.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		User:    toUserDTO(*snap.User),
		Tenant:  toTenantDTO(*snap.Tenant),
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp}, // raw back to client
	})
}

// Refresh: validate by hash, revoke old, issue new pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	raw := strings.TrimSpace(req.RefreshToken)
	hash := utils.HashRefreshRaw(raw)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	userID, err := h.Tokens.ValidateRefresh(ctx, hash)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
	}
	_ = h.Tokens.RevokeByHash(ctx, hash)

	role, err := h.roleFor(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, userID, role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	newRef, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	if err := h.Tokens.StoreRefresh(ctx, userID, utils.HashRefreshRaw(newRef.Raw), newRef.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"access":  tokenPart{Token: access.Token, Expires: access.Exp},
		"refresh": tokenPart{Token: newRef.Raw, Expires: newRef.Exp},
	})
}

// RefreshAccess: validate a refresh token and return a new access token
// without rotating the refresh token.
func (h *AuthHandler) RefreshAccess(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	hash := utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	userID, err := h.Tokens.ValidateRefresh(ctx, hash)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
	}
	role, err := h.roleFor(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
	}
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, userID, role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access": tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// roleFor resolves the role claim for a refreshed token. The logged-in
// session takes precedence; otherwise the user directory is consulted.
func (h *AuthHandler) roleFor(ctx context.Context, userID string) (string, error) {
	if snap := h.Session.Snapshot(); snap.User != nil && snap.User.ID == userID {
		return snap.User.Role, nil
	}
	u, err := h.Directory.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

// Logout clears the session store synchronously and revokes refresh
// tokens. The store is cleared no matter what the token layer says:
// the authenticated flag must reflect "absent" immediately, and an
// in-flight login is free to complete afterwards. Token revocation
// accepts either a bearer token (revoke all sessions) or a specific
// refresh token in the body (revoke one).
func (h *AuthHandler) Logout(c echo.Context) error {
	h.Session.Logout()

	var uid string
	if raw, ok := bearerToken(c); ok {
		if sub, err := subjectOf(raw, h.Cfg.JWTSecret); err == nil {
			uid = sub
		}
	}

	var req refreshReq
	_ = c.Bind(&req)
	refreshToken := strings.TrimSpace(req.RefreshToken)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if uid != "" && refreshToken == "" {
		if err := h.Tokens.RevokeAllForUser(ctx, uid); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
		}
		return c.NoContent(http.StatusNoContent)
	}
	if refreshToken != "" {
		hash := utils.HashRefreshRaw(refreshToken)
		if _, err := h.Tokens.ValidateRefresh(ctx, hash); err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
		}
		if err := h.Tokens.RevokeByHash(ctx, hash); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
		}
		return c.NoContent(http.StatusNoContent)
	}
	// No tokens supplied; the session store was still cleared.
	return c.NoContent(http.StatusNoContent)
}

// Me returns the current session snapshot (protected).
func (h *AuthHandler) Me(c echo.Context) error {
	snap := h.Session.Snapshot()
	resp := echo.Map{
		"is_authenticated": snap.IsAuthenticated,
		"is_loading":       snap.IsLoading,
	}
	if snap.User != nil {
		resp["user"] = toUserDTO(*snap.User)
	}
	if snap.Tenant != nil {
		resp["tenant"] = toTenantDTO(*snap.Tenant)
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateMe merges a partial update into the logged-in user (protected).
// Fields absent from the body are left untouched; the tenant never
// changes through this endpoint.
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	var req updateMeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	update := model.UserUpdate{Name: req.Name, Avatar: req.Avatar}
	if req.Preferences != nil {
		update.Preferences = &model.UserPreferences{
			SkinTone:          req.Preferences.SkinTone,
			BodyType:          req.Preferences.BodyType,
			PreferredLighting: req.Preferences.PreferredLighting,
			AIRecommendations: req.Preferences.AIRecommendations,
		}
	}
	if req.Measurements != nil {
		update.Measurements = &model.BodyMeasurements{
			Height:    req.Measurements.Height,
			Weight:    req.Measurements.Weight,
			Chest:     req.Measurements.Chest,
			Waist:     req.Measurements.Waist,
			Hips:      req.Measurements.Hips,
			Shoulders: req.Measurements.Shoulders,
		}
	}

	merged, err := h.Session.UpdateUser(update)
	if err != nil {
		if errors.Is(err, store.ErrNotAuthenticated) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, toUserDTO(merged))
}

// bearerToken extracts the raw bearer token from the Authorization
// header, reporting whether one was present.
func bearerToken(c echo.Context) (string, bool) {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(auth, "Bearer "), true
}

// subjectOf parses an HS256 access token and returns its subject claim.
func subjectOf(raw, secret string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.ErrUnauthorized
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", echo.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", echo.ErrUnauthorized
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", echo.ErrUnauthorized
	}
	return sub, nil
}
