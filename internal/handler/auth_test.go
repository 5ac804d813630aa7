package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/virtual-tryon-platform/internal/backend"
	"github.com/iliyamo/virtual-tryon-platform/internal/catalog"
	"github.com/iliyamo/virtual-tryon-platform/internal/config"
	"github.com/iliyamo/virtual-tryon-platform/internal/repository"
	"github.com/iliyamo/virtual-tryon-platform/internal/store"
)

func testAuthHandler() *AuthHandler {
	cfg := config.Config{
		JWTSecret:      "test-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 7,
	}
	session := store.NewAuthStore(backend.NewMockAuth(0))
	return NewAuthHandler(cfg, session, repository.NewMemoryTokenStore(), catalog.NewMemory(0))
}

func doJSON(h echo.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	err := h(e.NewContext(req, rec))
	return rec, err
}

func TestLoginReturnsIdentityAndTokens(t *testing.T) {
	h := testAuthHandler()

	rec, err := doJSON(h.Login, http.MethodPost, "/v1/auth/login", `{"email":"Anna@Corp.io","password":"pw"}`)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		User struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
		Tenant struct {
			Name string `json:"name"`
		} `json:"tenant"`
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
		Refresh struct {
			Token string `json:"token"`
		} `json:"refresh"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.User.Email != "anna@corp.io" {
		t.Fatalf("email = %q, want the lowercased input echoed back", resp.User.Email)
	}
	if resp.User.Name != "John Doe" {
		t.Fatalf("name = %q", resp.User.Name)
	}
	if resp.Tenant.Name != "Fashion Forward Inc." {
		t.Fatalf("tenant = %q", resp.Tenant.Name)
	}
	if resp.Access.Token == "" || resp.Refresh.Token == "" {
		t.Fatal("expected a token pair")
	}
	if !h.Session.IsAuthenticated() {
		t.Fatal("session store must hold the identity after login")
	}
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	h := testAuthHandler()
	rec, err := doJSON(h.Login, http.MethodPost, "/v1/auth/login", `{"email":"","password":""}`)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	h := testAuthHandler()

	rec, _ := doJSON(h.Login, http.MethodPost, "/v1/auth/login", `{"email":"a@b.com","password":"pw"}`)
	var login struct {
		Refresh struct {
			Token string `json:"token"`
		} `json:"refresh"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatalf("decode login: %v", err)
	}

	rec, err := doJSON(h.Refresh, http.MethodPost, "/v1/auth/refresh",
		`{"refresh_token":"`+login.Refresh.Token+`"}`)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// The old token was revoked by the rotation.
	rec, err = doJSON(h.Refresh, http.MethodPost, "/v1/auth/refresh",
		`{"refresh_token":"`+login.Refresh.Token+`"}`)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("reused token status = %d, want 401", rec.Code)
	}
}

func TestLogoutClearsSessionEvenWithoutTokens(t *testing.T) {
	h := testAuthHandler()
	doJSON(h.Login, http.MethodPost, "/v1/auth/login", `{"email":"a@b.com","password":"pw"}`)

	rec, err := doJSON(h.Logout, http.MethodPost, "/v1/auth/logout", `{}`)
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if h.Session.IsAuthenticated() {
		t.Fatal("logout must clear the session store")
	}
}

func TestUpdateMeWithoutSessionIsRejected(t *testing.T) {
	h := testAuthHandler()
	rec, err := doJSON(h.UpdateMe, http.MethodPatch, "/v1/me", `{"name":"New Name"}`)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestUpdateMeMergesFields(t *testing.T) {
	h := testAuthHandler()
	doJSON(h.Login, http.MethodPost, "/v1/auth/login", `{"email":"a@b.com","password":"pw"}`)

	rec, err := doJSON(h.UpdateMe, http.MethodPatch, "/v1/me", `{"name":"New Name"}`)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var u struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if u.Name != "New Name" {
		t.Fatalf("name = %q", u.Name)
	}
	if u.Email != "a@b.com" {
		t.Fatalf("email changed to %q", u.Email)
	}
}
