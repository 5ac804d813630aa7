package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/iliyamo/virtual-tryon-platform/internal/backend"
	"github.com/iliyamo/virtual-tryon-platform/internal/model"
)

// gatedAuth is an AuthBackend whose completion is controlled by the
// test: each Authenticate call blocks until the gate registered for its
// email is closed. This makes in-flight login interleavings
// deterministic without real delays.
type gatedAuth struct {
	calls chan string // receives the email of each issued call
	gates map[string]chan struct{}
	err   error
}

func newGatedAuth(emails ...string) *gatedAuth {
	g := &gatedAuth{calls: make(chan string, 8), gates: make(map[string]chan struct{}, len(emails))}
	for _, e := range emails {
		g.gates[e] = make(chan struct{})
	}
	return g
}

func (g *gatedAuth) Authenticate(ctx context.Context, email, _ string) (model.User, model.Tenant, error) {
	g.calls <- email
	<-g.gates[email]
	if g.err != nil {
		return model.User{}, model.Tenant{}, g.err
	}
	u := model.User{ID: "1", Email: email, Role: model.RoleAdmin, TenantID: "tenant-1"}
	t := model.Tenant{ID: "tenant-1", Subscription: model.SubscriptionEnterprise}
	return u, t, nil
}

// release lets the pending Authenticate call for email finish.
func (g *gatedAuth) release(email string) {
	close(g.gates[email])
}

func TestLoginResolvesIdentity(t *testing.T) {
	s := NewAuthStore(backend.NewMockAuth(0))
	if err := s.Login(context.Background(), "a@b.com", "x"); err != nil {
		t.Fatalf("login: %v", err)
	}
	snap := s.Snapshot()
	if !snap.IsAuthenticated {
		t.Fatal("expected authenticated after login")
	}
	if snap.IsLoading {
		t.Fatal("loading must be cleared after login")
	}
	if snap.User == nil || snap.User.Email != "a@b.com" {
		t.Fatalf("user = %+v, want email a@b.com", snap.User)
	}
	if snap.Tenant == nil || snap.Tenant.Subscription != model.SubscriptionEnterprise {
		t.Fatalf("tenant = %+v, want enterprise subscription", snap.Tenant)
	}
}

// isAuthenticated must track user presence in lock-step through the
// whole login/logout cycle.
func TestAuthenticatedIffUserPresent(t *testing.T) {
	s := NewAuthStore(backend.NewMockAuth(0))
	check := func(stage string) {
		snap := s.Snapshot()
		if snap.IsAuthenticated != (snap.User != nil) {
			t.Fatalf("%s: isAuthenticated=%v but user present=%v", stage, snap.IsAuthenticated, snap.User != nil)
		}
	}
	check("initial")
	_ = s.Login(context.Background(), "a@b.com", "x")
	check("after login")
	s.Logout()
	check("after logout")
}

func TestLogoutIdempotent(t *testing.T) {
	s := NewAuthStore(backend.NewMockAuth(0))
	_ = s.Login(context.Background(), "a@b.com", "x")
	s.Logout()
	first := s.Snapshot()
	s.Logout()
	second := s.Snapshot()
	if first.IsAuthenticated || second.IsAuthenticated {
		t.Fatal("logout must leave store unauthenticated")
	}
	if second.User != nil || second.Tenant != nil {
		t.Fatal("double logout must keep user and tenant absent")
	}
}

func TestUpdateUserRequiresIdentity(t *testing.T) {
	s := NewAuthStore(backend.NewMockAuth(0))
	name := "New Name"
	if _, err := s.UpdateUser(model.UserUpdate{Name: &name}); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("err = %v, want ErrNotAuthenticated", err)
	}
}

func TestUpdateUserMergesOnlySuppliedFields(t *testing.T) {
	s := NewAuthStore(backend.NewMockAuth(0))
	_ = s.Login(context.Background(), "a@b.com", "x")
	before := s.Snapshot()

	name := "Jane Roe"
	merged, err := s.UpdateUser(model.UserUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if merged.Name != "Jane Roe" {
		t.Fatalf("merged name = %q, want %q", merged.Name, "Jane Roe")
	}
	after := s.Snapshot()
	if after.User.Name != "Jane Roe" {
		t.Fatalf("name = %q, want %q", after.User.Name, "Jane Roe")
	}
	if after.User.Email != before.User.Email || after.User.Role != before.User.Role {
		t.Fatal("fields absent from the update must not change")
	}
	if !reflect.DeepEqual(*after.Tenant, *before.Tenant) {
		t.Fatal("updateUser must never touch the tenant")
	}
}

// The merged user returned by UpdateUser stays valid even when a
// logout clears the store before the caller reads it back.
func TestUpdateUserResultSurvivesConcurrentLogout(t *testing.T) {
	s := NewAuthStore(backend.NewMockAuth(0))
	_ = s.Login(context.Background(), "a@b.com", "x")

	name := "Jane Roe"
	merged, err := s.UpdateUser(model.UserUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	s.Logout()

	if merged.Name != "Jane Roe" || merged.Email != "a@b.com" {
		t.Fatalf("merged = %+v, want the update's result", merged)
	}
	if s.Snapshot().User != nil {
		t.Fatal("logout must still clear the store")
	}
}

// A logout issued while a login is pending does not cancel it; the
// login's completion wins and re-authenticates the store.
func TestLogoutDuringPendingLoginLastCompletionWins(t *testing.T) {
	g := newGatedAuth("a@b.com")
	s := NewAuthStore(g)

	done := make(chan error, 1)
	go func() { done <- s.Login(context.Background(), "a@b.com", "x") }()
	<-g.calls

	s.Logout()
	if s.IsAuthenticated() {
		t.Fatal("logout must clear the authenticated flag immediately")
	}

	g.release("a@b.com")
	if err := <-done; err != nil {
		t.Fatalf("login: %v", err)
	}
	snap := s.Snapshot()
	if !snap.IsAuthenticated || snap.User == nil {
		t.Fatal("login completion after logout must leave the store authenticated")
	}
}

// A login superseded by a newer one must not overwrite the newer result.
func TestStaleLoginCompletionDiscarded(t *testing.T) {
	g := newGatedAuth("old@b.com", "new@b.com")
	s := NewAuthStore(g)

	first := make(chan error, 1)
	go func() { first <- s.Login(context.Background(), "old@b.com", "x") }()
	<-g.calls

	second := make(chan error, 1)
	go func() { second <- s.Login(context.Background(), "new@b.com", "x") }()
	<-g.calls

	g.release("old@b.com")
	if err := <-first; err != nil {
		t.Fatalf("first login: %v", err)
	}
	// The first call resolved while the second held the latest
	// generation, so its result must have been discarded.
	if s.IsAuthenticated() {
		t.Fatal("stale login completion must not authenticate the store")
	}
	g.release("new@b.com")
	if err := <-second; err != nil {
		t.Fatalf("second login: %v", err)
	}
	snap := s.Snapshot()
	if snap.User == nil || snap.User.Email != "new@b.com" {
		t.Fatalf("user = %+v, want the newest login's identity", snap.User)
	}
	if snap.IsLoading {
		t.Fatal("loading must be cleared once the latest login resolves")
	}
}

func TestLoginBackendFailureClearsLoading(t *testing.T) {
	g := newGatedAuth("a@b.com")
	g.err = errors.New("backend unavailable")
	s := NewAuthStore(g)

	done := make(chan error, 1)
	go func() { done <- s.Login(context.Background(), "a@b.com", "x") }()
	<-g.calls
	g.release("a@b.com")

	if err := <-done; err == nil {
		t.Fatal("expected backend error")
	}
	snap := s.Snapshot()
	if snap.IsLoading {
		t.Fatal("loading must be cleared on the failure path")
	}
	if snap.IsAuthenticated || snap.User != nil {
		t.Fatal("failed login must leave the store unauthenticated")
	}
	if snap.LastError == nil {
		t.Fatal("backend failure must be recorded in LastError")
	}
}

func TestLoginHonorsContext(t *testing.T) {
	s := NewAuthStore(backend.NewMockAuth(time.Minute))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Login(ctx, "a@b.com", "x") }()
	cancel()
	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected context error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("login did not observe context cancellation")
	}
}
