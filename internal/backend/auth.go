// Package backend defines the external collaborators the stores talk
// to: the authentication backend, the recommendation engine and the
// camera capture device. Each has a stub implementation that succeeds
// after a fixed delay with canned data, standing in for the real
// services until they exist.
package backend

import (
	"context"
	"strings"
	"time"

	"github.com/iliyamo/virtual-tryon-platform/internal/model"
)

// AuthBackend resolves credentials into an identity. The returned pair
// is installed atomically by the session store; implementations must
// honor ctx cancellation during any network wait.
type AuthBackend interface {
	Authenticate(ctx context.Context, email, password string) (model.User, model.Tenant, error)
}

// MockAuth is the stubbed authentication backend. It ignores the
// password, waits Delay to simulate the network round trip, and always
// resolves to the canned demo identity with the caller's email echoed
// back. Credential verification is deliberately absent at this stage.
type MockAuth struct {
	Delay time.Duration
}

// NewMockAuth returns a MockAuth with the given simulated latency.
func NewMockAuth(delay time.Duration) *MockAuth { return &MockAuth{Delay: delay} }

// Authenticate waits out the simulated latency and returns the demo
// user and tenant. The only failure path is ctx expiry during the wait.
func (m *MockAuth) Authenticate(ctx context.Context, email, _ string) (model.User, model.Tenant, error) {
	if err := sleep(ctx, m.Delay); err != nil {
		return model.User{}, model.Tenant{}, err
	}
	user := model.User{
		ID:       "1",
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Name:     "John Doe",
		Role:     model.RoleAdmin,
		TenantID: "tenant-1",
		Preferences: model.UserPreferences{
			SkinTone:          "medium",
			BodyType:          "rectangle",
			PreferredLighting: "natural",
			AIRecommendations: true,
		},
	}
	return user, demoTenant(), nil
}

// demoTenant is the single provisioned tenant. Tenant provisioning is
// not modeled yet; every identity resolves into this one.
func demoTenant() model.Tenant {
	return model.Tenant{
		ID:     "tenant-1",
		Name:   "Fashion Forward Inc.",
		Domain: "fashionforward.com",
		Settings: model.TenantSettings{
			AllowedUsers:   100,
			Features:       []string{"ai-recommendations", "analytics", "api-access"},
			CustomBranding: true,
			APIAccess:      true,
		},
		Subscription: model.SubscriptionEnterprise,
	}
}

// sleep waits d or until ctx is done, whichever comes first. A zero or
// negative d returns immediately so tests can run without delays.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
