package model

// Tenant is the organization-level account boundary. All users,
// products and settings are scoped to exactly one tenant. The pair
// {User, Tenant} is resolved together at login and owned by the
// session store for the lifetime of the authenticated session; nothing
// in this scope mutates a tenant after login.
//
// Fields:
//  ID           – unique tenant identifier.
//  Name         – organization display name.
//  Domain       – organization domain string (e.g. "fashionforward.com").
//  Logo         – optional logo image reference.
//  Settings     – seat allowance and feature gates.
//  Subscription – basic | pro | enterprise.
type Tenant struct {
	ID           string
	Name         string
	Domain       string
	Logo         string
	Settings     TenantSettings
	Subscription string
}

// Subscription tiers.
const (
	SubscriptionBasic      = "basic"
	SubscriptionPro        = "pro"
	SubscriptionEnterprise = "enterprise"
)

// TenantSettings holds per-tenant entitlements.
//
// Fields:
//  AllowedUsers   – seat allowance for the tenant.
//  Features       – enabled feature flags (e.g. "ai-recommendations").
//  CustomBranding – whether custom branding is enabled.
//  APIAccess      – whether programmatic API access is enabled.
type TenantSettings struct {
	AllowedUsers   int
	Features       []string
	CustomBranding bool
	APIAccess      bool
}
