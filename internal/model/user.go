package model

// User represents an application identity as resolved by the
// authentication backend or loaded from the user directory. The json
// tags are omitted here because these structs are primarily used
// internally by the stores and repositories; handlers define separate
// response types with appropriate JSON tags.
//
// A user always carries a Preferences value; Measurements and Avatar
// are optional and may be nil/empty.
//
// Fields:
//  ID           – unique identifier of the user (ULID for directory users).
//  Email        – unique email address.
//  Name         – display name.
//  Role         – one of RoleAdmin, RoleManager, RoleUser.
//  TenantID     – owning tenant identifier.
//  Avatar       – optional avatar image reference.
//  Preferences  – personalization attributes, always present.
//  Measurements – optional body measurements for size fitting.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         string
	TenantID     string
	Avatar       string
	Preferences  UserPreferences
	Measurements *BodyMeasurements
}

// Roles a user may hold. The role gates the administrative surface of
// the dashboard (user directory, analytics) via middleware.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// UserPreferences holds the enumerated personalization attributes used
// to tailor try-on rendering and recommendations. Always present on a
// User; replaced as a whole, never mutated field by field.
//
// Fields:
//  SkinTone          – light | medium | dark | deep.
//  BodyType          – pear | apple | hourglass | rectangle | inverted-triangle.
//  PreferredLighting – natural | warm | cool | studio.
//  AIRecommendations – whether AI product recommendations are enabled.
type UserPreferences struct {
	SkinTone          string
	BodyType          string
	PreferredLighting string
	AIRecommendations bool
}

// BodyMeasurements stores body dimensions in centimeters (weight in
// kilograms) used by size recommendation overlays.
type BodyMeasurements struct {
	Height    float64
	Weight    float64
	Chest     float64
	Waist     float64
	Hips      float64
	Shoulders float64
}

// UserUpdate carries a partial update to a User. Nil fields are left
// untouched by AuthStore.UpdateUser; non-nil fields replace the current
// value atomically. The tenant is never affected by a user update.
type UserUpdate struct {
	Name         *string
	Avatar       *string
	Preferences  *UserPreferences
	Measurements *BodyMeasurements
}
