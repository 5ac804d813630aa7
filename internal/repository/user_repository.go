package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/virtual-tryon-platform/internal/model"
	"github.com/iliyamo/virtual-tryon-platform/internal/utils"
)

// UserRepo reads and writes the tenant's user directory in the
// 'directory_users' table. The directory is the catalog collaborator's
// view of users (the records behind the user-management page); it is
// distinct from the session store, which owns the logged-in identity.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a directory user with a bcrypt password hash and
// returns its generated id.
func (r *UserRepo) Create(ctx context.Context, u model.User, password string, cost int) (string, error) {
	email := strings.ToLower(strings.TrimSpace(u.Email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return "", err
	}
	id := utils.NewID()
	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO directory_users
		 (id, tenant_id, email, password_hash, name, role, avatar,
		  skin_tone, body_type, preferred_lighting, ai_recommendations)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		id, u.TenantID, email, hash, u.Name, u.Role, u.Avatar,
		u.Preferences.SkinTone, u.Preferences.BodyType,
		u.Preferences.PreferredLighting, u.Preferences.AIRecommendations)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return "", ErrEmailExists
		}
		return "", err
	}
	return id, nil
}

const userColumns = `id, tenant_id, email, name, role, avatar,
	skin_tone, body_type, preferred_lighting, ai_recommendations`

// GetByEmail fetches a directory user by normalized email along with
// the stored password hash.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var (
		u    model.User
		hash string
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+", password_hash FROM directory_users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.TenantID, &u.Email, &u.Name, &u.Role, &u.Avatar,
		&u.Preferences.SkinTone, &u.Preferences.BodyType,
		&u.Preferences.PreferredLighting, &u.Preferences.AIRecommendations, &hash)
	if err == sql.ErrNoRows {
		return model.User{}, "", ErrNotFound
	}
	return u, hash, err
}

// GetByID fetches a directory user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM directory_users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.TenantID, &u.Email, &u.Name, &u.Role, &u.Avatar,
		&u.Preferences.SkinTone, &u.Preferences.BodyType,
		&u.Preferences.PreferredLighting, &u.Preferences.AIRecommendations)
	if err == sql.ErrNoRows {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// ListByTenant returns all directory users of a tenant, newest first
// (ULID ids sort by creation time).
func (r *UserRepo) ListByTenant(ctx context.Context, tenantID string) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userColumns+" FROM directory_users WHERE tenant_id=? ORDER BY id DESC",
		tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.TenantID, &u.Email, &u.Name, &u.Role, &u.Avatar,
			&u.Preferences.SkinTone, &u.Preferences.BodyType,
			&u.Preferences.PreferredLighting, &u.Preferences.AIRecommendations); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
