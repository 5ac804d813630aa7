package backend

import (
	"context"
	"errors"

	"github.com/iliyamo/virtual-tryon-platform/internal/model"
	"github.com/iliyamo/virtual-tryon-platform/internal/repository"
	"github.com/iliyamo/virtual-tryon-platform/internal/utils"
)

// ErrInvalidCredentials signals a rejected email/password pair. Only
// the directory-backed backend produces it; the stub accepts anything.
var ErrInvalidCredentials = errors.New("invalid credentials")

// DirectoryAuth authenticates against the SQL-backed user directory:
// the email must resolve to a directory user and the password must
// match its stored bcrypt hash. Used instead of MockAuth when a
// database is configured.
type DirectoryAuth struct {
	Users *repository.UserRepo
}

func NewDirectoryAuth(users *repository.UserRepo) *DirectoryAuth {
	return &DirectoryAuth{Users: users}
}

func (d *DirectoryAuth) Authenticate(ctx context.Context, email, password string) (model.User, model.Tenant, error) {
	u, hash, err := d.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, model.Tenant{}, ErrInvalidCredentials
		}
		return model.User{}, model.Tenant{}, err
	}
	if !utils.VerifyPassword(hash, password) {
		return model.User{}, model.Tenant{}, ErrInvalidCredentials
	}
	return u, demoTenant(), nil
}
