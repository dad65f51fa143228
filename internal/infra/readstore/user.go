package readstore

import (
	"context"

	"agromarket-api/internal/domain/user"
	"agromarket-api/internal/infra"
	"agromarket-api/internal/infra/db"
	"agromarket-api/internal/pkg/pgconv"
	"agromarket-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	query := `
		SELECT id, email, role, is_active
		FROM users
		WHERE id = $1`

	var rm readmodel.AuthorizedUserRM
	err := r.db.QueryRow(ctx, query, id).Scan(&rm.ID, &rm.Email, &rm.Role, &rm.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &rm, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error) {
	query := `
		SELECT id, email, role, is_active, password_hash
		FROM users
		WHERE email = $1`

	var (
		rm           readmodel.AuthorizedUserRM
		passwordHash string
	)
	err := r.db.QueryRow(ctx, query, email.Value()).Scan(&rm.ID, &rm.Email, &rm.Role, &rm.IsActive, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &rm, passwordHash, nil
}
