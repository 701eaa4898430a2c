package readstore

import (
	"context"

	"rentwheels/internal/infra"
	"rentwheels/internal/infra/db"
	"rentwheels/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := s.db.QueryRow(ctx, `
		SELECT id, name, email, user_type, total_trips, loyalty_points, last_login
		FROM users
		WHERE id = $1`,
		id,
	).Scan(&view.ID, &view.Name, &view.Email, &view.UserType, &view.TotalTrips, &view.LoyaltyPoints, &view.LastLogin)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &view, nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := s.db.QueryRow(ctx, `
		SELECT id, name, email, user_type, total_trips, loyalty_points, last_login, password_hash
		FROM users
		WHERE email = $1`,
		email,
	).Scan(&view.ID, &view.Name, &view.Email, &view.UserType, &view.TotalTrips, &view.LoyaltyPoints, &view.LastLogin, &hash)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}

var _ queries.UserReadStore = (*UserReadStore)(nil)
