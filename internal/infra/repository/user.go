package repository

import (
	"context"

	"rentwheels/internal/domain/user"
	"rentwheels/internal/infra"
	"rentwheels/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (id, name, email, password_hash, user_type, total_trips, loyalty_points, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 0, 0, now(), now())
		RETURNING id`,
		u.ID(), u.Name(), u.Email().Value(), u.PasswordHash(), string(u.UserType()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.Exec(ctx,
		`UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`,
		userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

func (r *UserRepository) ApplyTripStats(ctx context.Context, userID uuid.UUID, tripsDelta int, pointsDelta int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET total_trips = GREATEST(total_trips + $2, 0),
		    loyalty_points = GREATEST(loyalty_points + $3, 0),
		    updated_at = now()
		WHERE id = $1`,
		userID, tripsDelta, pointsDelta)
	if err != nil {
		return infra.WrapRepoErr("failed to adjust trip stats", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
