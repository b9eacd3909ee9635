package profile

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// Profile mirrors the hosted auth service's profiles table. Auth itself
// (passwords, sessions) stays with the hosted service; this side only
// reads.
type Profile struct {
	ID                uuid.UUID
	Email             string
	FullName          sql.NullString
	PreferredLanguage sql.NullString
}

//go:generate mockgen -source=profile_repo.go -destination=../mock/profile/profile_repo_mock.go -package=mock
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (Profile, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (Profile, error) {
	var p Profile
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, full_name, preferred_language FROM profiles WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Email, &p.FullName, &p.PreferredLanguage)
	return p, err
}
