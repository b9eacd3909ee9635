package profile

import (
	"context"
	"database/sql"

	autherrors "github.com/louiscollinsjr/miere-app/internal/auth/errors"

	"github.com/google/uuid"
)

//go:generate mockgen -source=profile_service.go -destination=../mock/profile/profile_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, userID string) (ProfileResponse, error)

	// PreferredLanguage satisfies the locale resolver; "" when the
	// user has no stored preference.
	PreferredLanguage(ctx context.Context, userID string) (string, error)
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service {
	return &service{repo: r}
}

func (s *service) Get(ctx context.Context, userID string) (ProfileResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return ProfileResponse{}, autherrors.ErrInvalidUserID
	}

	p, err := s.repo.GetByID(ctx, id)
	if err == sql.ErrNoRows {
		return ProfileResponse{}, autherrors.ErrUserNotFound
	}
	if err != nil {
		return ProfileResponse{}, err
	}

	return ProfileResponse{
		ID:                p.ID.String(),
		Email:             p.Email,
		FullName:          p.FullName.String,
		PreferredLanguage: p.PreferredLanguage.String,
	}, nil
}

func (s *service) PreferredLanguage(ctx context.Context, userID string) (string, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	return p.PreferredLanguage, nil
}
