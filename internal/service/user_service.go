package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/quanticedge/profile-portal/internal/domain"
	"github.com/quanticedge/profile-portal/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// VisibleUsers applies the access scoping policy for an authenticated
// caller: admins see every record, everyone else sees only their own.
// This is the only path that may return more than one record.
func (s *UserService) VisibleUsers(ctx context.Context, callerID uuid.UUID) ([]*domain.User, error) {
	caller, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		// covers a token whose subject was deleted after issuance
		return nil, err
	}

	if caller.IsAdmin {
		return s.userRepo.GetAll(ctx)
	}
	return []*domain.User{caller}, nil
}

// DeleteUser removes a record by id. Authorization (admin-only) is
// enforced at the handler; the historical endpoint had none at all.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.userRepo.Delete(ctx, id)
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
