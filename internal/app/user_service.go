package app

import (
	"context"

	"hirepulse/internal/common"
	"hirepulse/internal/domain/user"
)

type UserService struct {
	users user.Repository
}

func NewUserService(users user.Repository) *UserService {
	return &UserService{users: users}
}

// ProfilePatch mirrors the shallow merge the profile update performs: only
// fields the caller sent are replaced.
type ProfilePatch struct {
	FirstName  *string
	LastName   *string
	Phone      *string
	Skills     []string
	Experience *string
	ResumeURL  *string
}

func (s *UserService) Profile(ctx context.Context, userID common.UUID) (*user.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID common.UUID, patch ProfilePatch) (*user.User, error) {
	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := current.Profile
	if patch.FirstName != nil {
		profile.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		profile.LastName = *patch.LastName
	}
	if patch.Phone != nil {
		profile.Phone = *patch.Phone
	}
	if patch.Skills != nil {
		profile.Skills = patch.Skills
	}
	if patch.Experience != nil {
		profile.Experience = *patch.Experience
	}
	if patch.ResumeURL != nil {
		profile.ResumeURL = *patch.ResumeURL
	}
	current.Profile = profile
	return s.users.Update(ctx, *current)
}

func (s *UserService) List(ctx context.Context) ([]user.User, error) {
	return s.users.List(ctx)
}

// UpdateStatus applies the activation and verification toggles. A nil flag
// was not sent and leaves the stored value alone.
func (s *UserService) UpdateStatus(ctx context.Context, userID common.UUID, isActive, isVerified *bool) (*user.User, error) {
	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if isActive != nil {
		current.IsActive = *isActive
	}
	if isVerified != nil {
		current.IsVerified = *isVerified
	}
	return s.users.Update(ctx, *current)
}

func (s *UserService) Delete(ctx context.Context, userID common.UUID) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.users.Delete(ctx, userID)
}
