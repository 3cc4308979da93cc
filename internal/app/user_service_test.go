package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"hirepulse/internal/common"
	"hirepulse/internal/domain/user"
)

type fakeUserRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[common.UUID]*user.User)}
}

func (r *fakeUserRepo) add(u user.User) *user.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == (common.UUID{}) {
		u.ID = common.NewUUID()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	stored := u
	r.byID[u.ID] = &stored
	return cloneAccount(&stored)
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id common.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.byID[id]
	if stored == nil {
		return nil, common.NewError(common.CodeNotFound, "User not found", nil)
	}
	return cloneAccount(stored), nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []user.User
	for _, stored := range r.byID {
		out = append(out, *cloneAccount(stored))
	}
	return out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[u.ID]; !ok {
		return nil, common.NewError(common.CodeNotFound, "User not found", nil)
	}
	u.UpdatedAt = time.Now().UTC()
	stored := u
	r.byID[u.ID] = &stored
	return cloneAccount(&stored), nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return common.NewError(common.CodeNotFound, "User not found", nil)
	}
	delete(r.byID, id)
	return nil
}

func cloneAccount(u *user.User) *user.User {
	copy := *u
	copy.Profile.Skills = append([]string(nil), u.Profile.Skills...)
	return &copy
}

func TestUserServiceUpdateProfile_ShallowMerge(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo)
	account := repo.add(user.User{
		Email: "jane@example.com",
		Role:  user.RoleCandidate,
		Profile: user.Profile{
			FirstName: "Jane",
			LastName:  "Doe",
			Skills:    []string{"go"},
		},
	})

	phone := "+15550100"
	updated, err := service.UpdateProfile(context.Background(), account.ID, ProfilePatch{
		Phone:  &phone,
		Skills: []string{"go", "postgres"},
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Profile.Phone != phone {
		t.Fatalf("expected phone %q, got %q", phone, updated.Profile.Phone)
	}
	if len(updated.Profile.Skills) != 2 {
		t.Fatalf("expected 2 skills, got %v", updated.Profile.Skills)
	}
	if updated.Profile.FirstName != "Jane" || updated.Profile.LastName != "Doe" {
		t.Fatalf("expected untouched names, got %+v", updated.Profile)
	}
}

func TestUserServiceUpdateProfile_UnknownUser(t *testing.T) {
	service := NewUserService(newFakeUserRepo())

	_, err := service.UpdateProfile(context.Background(), common.NewUUID(), ProfilePatch{})
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestUserServiceUpdateStatus_PartialFlags(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo)
	account := repo.add(user.User{Email: "jane@example.com", Role: user.RoleCandidate, IsActive: true})

	verified := true
	updated, err := service.UpdateStatus(context.Background(), account.ID, nil, &verified)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !updated.IsActive {
		t.Fatal("expected is_active to be left alone")
	}
	if !updated.IsVerified {
		t.Fatal("expected is_verified to be set")
	}

	active := false
	updated, err = service.UpdateStatus(context.Background(), account.ID, &active, nil)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.IsActive {
		t.Fatal("expected is_active to be cleared")
	}
	if !updated.IsVerified {
		t.Fatal("expected is_verified to be kept")
	}
}

func TestUserServiceDelete(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo)
	account := repo.add(user.User{Email: "jane@example.com", Role: user.RoleCandidate})

	if err := service.Delete(context.Background(), account.ID); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := service.Delete(context.Background(), account.ID); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
