package services

import (
	"context"
	"testing"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
	"github.com/kita-labs/tanyahr-core/internal/core/ports/driven/mocks"
	"github.com/kita-labs/tanyahr-core/internal/core/ports/driving"
)

type userFixture struct {
	users    *mocks.MockUserStore
	sessions *mocks.MockSessionStore
	service  driving.UserService
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()
	f := &userFixture{
		users:    mocks.NewMockUserStore(),
		sessions: mocks.NewMockSessionStore(),
	}
	f.service = NewUserService(f.users, f.sessions, mocks.NewMockAuthAdapter())
	return f
}

func TestUserService_Setup(t *testing.T) {
	f := newUserFixture(t)

	resp, err := f.service.Setup(context.Background(), driving.SetupRequest{
		Email:    "admin@example.com",
		Password: "password123",
		Name:     "Admin HR",
	})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if resp.User.Role != domain.RoleHR {
		t.Errorf("Role = %v, want %v", resp.User.Role, domain.RoleHR)
	}
	if !resp.User.Active {
		t.Error("expected initial user to be active")
	}
}

func TestUserService_Setup_AlreadyInitialized(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	if _, err := f.service.Setup(ctx, driving.SetupRequest{
		Email:    "admin@example.com",
		Password: "password123",
		Name:     "Admin HR",
	}); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	_, err := f.service.Setup(ctx, driving.SetupRequest{
		Email:    "second@example.com",
		Password: "password123",
		Name:     "Second Admin",
	})
	if err != domain.ErrForbidden {
		t.Errorf("Setup() error = %v, want ErrForbidden", err)
	}
}

func TestUserService_Create(t *testing.T) {
	f := newUserFixture(t)

	user, err := f.service.Create(context.Background(), driving.CreateUserRequest{
		Email:    "  Staff@Example.com ",
		Password: "password123",
		Name:     " Siti ",
		Role:     domain.RoleEmployee,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.Email != "staff@example.com" {
		t.Errorf("Email = %v, want normalized lowercase", user.Email)
	}
	if user.Name != "Siti" {
		t.Errorf("Name = %v, want trimmed", user.Name)
	}
	if user.PasswordHash == "" {
		t.Error("expected password hash to be set")
	}
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.service.Create(context.Background(), driving.CreateUserRequest{
		Email:    "staff@example.com",
		Password: "password123",
		Name:     "Siti",
		Role:     "superuser",
	})
	if err != domain.ErrInvalidInput {
		t.Errorf("Create() error = %v, want ErrInvalidInput", err)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	req := driving.CreateUserRequest{
		Email:    "staff@example.com",
		Password: "password123",
		Name:     "Siti",
		Role:     domain.RoleEmployee,
	}
	if _, err := f.service.Create(ctx, req); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err := f.service.Create(ctx, req)
	if err != domain.ErrAlreadyExists {
		t.Errorf("Create() error = %v, want ErrAlreadyExists", err)
	}
}

func TestUserService_Delete_RevokesSessions(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	user, err := f.service.Create(ctx, driving.CreateUserRequest{
		Email:    "staff@example.com",
		Password: "password123",
		Name:     "Siti",
		Role:     domain.RoleEmployee,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	session := &domain.Session{ID: "sess-1", UserID: user.ID, Token: "t", RefreshToken: "rt"}
	if err := f.sessions.Save(ctx, session); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := f.service.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := f.users.Get(ctx, user.ID); err != domain.ErrNotFound {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
	if _, err := f.sessions.Get(ctx, "sess-1"); err != domain.ErrNotFound {
		t.Errorf("session Get() error = %v, want ErrNotFound", err)
	}
}

func TestUserService_Delete_Missing(t *testing.T) {
	f := newUserFixture(t)

	if err := f.service.Delete(context.Background(), "no-such-user"); err != domain.ErrNotFound {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}
