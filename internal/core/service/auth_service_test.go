package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/projclock/projclock/internal/core/domain"
)

type stubAuthRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubDenylist struct {
	revoked map[string]time.Duration
}

func newStubDenylist() *stubDenylist {
	return &stubDenylist{revoked: make(map[string]time.Duration)}
}

func (d *stubDenylist) Revoke(_ context.Context, token string, ttl time.Duration) error {
	d.revoked[token] = ttl
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, token string) (bool, error) {
	_, ok := d.revoked[token]
	return ok, nil
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, newStubDenylist(), "secret", time.Hour)

	user, err := svc.Register(context.Background(), "alice", "Alice", "alice@example.com", "pass123", domain.RoleMember)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleMember {
		t.Fatalf("unexpected role: %s", user.Role)
	}
	if user.ID == 0 {
		t.Fatalf("expected an assigned id")
	}
}

func TestAuthService_Register_DefaultsToMember(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, newStubDenylist(), "secret", time.Hour)

	user, err := svc.Register(context.Background(), "bob", "", "bob@example.com", "pass1", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleMember {
		t.Fatalf("expected member role, got %s", user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, newStubDenylist(), "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "", "", "x@example.com", "pass1", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := svc.Register(context.Background(), "bob", "", "bob@example.com", "pass1", "superuser"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, newStubDenylist(), "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "bob", "", "bob@example.com", "pass1", domain.RoleMember)
	if _, err := svc.Register(context.Background(), "bobby", "", "bob@example.com", "pass2", domain.RoleMember); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, newStubDenylist(), "secret", time.Hour)

	created, err := svc.Register(context.Background(), "carol", "", "carol@example.com", "s3cret", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims["role"])
	}
	if uid, ok := claims["user_id"].(float64); !ok || int64(uid) != created.ID {
		t.Fatalf("expected user_id %d, got %v", created.ID, claims["user_id"])
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, newStubDenylist(), "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "dave", "", "dave@example.com", "goodpass", domain.RoleMember)
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, newStubDenylist(), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Logout_RevokesUntilExpiry(t *testing.T) {
	repo := newStubAuthRepo()
	denylist := newStubDenylist()
	svc := NewAuthService(repo, denylist, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "erin", "", "erin@example.com", "pass1", domain.RoleMember)
	token, _, err := svc.Login(context.Background(), "erin@example.com", "pass1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	ttl, ok := denylist.revoked[token]
	if !ok {
		t.Fatalf("token not revoked")
	}
	if ttl <= 0 || ttl > time.Hour {
		t.Fatalf("unexpected revocation ttl: %v", ttl)
	}
}

func TestAuthService_Logout_RejectsGarbage(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), newStubDenylist(), "secret", time.Hour)

	if err := svc.Logout(context.Background(), "not-a-token"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
