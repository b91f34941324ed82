package service

import (
	"context"
	"errors"
	"testing"

	dom "github.com/AvishekRimal/student-planner/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeUserRepo struct {
	nextID  int64
	byEmail map[string]dom.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, byEmail: make(map[string]dom.User)}
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *fakeUserRepo) Create(ctx context.Context, username, email, passwordHash string) (dom.User, error) {
	if _, ok := r.byEmail[email]; ok {
		return dom.User{}, &pgconn.PgError{Code: "23505"}
	}
	u := dom.User{ID: r.nextID, Username: username, Email: email, PasswordHash: passwordHash}
	r.nextID++
	r.byEmail[email] = u
	return u, nil
}

func (r *fakeUserRepo) ListAll(ctx context.Context) ([]dom.User, error) {
	var out []dom.User
	for _, u := range r.byEmail {
		out = append(out, u)
	}
	return out, nil
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice", "Alice@Example.COM ", "s3cret-pass")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Errorf("Email = %q, want normalized lowercase", u.Email)
	}
	if u.PasswordHash == "s3cret-pass" {
		t.Error("password stored in the clear")
	}

	got, err := svc.ValidateCredentials(ctx, "ALICE@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("ValidateCredentials() error = %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("ValidateCredentials() id = %d, want %d", got.ID, u.ID)
	}

	if _, err := svc.ValidateCredentials(ctx, "alice@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("ValidateCredentials(bad password) error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.ValidateCredentials(ctx, "nobody@example.com", "s3cret-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("ValidateCredentials(unknown email) error = %v, want ErrInvalidCredentials", err)
	}
}

func TestUserService_RegisterDuplicate(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret-pass"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := svc.Register(ctx, "alice2", "alice@example.com", "other-pass"); !errors.Is(err, ErrUserExists) {
		t.Errorf("Register(duplicate email) error = %v, want ErrUserExists", err)
	}
}
