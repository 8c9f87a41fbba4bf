package service

import (
	"context"
	"testing"

	"github.com/focusflow/focusflow-go/internal/crypto"
	"github.com/focusflow/focusflow-go/internal/model"
)

const testSecret = "test-secret"

func newTestAuthService() (*AuthService, *memUserStore) {
	store := newMemUserStore()
	return NewAuthService(store, testSecret), store
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService()

	tests := []model.RegisterRequest{
		{Name: "", Email: "a@x.com", Password: "pw123"},
		{Name: "Alice", Email: "", Password: "pw123"},
		{Name: "Alice", Email: "a@x.com", Password: ""},
	}

	for _, req := range tests {
		if _, err := svc.Register(context.Background(), req); err != ErrAllFieldsRequired {
			t.Errorf("Register(%+v) error = %v, want ErrAllFieldsRequired", req, err)
		}
	}
}

func TestRegister_Success(t *testing.T) {
	svc, store := newTestAuthService()

	token, err := svc.Register(context.Background(), model.RegisterRequest{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "pw123",
	})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("Register() returned empty token")
	}

	claims, err := crypto.ValidateToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.Email != "a@x.com" || claims.Name != "Alice" {
		t.Errorf("token claims = {%s %s}, want {Alice a@x.com}", claims.Name, claims.Email)
	}
	if claims.UserID == 0 {
		t.Error("token claims carry no user ID; register must sign the persisted record")
	}

	saved, err := store.GetByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("GetByEmail() unexpected error: %v", err)
	}
	if saved.PasswordHash == "pw123" {
		t.Error("password stored as plaintext")
	}
	if !crypto.VerifyPassword("pw123", saved.PasswordHash) {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	req := model.RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "pw123"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register() unexpected error: %v", err)
	}

	if _, err := svc.Register(context.Background(), req); err != ErrUserExists {
		t.Errorf("second Register() error = %v, want ErrUserExists", err)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, _, err := svc.Login(context.Background(), model.LoginRequest{Email: "a@x.com"}); err != ErrAllFieldsRequired {
		t.Errorf("Login() error = %v, want ErrAllFieldsRequired", err)
	}
	if _, _, err := svc.Login(context.Background(), model.LoginRequest{Password: "pw123"}); err != ErrAllFieldsRequired {
		t.Errorf("Login() error = %v, want ErrAllFieldsRequired", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	_, _, err := svc.Login(context.Background(), model.LoginRequest{Email: "nobody@x.com", Password: "pw123"})
	if err != ErrUserNotFound {
		t.Errorf("Login() error = %v, want ErrUserNotFound", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), model.RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "pw123"}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	_, _, err := svc.Login(context.Background(), model.LoginRequest{Email: "a@x.com", Password: "wrong"})
	if err != ErrInvalidCredentials {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), model.RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "pw123"}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	token, user, err := svc.Login(context.Background(), model.LoginRequest{Email: "a@x.com", Password: "pw123"})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}

	claims, err := crypto.ValidateToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("token claims email = %q, want %q", claims.Email, "a@x.com")
	}
	if user.Name != "Alice" || user.Email != "a@x.com" {
		t.Errorf("user projection = %+v, want {Alice a@x.com}", user)
	}
}
