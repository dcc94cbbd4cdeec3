package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/spec-kit/pilgrim-travel/internal/domain"
)

func provision(t *testing.T, f *authFixture, email, password string, role domain.AdminRole) *domain.AdminUser {
	t.Helper()
	user, err := f.service.ProvisionAdmin(context.Background(), ProvisionInput{
		Email: email, Password: password, DisplayName: "Test", Role: role,
	})
	if err != nil {
		t.Fatalf("ProvisionAdmin() error: %v", err)
	}
	return user
}

func TestLoginSuccess(t *testing.T) {
	f := newAuthFixture(t, nil)
	user := provision(t, f, "Admin@Example.com", "correct horse", domain.AdminRoleAdmin)

	result, err := f.service.Login(context.Background(), "admin@example.COM", "correct horse", "10.0.0.1")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if result.Identity.ID != user.ID || result.Identity.Email != "admin@example.com" {
		t.Errorf("Identity = %+v, want user %s", result.Identity, user.ID)
	}
	if len(result.Token) != 64 {
		t.Errorf("len(Token) = %d, want 64", len(result.Token))
	}

	identity, err := f.service.CurrentIdentity(context.Background(), result.Token)
	if err != nil || identity == nil {
		t.Fatalf("CurrentIdentity() = %v, %v", identity, err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	f := newAuthFixture(t, nil)
	provision(t, f, "admin@example.com", "correct horse", domain.AdminRoleAdmin)

	_, unknownErr := f.service.Login(context.Background(), "ghost@example.com", "correct horse", "")
	_, wrongErr := f.service.Login(context.Background(), "admin@example.com", "wrong password", "")

	if !errors.Is(unknownErr, ErrInvalidCredentials) || !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Fatalf("errors = %v / %v, want ErrInvalidCredentials for both", unknownErr, wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("messages differ: %q vs %q", unknownErr.Error(), wrongErr.Error())
	}
	assertStatus(t, unknownErr, http.StatusUnauthorized)
	if f.sessions.Len() != 0 {
		t.Errorf("failed logins created %d sessions", f.sessions.Len())
	}
}

type countingThrottle struct {
	max      int
	failures map[string]int
	resets   int
}

func (c *countingThrottle) Allow(_ context.Context, key string) (bool, error) {
	return c.failures[key] < c.max, nil
}

func (c *countingThrottle) Fail(_ context.Context, key string) error {
	c.failures[key]++
	return nil
}

func (c *countingThrottle) Reset(_ context.Context, key string) error {
	delete(c.failures, key)
	c.resets++
	return nil
}

func TestLoginThrottle(t *testing.T) {
	throttle := &countingThrottle{max: 2, failures: map[string]int{}}
	f := newAuthFixture(t, throttle)
	provision(t, f, "admin@example.com", "correct horse", domain.AdminRoleAdmin)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := f.service.Login(ctx, "admin@example.com", "nope", "1.1.1.1"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d error = %v", i+1, err)
		}
	}
	_, err := f.service.Login(ctx, "admin@example.com", "correct horse", "1.1.1.1")
	if !errors.Is(err, ErrLoginThrottled) {
		t.Fatalf("Login() after limit error = %v, want ErrLoginThrottled", err)
	}
	assertStatus(t, err, http.StatusTooManyRequests)

	if _, err := f.service.Login(ctx, "admin@example.com", "correct horse", "2.2.2.2"); err != nil {
		t.Fatalf("Login() from another address error: %v", err)
	}
	if throttle.resets != 1 {
		t.Errorf("resets = %d, want 1 after success", throttle.resets)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	f := newAuthFixture(t, nil)
	provision(t, f, "admin@example.com", "correct horse", domain.AdminRoleAdmin)
	ctx := context.Background()

	result, err := f.service.Login(ctx, "admin@example.com", "correct horse", "")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := f.service.Logout(ctx, result.Token); err != nil {
			t.Fatalf("Logout() #%d error: %v", i+1, err)
		}
	}
	if err := f.service.Logout(ctx, ""); err != nil {
		t.Errorf("Logout(\"\") error: %v", err)
	}
	identity, err := f.service.CurrentIdentity(ctx, result.Token)
	if err != nil || identity != nil {
		t.Errorf("CurrentIdentity() after logout = %v, %v; want nil, nil", identity, err)
	}
}

func TestProvisionAdminValidation(t *testing.T) {
	f := newAuthFixture(t, nil)
	tests := []struct {
		name  string
		input ProvisionInput
		field string
	}{
		{"bad email", ProvisionInput{Email: "nope", Password: "long enough"}, "email"},
		{"short password", ProvisionInput{Email: "a@example.com", Password: "short"}, "password"},
		{"unknown role", ProvisionInput{Email: "a@example.com", Password: "long enough", Role: "owner"}, "role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.ProvisionAdmin(context.Background(), tt.input)
			domainErr := assertStatus(t, err, http.StatusBadRequest)
			if _, ok := domainErr.Details[tt.field]; !ok {
				t.Errorf("Details = %v, want key %q", domainErr.Details, tt.field)
			}
		})
	}
}

func TestProvisionAdminDefaultsRole(t *testing.T) {
	f := newAuthFixture(t, nil)
	user := provision(t, f, "a@example.com", "long enough", "")
	if user.Role != domain.AdminRoleAdmin {
		t.Errorf("Role = %q, want admin", user.Role)
	}
	if user.PasswordHash == "long enough" {
		t.Error("password stored in plaintext")
	}
}

func TestEnsureBootstrapAdmin(t *testing.T) {
	f := newAuthFixture(t, nil)
	ctx := context.Background()

	if err := f.service.EnsureBootstrapAdmin(ctx, "", ""); err != nil {
		t.Fatalf("EnsureBootstrapAdmin(empty) error: %v", err)
	}
	if n, _ := f.users.Count(ctx); n != 0 {
		t.Fatalf("Count() = %d, want 0 without bootstrap credentials", n)
	}

	for i := 0; i < 2; i++ {
		if err := f.service.EnsureBootstrapAdmin(ctx, "boot@example.com", "bootstrap-pass"); err != nil {
			t.Fatalf("EnsureBootstrapAdmin() #%d error: %v", i+1, err)
		}
	}
	if n, _ := f.users.Count(ctx); n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}
	if _, err := f.service.Login(ctx, "boot@example.com", "bootstrap-pass", ""); err != nil {
		t.Errorf("Login() with bootstrap account error: %v", err)
	}
}
