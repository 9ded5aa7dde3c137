package service

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/AnayLodha/kairo/internal/database"
	"github.com/AnayLodha/kairo/internal/repository"
)

func newAuthEnv(t *testing.T) (*database.DB, *AuthService) {
	t.Helper()

	dbPath := t.TempDir() + string(os.PathSeparator) + "auth_test.db"

	db, err := database.Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db, NewAuthService(repository.NewUserRepository(db), 24*time.Hour)
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	_, auth := newAuthEnv(t)

	user, err := auth.Register("student@example.com", "password123", "Student")
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if user.PasswordHash == "password123" {
		t.Fatal("password stored in plaintext")
	}

	// Duplicate email is rejected
	if _, err := auth.Register("student@example.com", "password123", "Other"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Register() with taken email error = %v, want ErrEmailTaken", err)
	}

	// Wrong password is rejected
	if _, _, err := auth.Login("student@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() with wrong password error = %v, want ErrInvalidCredentials", err)
	}

	// Unknown email gets the same error as a wrong password
	if _, _, err := auth.Login("nobody@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() with unknown email error = %v, want ErrInvalidCredentials", err)
	}

	session, loggedIn, err := auth.Login("student@example.com", "password123")
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("Login() user ID = %d, want %d", loggedIn.ID, user.ID)
	}

	validated, err := auth.ValidateSession(session.ID)
	if err != nil {
		t.Fatalf("ValidateSession() failed: %v", err)
	}
	if validated.ID != user.ID {
		t.Errorf("ValidateSession() user ID = %d, want %d", validated.ID, user.ID)
	}

	if err := auth.Logout(session.ID); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}
	if _, err := auth.ValidateSession(session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("ValidateSession() after logout error = %v, want ErrSessionNotFound", err)
	}
}

func TestAuthServicePasswordReset(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, auth := newAuthEnv(t)

	if _, err := auth.Register("student@example.com", "password123", "Student"); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	// Unknown email is silently accepted
	if err := auth.RequestPasswordReset(context.Background(), nil, "nobody@example.com"); err != nil {
		t.Fatalf("RequestPasswordReset() for unknown email failed: %v", err)
	}

	if err := auth.RequestPasswordReset(context.Background(), nil, "student@example.com"); err != nil {
		t.Fatalf("RequestPasswordReset() failed: %v", err)
	}

	var token string
	if err := db.QueryRow("SELECT token FROM password_reset_tokens LIMIT 1").Scan(&token); err != nil {
		t.Fatalf("no reset token stored: %v", err)
	}

	if err := auth.ResetPassword(token, "new-password-456"); err != nil {
		t.Fatalf("ResetPassword() failed: %v", err)
	}

	// Token is single use
	if err := auth.ResetPassword(token, "another-password"); !errors.Is(err, ErrResetTokenUsed) {
		t.Errorf("second ResetPassword() error = %v, want ErrResetTokenUsed", err)
	}

	// Old password no longer works, new one does
	if _, _, err := auth.Login("student@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() with old password error = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := auth.Login("student@example.com", "new-password-456"); err != nil {
		t.Errorf("Login() with new password failed: %v", err)
	}

	// A made-up token is rejected
	if err := auth.ResetPassword("forged-token", "whatever-password"); !errors.Is(err, ErrResetTokenInvalid) {
		t.Errorf("ResetPassword() with forged token error = %v, want ErrResetTokenInvalid", err)
	}
}
