package testutil

import (
	"testing"
	"time"

	"github.com/campus-clinic/health-records-service/internal/auth"
)

// TestJWTSecret is the shared HMAC secret for tokens issued in tests.
const TestJWTSecret = "test-jwt-secret"

// NewTestVerifier creates a verifier backed by the test secret
func NewTestVerifier(t *testing.T) *auth.Verifier {
	t.Helper()

	return auth.NewVerifier(auth.Config{
		Secret: []byte(TestJWTSecret),
		Issuer: auth.DefaultIssuer,
		Expiry: time.Hour,
	})
}

// GenerateTestJWT creates a valid token for the given user and role
func GenerateTestJWT(t *testing.T, verifier *auth.Verifier, userID, role string) string {
	t.Helper()

	token, err := verifier.IssueToken(userID, role)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return token
}

// GenerateStaffToken creates a staff token for testing
func GenerateStaffToken(t *testing.T, verifier *auth.Verifier) string {
	t.Helper()
	return GenerateTestJWT(t, verifier, "staff-123", "staff")
}

// GenerateStudentToken creates a student token for testing
func GenerateStudentToken(t *testing.T, verifier *auth.Verifier) string {
	t.Helper()
	return GenerateTestJWT(t, verifier, "student-123", "student")
}

// GenerateAdminToken creates an admin token for testing
func GenerateAdminToken(t *testing.T, verifier *auth.Verifier) string {
	t.Helper()
	return GenerateTestJWT(t, verifier, "admin-123", "admin")
}

// GenerateExpiredToken creates a token that expired an hour ago
func GenerateExpiredToken(t *testing.T, userID, role string) string {
	t.Helper()

	expired := auth.NewVerifier(auth.Config{
		Secret: []byte(TestJWTSecret),
		Issuer: auth.DefaultIssuer,
		Expiry: -time.Hour,
	})

	token, err := expired.IssueToken(userID, role)
	if err != nil {
		t.Fatalf("Failed to issue expired test token: %v", err)
	}
	return token
}
