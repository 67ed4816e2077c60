package auth

import (
	"os"
	"path/filepath"
	"testing"
)

func writePermissionsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "permissions.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write permissions file: %v", err)
	}
	return path
}

// TestLoadPermissions tests loading the role->permission map from yaml
func TestLoadPermissions(t *testing.T) {
	path := writePermissionsFile(t, `
roles:
  staff:
    - record:view
    - record:create
  admin:
    - record:view
    - seed:run
`)

	perms, err := LoadPermissions(path)
	if err != nil {
		t.Fatalf("LoadPermissions failed: %v", err)
	}

	if len(perms["staff"]) != 2 {
		t.Errorf("Expected 2 staff permissions, got %d", len(perms["staff"]))
	}
	if perms["admin"][1] != "seed:run" {
		t.Errorf("Expected admin to have seed:run, got %v", perms["admin"])
	}
}

// TestLoadPermissions_MissingFile tests the error path
func TestLoadPermissions_MissingFile(t *testing.T) {
	_, err := LoadPermissions("/nonexistent/permissions.yml")
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

// TestHasPermission tests role lookup including case-insensitive fallback
func TestHasPermission(t *testing.T) {
	perms := Permissions{
		"staff": {"record:view", "record:create"},
		"admin": {"seed:run"},
	}

	cases := []struct {
		name       string
		role       string
		permission string
		want       bool
	}{
		{"exact match", "staff", "record:view", true},
		{"case-insensitive role", "Staff", "record:create", true},
		{"missing permission", "staff", "seed:run", false},
		{"unknown role", "visitor", "record:view", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pr := &Principal{UserID: "user-123", Role: tc.role}
			if got := HasPermission(pr, tc.permission, perms); got != tc.want {
				t.Errorf("HasPermission(%q, %q) = %v, want %v", tc.role, tc.permission, got, tc.want)
			}
		})
	}
}
