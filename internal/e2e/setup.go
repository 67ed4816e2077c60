//go:build integration

package e2e

import (
	"database/sql"
	"net/http/httptest"
	"testing"

	"github.com/campus-clinic/health-records-service/internal/auth"
	"github.com/campus-clinic/health-records-service/internal/db"
	httpserver "github.com/campus-clinic/health-records-service/internal/http"
	"github.com/campus-clinic/health-records-service/internal/testutil"
)

// TestServer represents a complete E2E test environment
type TestServer struct {
	Server        *httptest.Server
	DB            *sql.DB
	MockPublisher *testutil.MockPublisher
	Verifier      *auth.Verifier
}

// SetupE2ETest creates a complete test environment for E2E testing:
// a real PostgreSQL database, the full router, an in-memory event
// publisher and a test JWT verifier.
func SetupE2ETest(t *testing.T) *TestServer {
	t.Helper()

	database := testutil.SetupTestDB(t)
	if err := db.EnsureSchema(database); err != nil {
		t.Fatalf("Failed to ensure schema: %v", err)
	}

	mockPublisher := testutil.NewMockPublisher()

	perms, err := auth.LoadPermissions("../../config/permissions.yml")
	if err != nil {
		t.Fatalf("Failed to load permissions: %v", err)
	}

	verifier := testutil.NewTestVerifier(t)

	router := httpserver.SetupRouter(database, verifier, perms, mockPublisher, nil)
	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:        server,
		DB:            database,
		MockPublisher: mockPublisher,
		Verifier:      verifier,
	}

	t.Cleanup(func() {
		testutil.CleanupTestDB(t, database)
		server.Close()
	})

	return ts
}

// NewClient creates a test HTTP client carrying the given token
func (ts *TestServer) NewClient(token string) *testutil.HTTPTestClient {
	return testutil.NewHTTPTestClient(ts.Server.URL, token)
}
