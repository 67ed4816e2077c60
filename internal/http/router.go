package http

import (
	"database/sql"
	"net/http"

	"github.com/campus-clinic/health-records-service/internal/auth"
	"github.com/campus-clinic/health-records-service/internal/messaging"
	"github.com/campus-clinic/health-records-service/internal/records"
	"github.com/campus-clinic/health-records-service/internal/seed"
	"github.com/campus-clinic/health-records-service/internal/telemetry"
	"github.com/campus-clinic/health-records-service/internal/users"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

// SetupRouter initializes all routes for the application. metrics may be nil,
// in which case the plain middlewares are used.
func SetupRouter(db *sql.DB, verifier *auth.Verifier, perms auth.Permissions, publisher messaging.PublisherInterface, metrics *telemetry.Metrics) *mux.Router {
	// Initialize user components
	userRepo := users.NewRepository(db, publisher)
	userService := users.NewService(userRepo, verifier)
	userHandler := users.NewHandler(userService)

	// Initialize health record components
	recordRepo := records.NewRepository(db, publisher)
	recordService := records.NewService(recordRepo)
	recordHandler := records.NewHandler(recordService)

	// Initialize seed components
	seedService := seed.NewService(recordRepo, publisher)
	seedHandler := seed.NewHandler(seedService)

	authenticate := auth.Middleware(verifier)
	requirePermission := func(permission string) func(http.Handler) http.Handler {
		return auth.RequirePermission(permission, perms)
	}
	if metrics != nil {
		authenticate = auth.MiddlewareWithMetrics(verifier, metrics)
		requirePermission = func(permission string) func(http.Handler) http.Handler {
			return auth.RequirePermissionWithMetrics(permission, perms, metrics)
		}
	}

	r := mux.NewRouter()
	r.Use(otelmux.Middleware("health-records-service"))

	// Public health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"health-records-service"}`))
	}).Methods("GET")

	// Auth routes
	r.HandleFunc("/api/auth/register", userHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", userHandler.Login).Methods("POST")

	r.Handle("/api/auth/me",
		authenticate(http.HandlerFunc(userHandler.Me)),
	).Methods("GET")

	r.Handle("/api/auth/logout",
		authenticate(http.HandlerFunc(userHandler.Logout)),
	).Methods("POST")

	// Health record routes (any authenticated clinic role)
	r.Handle("/api/health-records/schema",
		authenticate(
			requirePermission("record:view")(
				http.HandlerFunc(recordHandler.GetSchema),
			),
		),
	).Methods("GET")

	r.Handle("/api/health-records",
		authenticate(
			requirePermission("record:create")(
				http.HandlerFunc(recordHandler.CreateRecord),
			),
		),
	).Methods("POST")

	r.Handle("/api/health-records",
		authenticate(
			requirePermission("record:view")(
				http.HandlerFunc(recordHandler.ListRecords),
			),
		),
	).Methods("GET")

	r.Handle("/api/health-records/{id}",
		authenticate(
			requirePermission("record:view")(
				http.HandlerFunc(recordHandler.GetRecord),
			),
		),
	).Methods("GET")

	r.Handle("/api/health-records/{id}",
		authenticate(
			requirePermission("record:update")(
				http.HandlerFunc(recordHandler.UpdateRecord),
			),
		),
	).Methods("PUT")

	r.Handle("/api/health-records/{id}",
		authenticate(
			requirePermission("record:delete")(
				http.HandlerFunc(recordHandler.DeleteRecord),
			),
		),
	).Methods("DELETE")

	// Seed route, guarded by the optional X-Seed-Secret header
	r.HandleFunc("/api/seed", seedHandler.SeedDatabase).Methods("POST")

	return r
}
