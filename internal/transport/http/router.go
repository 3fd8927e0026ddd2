// Package httptransport assembles the public router. It owns no business
// logic; feature handlers register their own routes and the middleware chain
// is applied here in one place.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addresshandler "rolodex/internal/address/handler"
	contacthandler "rolodex/internal/contact/handler"
	"rolodex/internal/platform/middleware"
	userhandler "rolodex/internal/user/handler"
)

// NewRouter wires all endpoints. Register and login are public; everything
// else sits behind the X-API-TOKEN auth middleware.
func NewRouter(
	users *userhandler.Handler,
	contacts *contacthandler.Handler,
	addresses *addresshandler.Handler,
	resolver middleware.TokenResolver,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))

	r.Get("/healthz", handleHealthz)
	r.Handle("/metrics", promhttp.Handler())

	users.RegisterPublic(r)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(resolver, logger))
		users.RegisterProtected(r)
		contacts.Register(r)
		addresses.Register(r)
	})

	return r
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
