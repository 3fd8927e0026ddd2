package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rolodex/internal/platform/middleware"
	"rolodex/internal/user/models"
	"rolodex/internal/user/service"
	dErrors "rolodex/pkg/domain-errors"
	"rolodex/pkg/platform/httputil"
)

// Service defines the user operations the handler delegates to.
type Service interface {
	Register(ctx context.Context, p service.RegisterParams) (*models.User, error)
	Login(ctx context.Context, p service.LoginParams) (*models.User, error)
	Update(ctx context.Context, user *models.User, p service.UpdateParams) (*models.User, error)
	Logout(ctx context.Context, user *models.User) error
}

// Handler wires the user endpoints to the user service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterPublic mounts the endpoints reachable without a token.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Post("/api/users", h.HandleRegister)
	r.Post("/api/users/login", h.HandleLogin)
}

// RegisterProtected mounts the endpoints behind the auth middleware.
func (h *Handler) RegisterProtected(r chi.Router) {
	r.Get("/api/users/current", h.HandleCurrent)
	r.Patch("/api/users/current", h.HandleUpdate)
	r.Delete("/api/users/current", h.HandleLogout)
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	user, err := h.service.Register(ctx, service.RegisterParams{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "registration failed",
			"request_id", middleware.GetRequestID(ctx),
			"username", req.Username,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "user registered",
		"request_id", middleware.GetRequestID(ctx),
		"username", user.Username,
	)
	httputil.WriteData(w, http.StatusOK, NewUserResponse(user))
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	user, err := h.service.Login(ctx, service.LoginParams{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "login failed",
			"request_id", middleware.GetRequestID(ctx),
			"username", req.Username,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteData(w, http.StatusOK, NewLoginResponse(user))
}

// HandleCurrent is a pure projection of the already-authenticated user.
func (h *Handler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	user, ok := authenticatedUser(w, r)
	if !ok {
		return
	}
	httputil.WriteData(w, http.StatusOK, NewUserResponse(user))
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	updated, err := h.service.Update(ctx, user, service.UpdateParams{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteData(w, http.StatusOK, NewUserResponse(updated))
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	if err := h.service.Logout(ctx, user); err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "user logged out",
		"request_id", middleware.GetRequestID(ctx),
		"username", user.Username,
	)
	httputil.WriteData(w, http.StatusOK, "OK")
}

// authenticatedUser pulls the user the auth middleware resolved. Reaching a
// protected handler without one means the route was mounted outside the auth
// group; treat it as unauthorized rather than panic.
func authenticatedUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "unauthorized"))
		return nil, false
	}
	return user, true
}
