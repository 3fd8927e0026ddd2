package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"rolodex/internal/contact/models"
	"rolodex/internal/contact/service"
	"rolodex/internal/platform/middleware"
	usermodels "rolodex/internal/user/models"
	dErrors "rolodex/pkg/domain-errors"
	"rolodex/pkg/pagination"
	"rolodex/pkg/platform/httputil"
	"rolodex/pkg/platform/validation"
)

// Service defines the contact operations the handler delegates to.
type Service interface {
	Create(ctx context.Context, user *usermodels.User, p service.CreateParams) (*models.Contact, error)
	Get(ctx context.Context, user *usermodels.User, id int64) (*models.Contact, error)
	Update(ctx context.Context, user *usermodels.User, id int64, p service.UpdateParams) (*models.Contact, error)
	Delete(ctx context.Context, user *usermodels.User, id int64) error
	Search(ctx context.Context, user *usermodels.User, p service.SearchParams) ([]*models.Contact, pagination.Paging, error)
}

// Handler wires the contact endpoints to the contact service. All routes are
// mounted behind the auth middleware.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the contact endpoints. The id pattern only admits digits so
// non-numeric ids fall through to 404, like the original route constraints.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/contacts", h.HandleCreate)
	r.Get("/api/contacts", h.HandleSearch)
	r.Get("/api/contacts/{contactID:[0-9]+}", h.HandleGet)
	r.Patch("/api/contacts/{contactID:[0-9]+}", h.HandleUpdate)
	r.Delete("/api/contacts/{contactID:[0-9]+}", h.HandleDelete)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	var req CreateContactRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	contact, err := h.service.Create(ctx, user, service.CreateParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "contact created",
		"request_id", middleware.GetRequestID(ctx),
		"username", user.Username,
		"contact_id", contact.ID,
	)
	httputil.WriteData(w, http.StatusOK, NewContactResponse(contact))
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := authenticatedUser(w, r)
	if !ok {
		return
	}
	contactID, err := ContactIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	contact, err := h.service.Get(r.Context(), user, contactID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, NewContactResponse(contact))
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := authenticatedUser(w, r)
	if !ok {
		return
	}
	contactID, err := ContactIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req UpdateContactRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	contact, err := h.service.Update(r.Context(), user, contactID, service.UpdateParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, NewContactResponse(contact))
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := authenticatedUser(w, r)
	if !ok {
		return
	}
	contactID, err := ContactIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.Delete(ctx, user, contactID); err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "contact deleted",
		"request_id", middleware.GetRequestID(ctx),
		"username", user.Username,
		"contact_id", contactID,
	)
	httputil.WriteData(w, http.StatusOK, "OK")
}

func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	user, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	req, err := ParseSearchRequest(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	contacts, paging, err := h.service.Search(r.Context(), user, service.SearchParams{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Page:  req.Page,
		Size:  req.Size,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WritePage(w, http.StatusOK, NewContactListResponse(contacts), paging)
}

// ContactIDParam parses the {contactID} path segment. The route pattern
// guarantees digits; zero is still rejected because ids are positive. Shared
// with the address handler, which nests under the same path.
func ContactIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "contactID"), 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeBadRequest, "contact_id must be a number")
	}
	if err := validation.PositiveID("contact_id", id); err != nil {
		return 0, err
	}
	return id, nil
}

func authenticatedUser(w http.ResponseWriter, r *http.Request) (*usermodels.User, bool) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "unauthorized"))
		return nil, false
	}
	return user, true
}
