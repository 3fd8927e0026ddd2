package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"rolodex/internal/address/models"
	"rolodex/internal/address/service"
	contacthandler "rolodex/internal/contact/handler"
	"rolodex/internal/platform/middleware"
	usermodels "rolodex/internal/user/models"
	dErrors "rolodex/pkg/domain-errors"
	"rolodex/pkg/pagination"
	"rolodex/pkg/platform/httputil"
	"rolodex/pkg/platform/validation"
)

// Service defines the address operations the handler delegates to.
type Service interface {
	Create(ctx context.Context, user *usermodels.User, contactID int64, p service.CreateParams) (*models.Address, error)
	Get(ctx context.Context, user *usermodels.User, contactID, addressID int64) (*models.Address, error)
	Update(ctx context.Context, user *usermodels.User, contactID, addressID int64, p service.UpdateParams) (*models.Address, error)
	Delete(ctx context.Context, user *usermodels.User, contactID, addressID int64) (*models.Address, error)
	List(ctx context.Context, user *usermodels.User, contactID int64, p service.ListParams) ([]*models.Address, pagination.Paging, error)
}

// Handler wires the address endpoints, nested under a contact, to the address
// service. All routes are mounted behind the auth middleware.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the address endpoints under their parent contact path.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/contacts/{contactID:[0-9]+}/addresses", h.HandleCreate)
	r.Get("/api/contacts/{contactID:[0-9]+}/addresses", h.HandleList)
	r.Get("/api/contacts/{contactID:[0-9]+}/addresses/{addressID:[0-9]+}", h.HandleGet)
	r.Patch("/api/contacts/{contactID:[0-9]+}/addresses/{addressID:[0-9]+}", h.HandleUpdate)
	r.Delete("/api/contacts/{contactID:[0-9]+}/addresses/{addressID:[0-9]+}", h.HandleDelete)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := authenticatedUser(w, r)
	if !ok {
		return
	}
	contactID, err := contacthandler.ContactIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req CreateAddressRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	address, err := h.service.Create(ctx, user, contactID, service.CreateParams{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "address created",
		"request_id", middleware.GetRequestID(ctx),
		"username", user.Username,
		"contact_id", contactID,
		"address_id", address.ID,
	)
	httputil.WriteData(w, http.StatusOK, NewAddressResponse(address))
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := authenticatedUser(w, r)
	if !ok {
		return
	}
	contactID, addressID, err := pathIDs(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	address, err := h.service.Get(r.Context(), user, contactID, addressID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, NewAddressResponse(address))
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := authenticatedUser(w, r)
	if !ok {
		return
	}
	contactID, addressID, err := pathIDs(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req UpdateAddressRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	address, err := h.service.Update(r.Context(), user, contactID, addressID, service.UpdateParams{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteData(w, http.StatusOK, NewAddressResponse(address))
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := authenticatedUser(w, r)
	if !ok {
		return
	}
	contactID, addressID, err := pathIDs(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	address, err := h.service.Delete(ctx, user, contactID, addressID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "address deleted",
		"request_id", middleware.GetRequestID(ctx),
		"username", user.Username,
		"contact_id", contactID,
		"address_id", addressID,
	)
	httputil.WriteData(w, http.StatusOK, NewAddressResponse(address))
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, ok := authenticatedUser(w, r)
	if !ok {
		return
	}
	contactID, err := contacthandler.ContactIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, err := ParseListRequest(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	addresses, paging, err := h.service.List(r.Context(), user, contactID, service.ListParams{
		Page: req.Page,
		Size: req.Size,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WritePage(w, http.StatusOK, NewAddressListResponse(addresses), paging)
}

func pathIDs(r *http.Request) (contactID, addressID int64, err error) {
	contactID, err = contacthandler.ContactIDParam(r)
	if err != nil {
		return 0, 0, err
	}
	addressID, err = strconv.ParseInt(chi.URLParam(r, "addressID"), 10, 64)
	if err != nil {
		return 0, 0, dErrors.New(dErrors.CodeBadRequest, "address_id must be a number")
	}
	if err := validation.PositiveID("address_id", addressID); err != nil {
		return 0, 0, err
	}
	return contactID, addressID, nil
}

func authenticatedUser(w http.ResponseWriter, r *http.Request) (*usermodels.User, bool) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "unauthorized"))
		return nil, false
	}
	return user, true
}
