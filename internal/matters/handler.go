package matters

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/davidjulakidze/lolly-law-assessment/internal/platform/httpx"
	"github.com/davidjulakidze/lolly-law-assessment/internal/shared"
)

type Handler struct {
	logger    *slog.Logger
	service   *Service
	audit     *shared.AuditLogger
	validator *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service, audit *shared.AuditLogger) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		audit:     audit,
		validator: validator.New(),
	}
}

// MountCustomerRoutes registers matter routes nested under a customer.
func (h *Handler) MountCustomerRoutes(r chi.Router) {
	r.Get("/{customer_id}/matters", h.ListForCustomer)
	r.Post("/{customer_id}/matters", h.Create)
	r.Get("/{customer_id}/matters/{matter_id}", h.Show)
	r.Put("/{customer_id}/matters/{matter_id}", h.Update)
	r.Delete("/{customer_id}/matters/{matter_id}", h.Delete)
}

// MountRoutes registers the cross-customer matter listing.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
}

func (h *Handler) ListForCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathID(w, r, "customer_id")
	if !ok {
		return
	}

	matters, err := h.service.ListForCustomer(r.Context(), customerID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("list matters failed", slog.Any("error", err), slog.Int64("customer_id", customerID))
		}
		httpx.RespondError(w, err)
		return
	}
	if matters == nil {
		matters = []Matter{}
	}
	httpx.JSON(w, http.StatusOK, matters)
}

type listResponse struct {
	Matters    []Matter          `json:"matters"`
	Pagination shared.Pagination `json:"pagination"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := shared.PageFromQuery(r)

	req := ListMattersRequest{
		Limit:  perPage,
		Offset: shared.NewPagination(page, perPage, 0).Offset(),
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}
	if search := r.URL.Query().Get("search"); search != "" {
		req.Search = &search
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid status filter")
		return
	}

	matters, total, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("list matters failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if matters == nil {
		matters = []Matter{}
	}
	httpx.JSON(w, http.StatusOK, listResponse{
		Matters:    matters,
		Pagination: shared.NewPagination(page, perPage, total),
	})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	customerID, matterID, ok := matterPath(w, r)
	if !ok {
		return
	}

	matter, err := h.service.Get(r.Context(), customerID, matterID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("get matter failed", slog.Any("error", err), slog.Int64("matter_id", matterID))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, matter)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathID(w, r, "customer_id")
	if !ok {
		return
	}

	var req CreateMatterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "missing required fields")
		return
	}

	matter, err := h.service.Create(r.Context(), customerID, req)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("create matter failed", slog.Any("error", err), slog.Int64("customer_id", customerID))
		}
		httpx.RespondError(w, err)
		return
	}

	h.recordAudit(r, "create", matter.ID)
	httpx.JSON(w, http.StatusCreated, matter)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	customerID, matterID, ok := matterPath(w, r)
	if !ok {
		return
	}

	var req UpdateMatterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid fields")
		return
	}

	matter, err := h.service.Update(r.Context(), customerID, matterID, req)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("update matter failed", slog.Any("error", err), slog.Int64("matter_id", matterID))
		}
		httpx.RespondError(w, err)
		return
	}

	h.recordAudit(r, "update", matterID)
	httpx.JSON(w, http.StatusOK, matter)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	customerID, matterID, ok := matterPath(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), customerID, matterID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("delete matter failed", slog.Any("error", err), slog.Int64("matter_id", matterID))
		}
		httpx.RespondError(w, err)
		return
	}

	h.recordAudit(r, "delete", matterID)
	httpx.JSON(w, http.StatusOK, map[string]any{"message": "Matter deleted successfully"})
}

func pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid "+param)
		return 0, false
	}
	return id, true
}

func matterPath(w http.ResponseWriter, r *http.Request) (customerID, matterID int64, ok bool) {
	customerID, ok = pathID(w, r, "customer_id")
	if !ok {
		return 0, 0, false
	}
	matterID, ok = pathID(w, r, "matter_id")
	if !ok {
		return 0, 0, false
	}
	return customerID, matterID, true
}

func (h *Handler) recordAudit(r *http.Request, action string, matterID int64) {
	if h.audit == nil {
		return
	}
	actorID, _ := shared.UserIDFromContext(r.Context())
	err := h.audit.Record(r.Context(), shared.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   "matter",
		EntityID: strconv.FormatInt(matterID, 10),
	})
	if err != nil {
		h.logger.Warn("audit record", slog.Any("error", err))
	}
}
