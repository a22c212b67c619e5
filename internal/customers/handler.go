package customers

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

type listResponse struct {
	Customers  []ListItem        `json:"customers"`
	Pagination shared.Pagination `json:"pagination"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := shared.PageFromQuery(r)

	var searchPtr *string
	if search := r.URL.Query().Get("search"); search != "" {
		searchPtr = &search
	}

	pagination := shared.NewPagination(page, perPage, 0)
	customers, total, err := h.service.List(r.Context(), ListCustomersRequest{
		Search: searchPtr,
		Limit:  pagination.PerPage,
		Offset: pagination.Offset(),
	})
	if err != nil {
		h.logger.Error("list customers failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	items := make([]ListItem, 0, len(customers))
	for _, c := range customers {
		items = append(items, c.listItem())
	}
	httpx.JSON(w, http.StatusOK, listResponse{
		Customers:  items,
		Pagination: shared.NewPagination(page, perPage, total),
	})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := h.customerID(w, r)
	if !ok {
		return
	}

	customer, err := h.service.Get(r.Context(), id)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("get customer failed", slog.Any("error", err), slog.Int64("id", id))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, customer)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "missing required fields")
		return
	}

	customer, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create customer failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	h.recordAudit(r, "create", customer.ID)
	httpx.JSON(w, http.StatusCreated, customer)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.customerID(w, r)
	if !ok {
		return
	}

	var req UpdateCustomerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid fields")
		return
	}

	customer, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("update customer failed", slog.Any("error", err), slog.Int64("id", id))
		}
		httpx.RespondError(w, err)
		return
	}

	h.recordAudit(r, "update", id)
	httpx.JSON(w, http.StatusOK, customer)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.customerID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("delete customer failed", slog.Any("error", err), slog.Int64("id", id))
		}
		httpx.RespondError(w, err)
		return
	}

	h.recordAudit(r, "delete", id)
	httpx.JSON(w, http.StatusOK, map[string]any{"message": "Customer deleted successfully"})
}

func (h *Handler) customerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "customer_id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid customer ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) recordAudit(r *http.Request, action string, customerID int64) {
	if h.audit == nil {
		return
	}
	actorID, _ := shared.UserIDFromContext(r.Context())
	err := h.audit.Record(r.Context(), shared.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   "customer",
		EntityID: strconv.FormatInt(customerID, 10),
	})
	if err != nil {
		h.logger.Warn("audit record", slog.Any("error", err))
	}
}
