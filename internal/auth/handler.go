package auth

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

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	tokens    *TokenService
	cookies   CookiePolicy
	audit     *shared.AuditLogger
	validator *validator.Validate
}

// NewHandler constructs a Handler instance. audit may be nil, in which case
// no audit records are written.
func NewHandler(logger *slog.Logger, service *Service, tokens *TokenService, cookies CookiePolicy, audit *shared.AuditLogger) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		tokens:    tokens,
		cookies:   cookies,
		audit:     audit,
		validator: validator.New(),
	}
}

// MountRoutes registers auth routes on the provided router. Logout and
// signup stay outside the gate: logout must succeed for clients holding a
// garbled cookie, and signup/login are how a session is obtained in the
// first place.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/signup", h.handleSignup)
	r.Post("/login", h.handleLogin)
	r.Post("/logout", h.handleLogout)
	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(h.tokens))
		r.Get("/me", h.handleMe)
	})
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", validationDetail(err))
		return
	}

	user, err := h.service.Signup(r.Context(), req)
	if err != nil {
		if !errors.Is(err, shared.ErrEmailTaken) {
			h.logger.Error("signup failed", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}

	h.recordAudit(r, user.ID, "signup", "user", user.ID)
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    user.Public(),
	})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", validationDetail(err))
		return
	}

	user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) && !errors.Is(err, shared.ErrInvalidCredentials) {
			h.logger.Error("login failed", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.ID, req.RememberMe)
	if err != nil {
		h.logger.Error("issue token", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	h.cookies.Write(w, token, h.tokens.TTL(req.RememberMe))

	h.recordAudit(r, user.ID, "login", "user", user.ID)
	httpx.JSON(w, http.StatusOK, map[string]any{"user": user.Public()})
}

// handleLogout clears the token cookie unconditionally. It never requires a
// valid session: the only failure is a request carrying no cookie at all.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if _, err := r.Cookie(CookieName); err != nil {
		httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "no token provided")
		return
	}
	h.cookies.Clear(w)
	httpx.JSON(w, http.StatusOK, map[string]any{"message": "Logged out successfully"})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "valid authentication required")
		return
	}

	user, err := h.service.CurrentUser(r.Context(), userID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("fetch current user", slog.Any("error", err), slog.Int64("user_id", userID))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, user.Public())
}

func (h *Handler) recordAudit(r *http.Request, actorID int64, action, entity string, entityID int64) {
	if h.audit == nil {
		return
	}
	err := h.audit.Record(r.Context(), shared.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   entity,
		EntityID: strconv.FormatInt(entityID, 10),
	})
	if err != nil {
		h.logger.Warn("audit record", slog.Any("error", err))
	}
}

func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return "invalid field: " + verrs[0].Field()
	}
	return "invalid request"
}
