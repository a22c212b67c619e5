package httpx

import (
	"errors"
	"net/http"

	"github.com/davidjulakidze/lolly-law-assessment/internal/shared"
)

// RespondError maps domain errors to HTTP responses. The taxonomy is fixed:
// validation and duplicate input map to 400, credential failures to 401,
// absent records to 404, everything else collapses to a generic 500 with the
// detail kept server-side.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrValidation), errors.Is(err, shared.ErrEmailTaken):
		Problem(w, http.StatusBadRequest, "Bad Request", shared.UserSafeMessage(err))
	case errors.Is(err, shared.ErrInvalidCredentials):
		Problem(w, http.StatusUnauthorized, "Unauthorized", shared.UserSafeMessage(err))
	case errors.Is(err, shared.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", shared.UserSafeMessage(err))
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
