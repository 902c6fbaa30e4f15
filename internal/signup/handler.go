package signup

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/solstice-id/solstice-id/internal/i18n"
	"github.com/solstice-id/solstice-id/internal/observability"
	"github.com/solstice-id/solstice-id/internal/platform/httpx"
)

// Handler wires the HTTP endpoint for the signup flow.
type Handler struct {
	logger  *slog.Logger
	service *Service
	metrics *observability.Metrics
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, metrics *observability.Metrics) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service, metrics: metrics}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	locale := i18n.Resolve(r.Header.Get("Accept-Language"))

	var req SignupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Malformed Body", "request body must be valid JSON")
		return
	}

	user, err := h.service.Register(r.Context(), req, locale)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			h.metrics.RecordRegistration("rejected")
			httpx.JSON(w, http.StatusBadRequest, ErrorResponse{
				Message:          i18n.Message(locale, i18n.MsgValidationFailure),
				ValidationErrors: verr.Errors,
			})
			return
		}
		h.logger.Error("register user", slog.Any("error", err))
		h.metrics.RecordRegistration("error")
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}

	h.logger.Info("signup accepted", slog.String("user_id", user.ID.String()), slog.String("locale", locale))
	h.metrics.RecordRegistration("created")
	httpx.JSON(w, http.StatusOK, SignupResponse{Message: i18n.Message(locale, i18n.MsgUserCreated)})
}
