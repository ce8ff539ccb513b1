package advisor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/moneta-app/moneta/internal/advisor"
	"github.com/moneta-app/moneta/internal/auth"
	"github.com/moneta-app/moneta/internal/http/respond"
)

type Handler struct {
	svc *advisor.Service
}

func NewHandler(svc *advisor.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/assistant", h.assistant)
}

type queryRequest struct {
	Query string `json:"query"`
}

type queryResponse struct {
	Query    string `json:"query"`
	Response string `json:"response"`
}

func (h *Handler) assistant(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		respond.Error(w, http.StatusUnprocessableEntity, "query is required")
		return
	}

	answer, err := h.svc.Ask(r.Context(), userID, req.Query)
	if err != nil {
		respond.Error(w, statusFor(advisor.KindOf(err)), err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, queryResponse{
		Query:    answer.Query,
		Response: answer.Response,
	})
}

// statusFor maps the advisory failure taxonomy onto HTTP status codes. A
// missing model reads as the service being unable to serve, not a client 404.
func statusFor(kind advisor.Kind) int {
	switch kind {
	case advisor.KindUnavailable, advisor.KindModelNotFound:
		return http.StatusServiceUnavailable
	case advisor.KindInvalidCredential:
		return http.StatusUnauthorized
	case advisor.KindPermissionDenied:
		return http.StatusForbidden
	case advisor.KindQuotaExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
