package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/moneta-app/moneta/internal/auth"
	"github.com/moneta-app/moneta/internal/http/respond"
	"github.com/moneta-app/moneta/internal/transaction"
)

const defaultListLimit = 100

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/stats", h.stats)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createTransactionRequest struct {
	Type        transaction.Type     `json:"type"`
	Category    transaction.Category `json:"category"`
	Amount      float64              `json:"amount"`
	Description string               `json:"description"`
	Date        time.Time            `json:"date"`
}

func (req createTransactionRequest) validate() error {
	if !req.Type.Valid() {
		return errors.New("type must be 'income' or 'expense'")
	}

	if !req.Category.Valid() {
		return errors.New("unknown category")
	}

	if req.Amount <= 0 {
		return errors.New("amount must be greater than 0")
	}

	if req.Date.IsZero() {
		return errors.New("date is required")
	}

	return nil
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := req.validate(); err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	tx, err := h.svc.Create(r.Context(), userID, transaction.CreateParams{
		Type:        req.Type,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to create transaction")
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(tx))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	filter := transaction.ListFilter{Limit: defaultListLimit}

	if s := r.URL.Query().Get("type"); s != "" {
		txType := transaction.Type(s)
		if !txType.Valid() {
			respond.Error(w, http.StatusUnprocessableEntity, "type must be 'income' or 'expense'")
			return
		}

		filter.Type = &txType
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			respond.Error(w, http.StatusUnprocessableEntity, "invalid start_date")
			return
		}

		filter.StartDate = &t
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			respond.Error(w, http.StatusUnprocessableEntity, "invalid end_date")
			return
		}

		filter.EndDate = &t
	}

	if s := r.URL.Query().Get("skip"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			filter.Skip = n
		}
	}

	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			filter.Limit = n
		}
	}

	txs, err := h.svc.List(r.Context(), userID, filter)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(txs))
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	filter := transaction.StatsFilter{}

	if s := r.URL.Query().Get("start_date"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			respond.Error(w, http.StatusUnprocessableEntity, "invalid start_date")
			return
		}

		filter.StartDate = &t
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			respond.Error(w, http.StatusUnprocessableEntity, "invalid end_date")
			return
		}

		filter.EndDate = &t
	}

	stats, err := h.svc.Stats(r.Context(), userID, filter)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	respond.JSON(w, http.StatusOK, toStatsResponse(stats))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	tx, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Transaction not found")
			return
		}

		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(tx))
}

type updateTransactionRequest struct {
	Type        *transaction.Type     `json:"type,omitempty"`
	Category    *transaction.Category `json:"category,omitempty"`
	Amount      *float64              `json:"amount,omitempty"`
	Description *string               `json:"description,omitempty"`
	Date        *time.Time            `json:"date,omitempty"`
}

func (req updateTransactionRequest) validate() error {
	if req.Type != nil && !req.Type.Valid() {
		return errors.New("type must be 'income' or 'expense'")
	}

	if req.Category != nil && !req.Category.Valid() {
		return errors.New("unknown category")
	}

	if req.Amount != nil && *req.Amount <= 0 {
		return errors.New("amount must be greater than 0")
	}

	return nil
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := req.validate(); err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	tx, err := h.svc.Update(r.Context(), userID, id, transaction.UpdateParams{
		Type:        req.Type,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Transaction not found")
			return
		}

		respond.Error(w, http.StatusInternalServerError, "failed to update transaction")

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(tx))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Transaction not found")
			return
		}

		respond.Error(w, http.StatusInternalServerError, "failed to delete transaction")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseDate accepts RFC 3339 timestamps and bare dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return time.Parse(time.DateOnly, s)
}
