package budget

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/moneta-app/moneta/internal/auth"
	"github.com/moneta-app/moneta/internal/budget"
	"github.com/moneta-app/moneta/internal/http/respond"
)

type Handler struct {
	svc *budget.Service
}

func NewHandler(svc *budget.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createBudgetRequest struct {
	Category  string        `json:"category"`
	Amount    float64       `json:"amount"`
	Period    budget.Period `json:"period"`
	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
}

func (req createBudgetRequest) validate() error {
	if req.Category == "" {
		return errors.New("category is required")
	}

	if req.Amount <= 0 {
		return errors.New("amount must be greater than 0")
	}

	if !req.Period.Valid() {
		return errors.New("period must be 'monthly' or 'yearly'")
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return errors.New("start_date and end_date are required")
	}

	return nil
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := req.validate(); err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	b, err := h.svc.Create(r.Context(), userID, budget.CreateParams{
		Category:  req.Category,
		Amount:    req.Amount,
		Period:    req.Period,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to create budget")
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(b))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	budgets, err := h.svc.ListWithSpending(r.Context(), userID)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to list budgets")
		return
	}

	respond.JSON(w, http.StatusOK, toSpendingResponseList(budgets))
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

	ws, err := h.svc.GetWithSpending(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, budget.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Budget not found")
			return
		}

		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusOK, toSpendingResponse(ws))
}

type updateBudgetRequest struct {
	Category  *string        `json:"category,omitempty"`
	Amount    *float64       `json:"amount,omitempty"`
	Period    *budget.Period `json:"period,omitempty"`
	StartDate *time.Time     `json:"start_date,omitempty"`
	EndDate   *time.Time     `json:"end_date,omitempty"`
}

func (req updateBudgetRequest) validate() error {
	if req.Category != nil && *req.Category == "" {
		return errors.New("category cannot be empty")
	}

	if req.Amount != nil && *req.Amount <= 0 {
		return errors.New("amount must be greater than 0")
	}

	if req.Period != nil && !req.Period.Valid() {
		return errors.New("period must be 'monthly' or 'yearly'")
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

	var req updateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := req.validate(); err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	b, err := h.svc.Update(r.Context(), userID, id, budget.UpdateParams{
		Category:  req.Category,
		Amount:    req.Amount,
		Period:    req.Period,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		if errors.Is(err, budget.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Budget not found")
			return
		}

		respond.Error(w, http.StatusInternalServerError, "failed to update budget")

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(b))
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
		if errors.Is(err, budget.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Budget not found")
			return
		}

		respond.Error(w, http.StatusInternalServerError, "failed to delete budget")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
