package budget_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/moneta-app/moneta/internal/auth"
	"github.com/moneta-app/moneta/internal/budget"
	budgetHandler "github.com/moneta-app/moneta/internal/http/budget"
)

func setup(t *testing.T) (*budget.MockRepository, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := budget.NewMockRepository(ctrl)

	h := budgetHandler.NewHandler(budget.NewService(repo))

	router := chi.NewRouter()
	router.Route("/budgets", h.Routes)

	return repo, router
}

func doRequest(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = req.WithContext(auth.WithUser(req.Context(), uuid.New()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_Create(t *testing.T) {
	repo, router := setup(t)

	repo.EXPECT().
		CreateBudget(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, b *budget.Budget) error {
			b.ID = uuid.New()
			b.CreatedAt = time.Now()
			b.UpdatedAt = b.CreatedAt

			return nil
		})

	rec := doRequest(router, http.MethodPost, "/budgets/",
		`{"category": "food", "amount": 1000, "period": "monthly", "start_date": "2026-08-01T00:00:00Z", "end_date": "2026-08-31T00:00:00Z"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"category":"food"`)
	assert.NotContains(t, rec.Body.String(), "percentage_used")
}

func TestHandler_Create_Invalid(t *testing.T) {
	type testCase struct {
		name string
		body string
	}

	tests := []testCase{
		{name: "MissingCategory", body: `{"amount": 1000, "period": "monthly", "start_date": "2026-08-01T00:00:00Z", "end_date": "2026-08-31T00:00:00Z"}`},
		{name: "BadPeriod", body: `{"category": "food", "amount": 1000, "period": "weekly", "start_date": "2026-08-01T00:00:00Z", "end_date": "2026-08-31T00:00:00Z"}`},
		{name: "ZeroAmount", body: `{"category": "food", "amount": 0, "period": "monthly", "start_date": "2026-08-01T00:00:00Z", "end_date": "2026-08-31T00:00:00Z"}`},
		{name: "MissingDates", body: `{"category": "food", "amount": 1000, "period": "monthly"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := setup(t)

			rec := doRequest(router, http.MethodPost, "/budgets/", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}
}

func TestHandler_List_WithSpending(t *testing.T) {
	repo, router := setup(t)

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	b := &budget.Budget{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Category:  "food",
		Amount:    1000,
		Period:    budget.PeriodMonthly,
		StartDate: start,
		EndDate:   end,
	}

	repo.EXPECT().
		ListBudgets(gomock.Any(), gomock.Any()).
		Return([]*budget.Budget{b}, nil)
	repo.EXPECT().
		SumExpenses(gomock.Any(), b.UserID, "food", start, end).
		Return(250.0, nil)

	rec := doRequest(router, http.MethodGet, "/budgets/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"spent":250`)
	assert.Contains(t, rec.Body.String(), `"remaining":750`)
	assert.Contains(t, rec.Body.String(), `"percentage_used":25`)
}

func TestHandler_Get_NotFound(t *testing.T) {
	repo, router := setup(t)

	repo.EXPECT().
		GetBudget(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, budget.ErrNotFound)

	rec := doRequest(router, http.MethodGet, "/budgets/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Budget not found")
}

func TestHandler_Delete_NotFound(t *testing.T) {
	repo, router := setup(t)

	repo.EXPECT().
		DeleteBudget(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(budget.ErrNotFound)

	rec := doRequest(router, http.MethodDelete, "/budgets/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Unauthenticated(t *testing.T) {
	_, router := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/budgets/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
