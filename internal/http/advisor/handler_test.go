package advisor_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/moneta-app/moneta/internal/advisor"
	"github.com/moneta-app/moneta/internal/auth"
	advisorHandler "github.com/moneta-app/moneta/internal/http/advisor"
	"github.com/moneta-app/moneta/internal/money"
	"github.com/moneta-app/moneta/internal/transaction"
)

func setup(t *testing.T) (*advisor.MockLedger, *advisor.MockGateway, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ledger := advisor.NewMockLedger(ctrl)
	gateway := advisor.NewMockGateway(ctrl)

	formatter, err := money.NewFormatter("INR")
	require.NoError(t, err)

	h := advisorHandler.NewHandler(advisor.NewService(ledger, gateway, formatter))

	router := chi.NewRouter()
	router.Route("/ai", h.Routes)

	return ledger, gateway, router
}

func doRequest(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/ai/assistant", strings.NewReader(body))
	req = req.WithContext(auth.WithUser(req.Context(), uuid.New()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_Assistant_Success(t *testing.T) {
	ledger, gateway, router := setup(t)

	ledger.EXPECT().
		Stats(gomock.Any(), gomock.Any(), transaction.StatsFilter{}).
		Return(&transaction.Stats{TotalIncome: 1000, Balance: 1000}, nil)
	gateway.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return("Save 20% of your income.", nil)

	rec := doRequest(router, `{"query": "How much should I save?"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"query": "How much should I save?", "response": "Save 20% of your income."}`,
		rec.Body.String())
}

func TestHandler_Assistant_EmptyQuery(t *testing.T) {
	_, _, router := setup(t)

	rec := doRequest(router, `{"query": "  "}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandler_Assistant_ErrorMapping(t *testing.T) {
	type testCase struct {
		name       string
		kind       advisor.Kind
		wantStatus int
	}

	tests := []testCase{
		{name: "Unavailable", kind: advisor.KindUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "ModelNotFound", kind: advisor.KindModelNotFound, wantStatus: http.StatusServiceUnavailable},
		{name: "InvalidCredential", kind: advisor.KindInvalidCredential, wantStatus: http.StatusUnauthorized},
		{name: "PermissionDenied", kind: advisor.KindPermissionDenied, wantStatus: http.StatusForbidden},
		{name: "QuotaExceeded", kind: advisor.KindQuotaExceeded, wantStatus: http.StatusTooManyRequests},
		{name: "EmptyResponse", kind: advisor.KindEmptyResponse, wantStatus: http.StatusInternalServerError},
		{name: "Unknown", kind: advisor.KindUnknown, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger, gateway, router := setup(t)

			ledger.EXPECT().
				Stats(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&transaction.Stats{}, nil)
			gateway.EXPECT().
				Generate(gomock.Any(), gomock.Any()).
				Return("", advisor.NewError(tt.kind, "boom"))

			rec := doRequest(router, `{"query": "anything"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), "detail")
		})
	}
}

func TestHandler_Assistant_Unauthenticated(t *testing.T) {
	_, _, router := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/ai/assistant", strings.NewReader(`{"query": "hi"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
