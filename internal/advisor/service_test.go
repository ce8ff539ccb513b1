package advisor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/moneta-app/moneta/internal/advisor"
	"github.com/moneta-app/moneta/internal/money"
	"github.com/moneta-app/moneta/internal/transaction"
)

func newFormatter(t *testing.T) *money.Formatter {
	t.Helper()

	f, err := money.NewFormatter("INR")
	require.NoError(t, err)

	return f
}

func TestService_Ask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := advisor.NewMockLedger(ctrl)
	gateway := advisor.NewMockGateway(ctrl)
	svc := advisor.NewService(ledger, gateway, newFormatter(t))

	userID := uuid.New()

	ledger.EXPECT().
		Stats(gomock.Any(), userID, transaction.StatsFilter{}).
		Return(&transaction.Stats{TotalIncome: 3000, TotalExpense: 1200, Balance: 1800, Count: 4}, nil)

	gateway.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt advisor.Prompt) (string, error) {
			assert.Equal(t, "How do I save more?", prompt.UserText)
			assert.Contains(t, prompt.SystemInstruction, "1,800")
			return "Pay yourself first.", nil
		})

	answer, err := svc.Ask(context.Background(), userID, "How do I save more?")
	require.NoError(t, err)
	assert.Equal(t, "How do I save more?", answer.Query)
	assert.Equal(t, "Pay yourself first.", answer.Response)
}

func TestService_Ask_GatewayError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := advisor.NewMockLedger(ctrl)
	gateway := advisor.NewMockGateway(ctrl)
	svc := advisor.NewService(ledger, gateway, newFormatter(t))

	userID := uuid.New()

	ledger.EXPECT().
		Stats(gomock.Any(), userID, transaction.StatsFilter{}).
		Return(&transaction.Stats{}, nil)

	gateway.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return("", advisor.NewError(advisor.KindQuotaExceeded, "quota exceeded"))

	answer, err := svc.Ask(context.Background(), userID, "anything")
	assert.Nil(t, answer)
	assert.Equal(t, advisor.KindQuotaExceeded, advisor.KindOf(err))
}

func TestService_Ask_LedgerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := advisor.NewMockLedger(ctrl)
	gateway := advisor.NewMockGateway(ctrl)
	svc := advisor.NewService(ledger, gateway, newFormatter(t))

	ledger.EXPECT().
		Stats(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	answer, err := svc.Ask(context.Background(), uuid.New(), "anything")
	assert.Nil(t, answer)
	assert.Error(t, err)
	assert.Equal(t, advisor.KindUnknown, advisor.KindOf(err))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, advisor.KindUnavailable, advisor.KindOf(advisor.NewError(advisor.KindUnavailable, "no client")))
	assert.Equal(t, advisor.KindUnknown, advisor.KindOf(errors.New("plain")))
}
