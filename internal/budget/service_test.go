package budget_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/moneta-app/moneta/internal/budget"
)

func TestComputeSpending(t *testing.T) {
	type testCase struct {
		name           string
		amount         float64
		spent          float64
		wantRemaining  float64
		wantPercentage float64
	}

	tests := []testCase{
		{
			name:           "HalfUsed",
			amount:         1000,
			spent:          500,
			wantRemaining:  500,
			wantPercentage: 50,
		},
		{
			name:           "NothingSpent",
			amount:         1000,
			spent:          0,
			wantRemaining:  1000,
			wantPercentage: 0,
		},
		{
			name:           "Overspent",
			amount:         1000,
			spent:          1500,
			wantRemaining:  -500,
			wantPercentage: 150,
		},
		{
			name:           "RoundedToTwoDecimals",
			amount:         300,
			spent:          100,
			wantRemaining:  200,
			wantPercentage: 33.33,
		},
		{
			name:           "ZeroCeiling",
			amount:         0,
			spent:          100,
			wantRemaining:  -100,
			wantPercentage: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := budget.ComputeSpending(tt.amount, tt.spent)

			assert.Equal(t, tt.spent, got.Spent)
			assert.InDelta(t, tt.wantRemaining, got.Remaining, 1e-9)
			assert.InDelta(t, tt.wantPercentage, got.PercentageUsed, 1e-9)
		})
	}
}

func TestService_ListWithSpending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)
	svc := budget.NewService(repo)

	userID := uuid.New()
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	b := &budget.Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  "food",
		Amount:    1000,
		Period:    budget.PeriodMonthly,
		StartDate: start,
		EndDate:   end,
	}

	repo.EXPECT().ListBudgets(gomock.Any(), userID).Return([]*budget.Budget{b}, nil)
	repo.EXPECT().SumExpenses(gomock.Any(), userID, "food", start, end).Return(500.0, nil)

	got, err := svc.ListWithSpending(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 500.0, got[0].Spent)
	assert.Equal(t, 500.0, got[0].Remaining)
	assert.Equal(t, 50.0, got[0].PercentageUsed)
	assert.Equal(t, b.ID, got[0].ID)
}

func TestService_ListWithSpending_NoMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)
	svc := budget.NewService(repo)

	userID := uuid.New()

	b := &budget.Budget{
		ID:       uuid.New(),
		UserID:   userID,
		Category: "travel",
		Amount:   2000,
	}

	repo.EXPECT().ListBudgets(gomock.Any(), userID).Return([]*budget.Budget{b}, nil)
	repo.EXPECT().
		SumExpenses(gomock.Any(), userID, "travel", gomock.Any(), gomock.Any()).
		Return(0.0, nil)

	got, err := svc.ListWithSpending(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].Spent)
	assert.Equal(t, 2000.0, got[0].Remaining)
	assert.Equal(t, 0.0, got[0].PercentageUsed)
}

func TestService_GetWithSpending_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)
	svc := budget.NewService(repo)

	userID := uuid.New()
	id := uuid.New()

	repo.EXPECT().GetBudget(gomock.Any(), userID, id).Return(nil, budget.ErrNotFound)

	got, err := svc.GetWithSpending(context.Background(), userID, id)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, budget.ErrNotFound)
}

func TestService_Update_PartialFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)
	svc := budget.NewService(repo)

	userID := uuid.New()
	id := uuid.New()

	existing := &budget.Budget{
		ID:       id,
		UserID:   userID,
		Category: "food",
		Amount:   1000,
		Period:   budget.PeriodMonthly,
	}

	repo.EXPECT().GetBudget(gomock.Any(), userID, id).Return(existing, nil)
	repo.EXPECT().UpdateBudget(gomock.Any(), gomock.Any()).Return(nil)

	newAmount := 1500.0

	got, err := svc.Update(context.Background(), userID, id, budget.UpdateParams{
		Amount: &newAmount,
	})
	require.NoError(t, err)
	assert.Equal(t, 1500.0, got.Amount)
	assert.Equal(t, "food", got.Category)
	assert.Equal(t, budget.PeriodMonthly, got.Period)
}

func TestService_Create_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)
	svc := budget.NewService(repo)

	repo.EXPECT().CreateBudget(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

	got, err := svc.Create(context.Background(), uuid.New(), budget.CreateParams{
		Category: "food",
		Amount:   1000,
		Period:   budget.PeriodMonthly,
	})
	assert.Nil(t, got)
	assert.Error(t, err)
}
