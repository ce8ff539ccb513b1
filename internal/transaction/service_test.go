package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/moneta-app/moneta/internal/transaction"
)

func TestService_Create(t *testing.T) {
	type args struct {
		params transaction.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *transaction.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: transaction.CreateParams{
					Type:        transaction.TypeExpense,
					Category:    transaction.CategoryFood,
					Amount:      500,
					Description: "Groceries",
					Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "RepoError",
			args: args{
				params: transaction.CreateParams{
					Amount: 500,
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo)
			got, err := svc.Create(context.Background(), uuid.New(), tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_List(t *testing.T) {
	userID := uuid.New()

	type testCase struct {
		name      string
		filter    transaction.ListFilter
		setupMock func(m *transaction.MockRepository)
		wantLen   int
		wantErr   bool
	}

	tests := []testCase{
		{
			name:   "Success",
			filter: transaction.ListFilter{},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), userID, transaction.ListFilter{}).
					Return([]*transaction.Transaction{
						{ID: uuid.New(), UserID: userID},
						{ID: uuid.New(), UserID: userID},
					}, nil)
			},
			wantLen: 2,
			wantErr: false,
		},
		{
			name:   "Error",
			filter: transaction.ListFilter{},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), userID, transaction.ListFilter{}).
					Return(nil, errors.New("list error"))
			},
			wantLen: 0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo)
			got, err := svc.List(context.Background(), userID, tt.filter)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_Update_PartialFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	userID := uuid.New()
	txID := uuid.New()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	existing := &transaction.Transaction{
		ID:          txID,
		UserID:      userID,
		Type:        transaction.TypeExpense,
		Category:    transaction.CategoryFood,
		Amount:      500,
		Description: "Groceries",
		Date:        date,
	}

	repo.EXPECT().GetTransaction(gomock.Any(), userID, txID).Return(existing, nil)
	repo.EXPECT().
		UpdateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			assert.Equal(t, float64(750), tx.Amount)
			assert.Equal(t, transaction.CategoryFood, tx.Category)
			assert.Equal(t, date, tx.Date)
			return nil
		})

	newAmount := 750.0

	got, err := svc.Update(context.Background(), userID, txID, transaction.UpdateParams{
		Amount: &newAmount,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(750), got.Amount)
	assert.Equal(t, "Groceries", got.Description)
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	userID := uuid.New()
	txID := uuid.New()

	repo.EXPECT().GetTransaction(gomock.Any(), userID, txID).Return(nil, transaction.ErrNotFound)

	got, err := svc.Update(context.Background(), userID, txID, transaction.UpdateParams{})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

func TestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	userID := uuid.New()

	repo.EXPECT().
		StatsTransactions(gomock.Any(), userID, transaction.StatsFilter{}).
		Return(&transaction.Stats{
			TotalIncome:  3000,
			TotalExpense: 1200,
			Balance:      1800,
			Count:        7,
		}, nil)

	stats, err := svc.Stats(context.Background(), userID, transaction.StatsFilter{})
	require.NoError(t, err)
	assert.Equal(t, float64(1800), stats.Balance)
	assert.Equal(t, 7, stats.Count)
}

func TestCategory_Valid(t *testing.T) {
	assert.True(t, transaction.CategoryFood.Valid())
	assert.True(t, transaction.CategorySalary.Valid())
	assert.False(t, transaction.Category("groceries").Valid())
}
