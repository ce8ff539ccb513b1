package budget

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=budget
type Repository interface {
	CreateBudget(ctx context.Context, b *Budget) error
	GetBudget(ctx context.Context, userID, id uuid.UUID) (*Budget, error)
	UpdateBudget(ctx context.Context, b *Budget) error
	DeleteBudget(ctx context.Context, userID, id uuid.UUID) error
	ListBudgets(ctx context.Context, userID uuid.UUID) ([]*Budget, error)

	// SumExpenses totals expense-kind transaction amounts for the user where
	// the category matches exactly and the date falls inside [start, end].
	SumExpenses(ctx context.Context, userID uuid.UUID, category string, start, end time.Time) (float64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Category  string
	Amount    float64
	Period    Period
	StartDate time.Time
	EndDate   time.Time
}

// UpdateParams carries a partial update; nil fields are left unchanged.
type UpdateParams struct {
	Category  *string
	Amount    *float64
	Period    *Period
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Budget, error) {
	b := &Budget{
		UserID:    userID,
		Category:  params.Category,
		Amount:    params.Amount,
		Period:    params.Period,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
	}
	if err := s.repo.CreateBudget(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Budget, error) {
	return s.repo.GetBudget(ctx, userID, id)
}

// GetWithSpending returns a budget enriched with its spend computation.
func (s *Service) GetWithSpending(ctx context.Context, userID, id uuid.UUID) (*WithSpending, error) {
	b, err := s.repo.GetBudget(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	return s.withSpending(ctx, b)
}

// ListWithSpending returns all of the user's budgets, each enriched with its
// spend computation.
func (s *Service) ListWithSpending(ctx context.Context, userID uuid.UUID) ([]*WithSpending, error) {
	budgets, err := s.repo.ListBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*WithSpending, 0, len(budgets))

	for _, b := range budgets {
		ws, err := s.withSpending(ctx, b)
		if err != nil {
			return nil, err
		}

		result = append(result, ws)
	}

	return result, nil
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, params UpdateParams) (*Budget, error) {
	b, err := s.repo.GetBudget(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if params.Category != nil {
		b.Category = *params.Category
	}

	if params.Amount != nil {
		b.Amount = *params.Amount
	}

	if params.Period != nil {
		b.Period = *params.Period
	}

	if params.StartDate != nil {
		b.StartDate = *params.StartDate
	}

	if params.EndDate != nil {
		b.EndDate = *params.EndDate
	}

	if err := s.repo.UpdateBudget(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteBudget(ctx, userID, id)
}

func (s *Service) withSpending(ctx context.Context, b *Budget) (*WithSpending, error) {
	spent, err := s.repo.SumExpenses(ctx, b.UserID, b.Category, b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}

	return &WithSpending{
		Budget:   *b,
		Spending: ComputeSpending(b.Amount, spent),
	}, nil
}

// ComputeSpending derives remaining and percentage-used from a budget ceiling
// and the amount spent. Remaining is not clamped at zero.
func ComputeSpending(amount, spent float64) Spending {
	var percentage float64
	if amount > 0 {
		percentage = math.Round(spent/amount*100*100) / 100
	}

	return Spending{
		Spent:          spent,
		Remaining:      amount - spent,
		PercentageUsed: percentage,
	}
}
