package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error

	ListTransactions(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Transaction, error)
	StatsTransactions(ctx context.Context, userID uuid.UUID, filter StatsFilter) (*Stats, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Type        Type
	Category    Category
	Amount      float64
	Description string
	Date        time.Time
}

// UpdateParams carries a partial update; nil fields are left unchanged.
type UpdateParams struct {
	Type        *Type
	Category    *Category
	Amount      *float64
	Description *string
	Date        *time.Time
}

type ListFilter struct {
	Type      *Type
	StartDate *time.Time
	EndDate   *time.Time
	Skip      int
	Limit     int
}

// StatsFilter bounds the aggregation window. Either bound may be omitted
// independently; both bounds are inclusive.
type StatsFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Stats holds aggregate totals over a set of transactions.
// Balance = TotalIncome - TotalExpense.
type Stats struct {
	TotalIncome  float64
	TotalExpense float64
	Balance      float64
	Count        int
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Transaction, error) {
	tx := &Transaction{
		UserID:      userID,
		Type:        params.Type,
		Category:    params.Category,
		Amount:      params.Amount,
		Description: params.Description,
		Date:        params.Date,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, userID, filter)
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, params UpdateParams) (*Transaction, error) {
	tx, err := s.repo.GetTransaction(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if params.Type != nil {
		tx.Type = *params.Type
	}

	if params.Category != nil {
		tx.Category = *params.Category
	}

	if params.Amount != nil {
		tx.Amount = *params.Amount
	}

	if params.Description != nil {
		tx.Description = *params.Description
	}

	if params.Date != nil {
		tx.Date = *params.Date
	}

	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, userID, id)
}

// Stats aggregates income and expense totals over the user's transactions
// whose date falls inside the (inclusive) filter window. An empty result set
// yields zero totals, not an error.
func (s *Service) Stats(ctx context.Context, userID uuid.UUID, filter StatsFilter) (*Stats, error) {
	return s.repo.StatsTransactions(ctx, userID, filter)
}
