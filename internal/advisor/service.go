package advisor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneta-app/moneta/internal/money"
	"github.com/moneta-app/moneta/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=advisor

// Ledger supplies the aggregate totals used as the model's financial context.
// Satisfied by *transaction.Service.
type Ledger interface {
	Stats(ctx context.Context, userID uuid.UUID, filter transaction.StatsFilter) (*transaction.Stats, error)
}

// Gateway turns a prompt into the external model's text completion or a typed
// *Error. Implementations perform exactly one uncached round trip per call.
type Gateway interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
}

type Service struct {
	ledger    Ledger
	gateway   Gateway
	formatter *money.Formatter
}

func NewService(ledger Ledger, gateway Gateway, formatter *money.Formatter) *Service {
	return &Service{
		ledger:    ledger,
		gateway:   gateway,
		formatter: formatter,
	}
}

// Answer pairs the original question with the model's reply.
type Answer struct {
	Query    string
	Response string
}

// Ask aggregates the user's full transaction history into a summary, builds
// the prompt, and performs a single call to the gateway.
func (s *Service) Ask(ctx context.Context, userID uuid.UUID, query string) (*Answer, error) {
	stats, err := s.ledger.Stats(ctx, userID, transaction.StatsFilter{})
	if err != nil {
		return nil, fmt.Errorf("loading financial summary: %w", err)
	}

	prompt := BuildPrompt(Summary{
		TotalIncome:  stats.TotalIncome,
		TotalExpense: stats.TotalExpense,
		Balance:      stats.Balance,
	}, s.formatter, query)

	text, err := s.gateway.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &Answer{Query: query, Response: text}, nil
}
