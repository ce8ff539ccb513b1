package budget

import (
	"time"

	"github.com/google/uuid"

	"github.com/moneta-app/moneta/internal/budget"
)

type budgetResponse struct {
	ID        uuid.UUID     `json:"id"`
	UserID    uuid.UUID     `json:"user_id"`
	Category  string        `json:"category"`
	Amount    float64       `json:"amount"`
	Period    budget.Period `json:"period"`
	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type spendingResponse struct {
	budgetResponse
	Spent          float64 `json:"spent"`
	Remaining      float64 `json:"remaining"`
	PercentageUsed float64 `json:"percentage_used"`
}

func toResponse(b *budget.Budget) budgetResponse {
	return budgetResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		Category:  b.Category,
		Amount:    b.Amount,
		Period:    b.Period,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toSpendingResponse(ws *budget.WithSpending) spendingResponse {
	return spendingResponse{
		budgetResponse: toResponse(&ws.Budget),
		Spent:          ws.Spent,
		Remaining:      ws.Remaining,
		PercentageUsed: ws.PercentageUsed,
	}
}

func toSpendingResponseList(budgets []*budget.WithSpending) []spendingResponse {
	resp := make([]spendingResponse, len(budgets))
	for i, ws := range budgets {
		resp[i] = toSpendingResponse(ws)
	}

	return resp
}
