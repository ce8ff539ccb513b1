package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/moneta-app/moneta/internal/transaction"
)

type transactionResponse struct {
	ID          uuid.UUID            `json:"id"`
	UserID      uuid.UUID            `json:"user_id"`
	Type        transaction.Type     `json:"type"`
	Category    transaction.Category `json:"category"`
	Amount      float64              `json:"amount"`
	Description string               `json:"description,omitempty"`
	Date        time.Time            `json:"date"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Type:        tx.Type,
		Category:    tx.Category,
		Amount:      tx.Amount,
		Description: tx.Description,
		Date:        tx.Date,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

type statsResponse struct {
	TotalIncome      float64 `json:"total_income"`
	TotalExpense     float64 `json:"total_expense"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transaction_count"`
}

func toStatsResponse(stats *transaction.Stats) statsResponse {
	return statsResponse{
		TotalIncome:      stats.TotalIncome,
		TotalExpense:     stats.TotalExpense,
		Balance:          stats.Balance,
		TransactionCount: stats.Count,
	}
}
