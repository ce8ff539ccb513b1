package budget

import (
	"time"

	"github.com/google/uuid"
)

// Period is the budgeting cadence.
type Period string

const (
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

func (p Period) Valid() bool {
	return p == PeriodMonthly || p == PeriodYearly
}

// Budget is a spending ceiling for a category over a date range, owned by a
// user. Category is free text and is matched against transaction categories by
// plain string equality; nothing stops a budget from naming a category no
// transaction can carry.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  string
	Amount    float64
	Period    Period
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Spending is the computed spend-to-date for a budget. Remaining goes negative
// on overspend; PercentageUsed is rounded to two decimals and is 0 when the
// budget amount is not positive.
type Spending struct {
	Spent          float64
	Remaining      float64
	PercentageUsed float64
}

// WithSpending pairs a budget with its spend computation. Built by value so
// the persisted entity is never mutated to carry derived fields.
type WithSpending struct {
	Budget
	Spending
}
