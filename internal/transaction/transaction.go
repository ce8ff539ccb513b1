package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the kind of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Category classifies a transaction. Categories are declared per kind, but a
// transaction is accepted as long as its category is a known member of either
// set; the row's kind is not cross-checked against it.
type Category string

const (
	CategorySalary      Category = "salary"
	CategoryFreelance   Category = "freelance"
	CategoryInvestment  Category = "investment"
	CategoryOtherIncome Category = "other_income"

	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryHousing       Category = "housing"
	CategoryUtilities     Category = "utilities"
	CategoryEntertainment Category = "entertainment"
	CategoryHealthcare    Category = "healthcare"
	CategoryShopping      Category = "shopping"
	CategoryEducation     Category = "education"
	CategoryOtherExpense  Category = "other_expense"
)

var categories = map[Category]struct{}{
	CategorySalary:        {},
	CategoryFreelance:     {},
	CategoryInvestment:    {},
	CategoryOtherIncome:   {},
	CategoryFood:          {},
	CategoryTransport:     {},
	CategoryHousing:       {},
	CategoryUtilities:     {},
	CategoryEntertainment: {},
	CategoryHealthcare:    {},
	CategoryShopping:      {},
	CategoryEducation:     {},
	CategoryOtherExpense:  {},
}

func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

// Transaction represents a single income or expense entry owned by a user.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        Type
	Category    Category
	Amount      float64
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
