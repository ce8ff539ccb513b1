package advisor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneta-app/moneta/internal/advisor"
	"github.com/moneta-app/moneta/internal/money"
)

func TestBuildPrompt(t *testing.T) {
	f, err := money.NewFormatter("USD")
	require.NoError(t, err)

	prompt := advisor.BuildPrompt(advisor.Summary{
		TotalIncome:  3000,
		TotalExpense: 1200,
		Balance:      1800,
	}, f, "Should I invest in mutual funds?")

	assert.Equal(t, "Should I invest in mutual funds?", prompt.UserText)

	assert.Contains(t, prompt.SystemInstruction, "ONLY answer questions about personal finance")
	assert.Contains(t, prompt.SystemInstruction, "no bullet points, no numbered lists, no headers")
	assert.Contains(t, prompt.SystemInstruction, "under 250 words")
	assert.Contains(t, prompt.SystemInstruction, "I'm a financial advisor for Moneta.")
	assert.Contains(t, prompt.SystemInstruction, "USD")
	assert.Contains(t, prompt.SystemInstruction, "3,000")
	assert.Contains(t, prompt.SystemInstruction, "1,200")
	assert.Contains(t, prompt.SystemInstruction, "1,800")

	// The question itself is never folded into the instruction.
	assert.NotContains(t, prompt.SystemInstruction, prompt.UserText)
}
