package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneta-app/moneta/internal/money"
)

func TestNewFormatter_UnknownCode(t *testing.T) {
	_, err := money.NewFormatter("NOPE")
	assert.Error(t, err)
}

func TestFormatter_Format(t *testing.T) {
	f, err := money.NewFormatter("USD")
	require.NoError(t, err)

	got := f.Format(1500)
	assert.Contains(t, got, "$")
	assert.Contains(t, got, "1,500")
	assert.Equal(t, "USD", f.Code())
}

func TestFormatter_Format_INR(t *testing.T) {
	f, err := money.NewFormatter("INR")
	require.NoError(t, err)

	got := f.Format(500)
	assert.Contains(t, got, "₹")
	assert.Contains(t, got, "500")
}
