package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmountFits(t *testing.T) {
	tests := []struct {
		amount string
		fits   bool
	}{
		{"0.01", true},
		{"2500", true},
		{"9999999999.99", true},
		{"9999999999.994", true},
		{"9999999999.995", false},
		{"10000000000", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.fits, AmountFits(decimal.RequireFromString(tt.amount)))
		})
	}
}
