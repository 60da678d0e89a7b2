package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReceiptNumber(t *testing.T) {
	now := time.UnixMilli(1718000000123)

	receipt, err := NewReceiptNumber(now)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(receipt, "RCT1718000000123"))
	assert.Len(t, receipt, len("RCT")+13+3+1)
	assert.True(t, IsReceiptNumber(receipt))
}

func TestNewReceiptNumber_Varies(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		receipt, err := NewReceiptNumber(now)
		require.NoError(t, err)
		seen[receipt] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestIsReceiptNumber(t *testing.T) {
	valid, err := NewReceiptNumber(time.Now())
	require.NoError(t, err)

	last := valid[len(valid)-1]
	flipped := valid[:len(valid)-1] + string('0'+(last-'0'+1)%10)

	tests := []struct {
		name     string
		receipt  string
		expected bool
	}{
		{name: "Generated", receipt: valid, expected: true},
		{name: "Known valid digits", receipt: "RCT79927398713", expected: true},
		{name: "Wrong check digit", receipt: flipped, expected: false},
		{name: "Missing prefix", receipt: strings.TrimPrefix(valid, "RCT"), expected: false},
		{name: "Letters in body", receipt: "RCT12A4", expected: false},
		{name: "Empty", receipt: "", expected: false},
		{name: "Prefix only", receipt: "RCT", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsReceiptNumber(tt.receipt))
		})
	}
}

func TestFinancialYear(t *testing.T) {
	assert.Equal(t, "2024-2025", FinancialYear(time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-2025", FinancialYear(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-2026", FinancialYear(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)))
}
