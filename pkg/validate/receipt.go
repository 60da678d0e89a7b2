package validate

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
)

const ReceiptPrefix = "RCT"

var ErrInvalidReceipt = errors.New("invalid receipt number")

// NewReceiptNumber returns RCT, the unix milliseconds of now, three random
// digits and a Luhn check digit over all the digits.
func NewReceiptNumber(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		return "", fmt.Errorf("receipt random digits: %w", err)
	}
	payload := strconv.FormatInt(now.UnixMilli(), 10) + fmt.Sprintf("%03d", n.Int64())

	_, full, err := goluhn.Calculate(payload)
	if err != nil {
		return "", fmt.Errorf("receipt check digit: %w", err)
	}
	return ReceiptPrefix + full, nil
}

// IsReceiptNumber reports whether s has the receipt shape and a valid check digit.
func IsReceiptNumber(s string) bool {
	digits, ok := strings.CutPrefix(s, ReceiptPrefix)
	if !ok || len(digits) < 2 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return goluhn.Validate(digits) == nil
}

// FinancialYear labels t with its calendar year and the next, e.g. "2024-2025".
func FinancialYear(t time.Time) string {
	y := t.Year()
	return fmt.Sprintf("%d-%d", y, y+1)
}
