package utils

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseCurrency interpreta valores como "261.96", "$1,200.50" ou "-15.2"
func ParseCurrency(value string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	negative := strings.HasPrefix(cleaned, "-")
	cleaned = strings.TrimPrefix(cleaned, "-")
	cleaned = strings.TrimPrefix(cleaned, "$")
	if negative {
		cleaned = "-" + cleaned
	}

	if cleaned == "" || cleaned == "-" {
		return decimal.Zero, errors.New("valor vazio")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, errors.Errorf("valor %q não é numérico", value)
	}

	return amount, nil
}
