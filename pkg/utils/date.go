package utils

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DateLayouts são os formatos aceitos para datas de pedido
var DateLayouts = []string{
	time.DateOnly,
	"1/2/2006",
	"01/02/2006",
	time.DateTime,
	time.RFC3339,
	"2006/01/02",
}

// ParseDate interpreta a data usando os formatos conhecidos, na ordem
func ParseDate(dateStr string) (time.Time, error) {
	return ParseDateWithLayouts(dateStr, DateLayouts)
}

func ParseDateWithLayouts(dateStr string, layouts []string) (time.Time, error) {
	value := strings.TrimSpace(dateStr)
	if value == "" {
		return time.Time{}, errors.New("data vazia")
	}

	for _, layout := range layouts {
		date, err := time.Parse(layout, value)
		if err == nil {
			return date, nil
		}
	}

	return time.Time{}, errors.Errorf("data %q em formato desconhecido", dateStr)
}

// FirstDayOfMonth trunca a data para o primeiro dia do mês, em UTC
func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthRange lista todos os meses entre start e end, inclusive
func MonthRange(start, end time.Time) []time.Time {
	first := FirstDayOfMonth(start)
	last := FirstDayOfMonth(end)

	months := make([]time.Time, 0)
	for month := first; !month.After(last); month = month.AddDate(0, 1, 0) {
		months = append(months, month)
	}

	return months
}
