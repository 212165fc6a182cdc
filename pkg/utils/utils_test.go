package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{name: "ISO", input: "2017-11-08", expected: time.Date(2017, 11, 8, 0, 0, 0, 0, time.UTC)},
		{name: "Formato americano curto", input: "1/3/2017", expected: time.Date(2017, 1, 3, 0, 0, 0, 0, time.UTC)},
		{name: "Formato americano com zeros", input: "06/12/2016", expected: time.Date(2016, 6, 12, 0, 0, 0, 0, time.UTC)},
		{name: "Data e hora", input: "2016-10-11 13:45:00", expected: time.Date(2016, 10, 11, 13, 45, 0, 0, time.UTC)},
		{name: "Espaços nas bordas", input: "  2015-04-30 ", expected: time.Date(2015, 4, 30, 0, 0, 0, 0, time.UTC)},
		{name: "Data vazia", input: "", wantErr: true},
		{name: "Data inválida", input: "30-30-2017", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(date), "esperado %s, obtido %s", tt.expected, date)
		})
	}
}

func TestMonthRange(t *testing.T) {
	months := MonthRange(
		time.Date(2016, 11, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2017, 2, 3, 0, 0, 0, 0, time.UTC),
	)

	require.Len(t, months, 4)
	assert.Equal(t, time.Date(2016, 11, 1, 0, 0, 0, 0, time.UTC), months[0])
	assert.Equal(t, time.Date(2017, 2, 1, 0, 0, 0, 0, time.UTC), months[3])
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{input: "261.96", expected: "261.96"},
		{input: "$1,200.50", expected: "1200.5"},
		{input: "-$15.20", expected: "-15.2"},
		{input: " -383.031 ", expected: "-383.031"},
		{input: "", wantErr: true},
		{input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			amount, err := ParseCurrency(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, amount.String())
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 6.67, RoundWithTwoDecimalPlace(6.6666))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 8)
}
