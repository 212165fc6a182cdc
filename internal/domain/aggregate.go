package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodFormat é o formato usado para identificar um mês (yyyy-mm)
const PeriodFormat = "2006-01"

// CategoryAggregate soma vendas e lucro de uma categoria
type CategoryAggregate struct {
	Category string          `json:"category"`
	Sales    decimal.Decimal `json:"sales"`
	Profit   decimal.Decimal `json:"profit"`
	Records  int             `json:"records"`
}

// MonthlySales representa o total de vendas de um mês do calendário
type MonthlySales struct {
	Month  time.Time       `json:"month"`
	Period string          `json:"period"`
	Sales  decimal.Decimal `json:"sales"`
}

// NewMonthlySales cria a entrada mensal já com o período formatado
func NewMonthlySales(month time.Time, sales decimal.Decimal) MonthlySales {
	return MonthlySales{
		Month:  month,
		Period: month.Format(PeriodFormat),
		Sales:  sales,
	}
}

// SubCategorySeries é a série mensal de vendas de uma subcategoria
type SubCategorySeries struct {
	SubCategory string         `json:"sub_category"`
	Points      []MonthlySales `json:"points"`
}

// Total soma as vendas de todos os meses da série
func (s SubCategorySeries) Total() decimal.Decimal {
	total := decimal.Zero
	for _, point := range s.Points {
		total = total.Add(point.Sales)
	}
	return total
}
