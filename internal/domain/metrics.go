package domain

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Direções do delta exibido no widget
const (
	DeltaUp   = "up"
	DeltaDown = "down"
	DeltaFlat = "flat"
)

// SalesMetrics agrega as métricas da seleção e a comparação com a base completa
type SalesMetrics struct {
	TotalSales          decimal.Decimal `json:"total_sales"`
	TotalProfit         decimal.Decimal `json:"total_profit"`
	ProfitMargin        decimal.Decimal `json:"profit_margin"`
	OverallProfitMargin decimal.Decimal `json:"overall_profit_margin"`
	MarginDelta         decimal.Decimal `json:"margin_delta"`
}

// MetricWidget é a representação pronta para exibição de uma métrica
type MetricWidget struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Delta     string `json:"delta,omitempty"`
	Direction string `json:"direction,omitempty"`
}

// CalculateProfitMargin calcula lucro / vendas * 100, retornando zero quando não há vendas
func CalculateProfitMargin(profit, sales decimal.Decimal) decimal.Decimal {
	if sales.IsZero() {
		return decimal.Zero
	}

	return profit.Div(sales).Mul(hundred)
}

// Widgets monta os quatro cartões de métricas do painel
func (m SalesMetrics) Widgets() []MetricWidget {
	margin := FormatPercent(m.ProfitMargin)

	return []MetricWidget{
		{
			Label:     "Profit Margin (%)",
			Value:     margin,
			Delta:     FormatDelta(m.MarginDelta),
			Direction: DeltaDirection(m.MarginDelta),
		},
		{Label: "Total Sales", Value: FormatCurrency(m.TotalSales)},
		{Label: "Total Profit", Value: FormatCurrency(m.TotalProfit)},
		{Label: "Profit Margin (%)", Value: margin},
	}
}

// FormatCurrency formata um valor monetário como $1,234.56
func FormatCurrency(value decimal.Decimal) string {
	return "$" + humanize.FormatFloat("#,###.##", value.Round(2).InexactFloat64())
}

// FormatPercent formata uma porcentagem com duas casas decimais
func FormatPercent(value decimal.Decimal) string {
	return value.StringFixed(2) + "%"
}

// FormatDelta formata a diferença com sinal explícito
func FormatDelta(value decimal.Decimal) string {
	rounded := value.Round(2)
	if rounded.IsPositive() {
		return "+" + rounded.StringFixed(2) + "%"
	}
	return rounded.StringFixed(2) + "%"
}

// DeltaDirection indica se o delta está acima, abaixo ou igual à média geral
func DeltaDirection(value decimal.Decimal) string {
	rounded := value.Round(2)
	switch {
	case rounded.IsPositive():
		return DeltaUp
	case rounded.IsNegative():
		return DeltaDown
	default:
		return DeltaFlat
	}
}
