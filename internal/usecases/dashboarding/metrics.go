package dashboarding

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

// CalculateSalesMetrics calcula totais e margem da seleção e compara a margem
// com a média geral de todos os registros
func CalculateSalesMetrics(filtered []domain.SalesRecord, all []domain.SalesRecord) domain.SalesMetrics {
	totalSales, totalProfit := sumSalesAndProfit(filtered)
	overallSales, overallProfit := sumSalesAndProfit(all)

	margin := domain.CalculateProfitMargin(totalProfit, totalSales)
	overallMargin := domain.CalculateProfitMargin(overallProfit, overallSales)

	return domain.SalesMetrics{
		TotalSales:          totalSales,
		TotalProfit:         totalProfit,
		ProfitMargin:        margin,
		OverallProfitMargin: overallMargin,
		MarginDelta:         margin.Sub(overallMargin),
	}
}

func sumSalesAndProfit(records []domain.SalesRecord) (decimal.Decimal, decimal.Decimal) {
	sales, profit := decimal.Zero, decimal.Zero
	for _, record := range records {
		sales = sales.Add(record.Sales)
		profit = profit.Add(record.Profit)
	}
	return sales, profit
}
