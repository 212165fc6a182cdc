package dashboarding

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

// AggregateByCategory soma vendas e lucro por categoria, na ordem de aparição
func AggregateByCategory(records []domain.SalesRecord) []domain.CategoryAggregate {
	positions := make(map[string]int)
	aggregates := make([]domain.CategoryAggregate, 0)

	for _, record := range records {
		position, exists := positions[record.Category]
		if !exists {
			position = len(aggregates)
			positions[record.Category] = position
			aggregates = append(aggregates, domain.CategoryAggregate{
				Category: record.Category,
				Sales:    decimal.Zero,
				Profit:   decimal.Zero,
			})
		}

		aggregate := &aggregates[position]
		aggregate.Sales = aggregate.Sales.Add(record.Sales)
		aggregate.Profit = aggregate.Profit.Add(record.Profit)
		aggregate.Records++
	}

	return aggregates
}

// AggregateSalesByMonth soma as vendas por mês do calendário em ordem
// cronológica. Meses sem vendas entre o primeiro e o último aparecem zerados.
func AggregateSalesByMonth(records []domain.SalesRecord) []domain.MonthlySales {
	if len(records) == 0 {
		return []domain.MonthlySales{}
	}

	totals := make(map[time.Time]decimal.Decimal)
	for _, record := range records {
		month := utils.FirstDayOfMonth(record.OrderDate)
		totals[month] = totals[month].Add(record.Sales)
	}

	months := monthAxis(records)
	result := make([]domain.MonthlySales, 0, len(months))
	for _, month := range months {
		result = append(result, domain.NewMonthlySales(month, totalOrZero(totals, month)))
	}

	return result
}

// AggregateSalesBySubCategoryMonth agrupa por (mês, subcategoria) gerando uma
// série por subcategoria, todas sobre o mesmo eixo de meses
func AggregateSalesBySubCategoryMonth(records []domain.SalesRecord) []domain.SubCategorySeries {
	if len(records) == 0 {
		return []domain.SubCategorySeries{}
	}

	order := make([]string, 0)
	totals := make(map[string]map[time.Time]decimal.Decimal)

	for _, record := range records {
		byMonth, exists := totals[record.SubCategory]
		if !exists {
			byMonth = make(map[time.Time]decimal.Decimal)
			totals[record.SubCategory] = byMonth
			order = append(order, record.SubCategory)
		}

		month := utils.FirstDayOfMonth(record.OrderDate)
		byMonth[month] = byMonth[month].Add(record.Sales)
	}

	months := monthAxis(records)
	series := make([]domain.SubCategorySeries, 0, len(order))
	for _, subCategory := range order {
		points := make([]domain.MonthlySales, 0, len(months))
		for _, month := range months {
			points = append(points, domain.NewMonthlySales(month, totalOrZero(totals[subCategory], month)))
		}

		series = append(series, domain.SubCategorySeries{
			SubCategory: subCategory,
			Points:      points,
		})
	}

	return series
}

// monthAxis compara os meses já truncados, e não os instantes: datas com
// offsets diferentes perto da virada do mês caem no mês em que foram escritas
func monthAxis(records []domain.SalesRecord) []time.Time {
	first := utils.FirstDayOfMonth(records[0].OrderDate)
	last := first
	for _, record := range records[1:] {
		month := utils.FirstDayOfMonth(record.OrderDate)
		if month.Before(first) {
			first = month
		}
		if month.After(last) {
			last = month
		}
	}

	return utils.MonthRange(first, last)
}

func totalOrZero(totals map[time.Time]decimal.Decimal, month time.Time) decimal.Decimal {
	if total, ok := totals[month]; ok {
		return total
	}
	return decimal.Zero
}
