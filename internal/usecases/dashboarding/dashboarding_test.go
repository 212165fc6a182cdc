package dashboarding

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

func newRecord(category, subCategory, orderDate, sales, profit string) domain.SalesRecord {
	date, err := time.Parse(time.DateOnly, orderDate)
	if err != nil {
		panic(err)
	}

	return domain.SalesRecord{
		Category:    category,
		SubCategory: subCategory,
		OrderDate:   date,
		Sales:       decimal.RequireFromString(sales),
		Profit:      decimal.RequireFromString(profit),
		Values:      []string{category, subCategory, orderDate, sales, profit},
	}
}

func sampleRecords() []domain.SalesRecord {
	return []domain.SalesRecord{
		newRecord("Furniture", "Bookcases", "2016-11-08", "261.96", "41.9136"),
		newRecord("Furniture", "Chairs", "2016-11-08", "731.94", "219.582"),
		newRecord("Office Supplies", "Labels", "2016-06-12", "14.62", "6.8714"),
		newRecord("Furniture", "Tables", "2015-10-11", "957.5775", "-383.031"),
		newRecord("Office Supplies", "Storage", "2015-10-11", "22.368", "2.5164"),
		newRecord("Technology", "Phones", "2014-06-09", "907.152", "90.7152"),
		newRecord("Furniture", "Chairs", "2017-01-15", "48.86", "14.1694"),
	}
}

func sumSales(records []domain.SalesRecord) decimal.Decimal {
	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.Sales)
	}
	return total
}

func TestFilterRecords_ByCategory(t *testing.T) {
	records := sampleRecords()
	categories := []string{"Furniture", "Office Supplies", "Technology"}

	reconstructed := 0
	for _, category := range categories {
		filtered := FilterRecords(records, category, nil)
		for _, record := range filtered {
			assert.Equal(t, category, record.Category)
		}
		reconstructed += len(filtered)
	}

	assert.Equal(t, len(records), reconstructed, "a união das categorias deve reconstruir o conjunto")
}

func TestFilterRecords_BySubCategory(t *testing.T) {
	records := sampleRecords()

	byCategory := FilterRecords(records, "Furniture", nil)
	bySub := FilterRecords(records, "Furniture", []string{"Chairs", "Tables"})

	require.Len(t, bySub, 3)
	for _, record := range bySub {
		assert.Contains(t, []string{"Chairs", "Tables"}, record.SubCategory)
		assert.Contains(t, byCategory, record)
	}

	// Ordem original preservada
	assert.Equal(t, "731.94", bySub[0].Sales.String())
	assert.Equal(t, "957.5775", bySub[1].Sales.String())
	assert.Equal(t, "48.86", bySub[2].Sales.String())
}

func TestFilterRecords_EmptyResults(t *testing.T) {
	records := sampleRecords()

	assert.Empty(t, FilterRecords(records, "Toys", nil))
	assert.Empty(t, FilterRecords(records, "Furniture", []string{"Phones"}))
	assert.Len(t, records, 7, "o conjunto original não pode ser alterado")
}

func TestAggregateByCategory(t *testing.T) {
	records := sampleRecords()

	aggregates := AggregateByCategory(records)

	require.Len(t, aggregates, 3)
	assert.Equal(t, "Furniture", aggregates[0].Category)
	assert.Equal(t, "Office Supplies", aggregates[1].Category)
	assert.Equal(t, "Technology", aggregates[2].Category)

	for _, aggregate := range aggregates {
		raw := FilterRecords(records, aggregate.Category, nil)
		assert.True(t, sumSales(raw).Equal(aggregate.Sales), "vendas de %s", aggregate.Category)
		assert.Equal(t, len(raw), aggregate.Records)
	}

	assert.Equal(t, "2000.3375", aggregates[0].Sales.String())
	assert.Equal(t, "-107.366", aggregates[0].Profit.String())
}

func TestAggregateSalesByMonth(t *testing.T) {
	records := FilterRecords(sampleRecords(), "Furniture", nil)

	months := AggregateSalesByMonth(records)

	// De outubro/2015 a janeiro/2017: 16 meses, incluindo os meses sem venda
	require.Len(t, months, 16)
	assert.Equal(t, "2015-10", months[0].Period)
	assert.Equal(t, "957.5775", months[0].Sales.String())
	assert.True(t, months[1].Sales.IsZero())
	assert.Equal(t, "2016-11", months[13].Period)
	assert.Equal(t, "993.9", months[13].Sales.String())
	assert.Equal(t, "2017-01", months[15].Period)

	for i := 1; i < len(months); i++ {
		assert.True(t, months[i-1].Month.Before(months[i].Month), "meses fora de ordem")
	}

	total := decimal.Zero
	for _, month := range months {
		total = total.Add(month.Sales)
	}
	assert.True(t, sumSales(records).Equal(total), "a soma mensal deve preservar o total")
}

func TestAggregateSalesByMonth_MixedOffsets(t *testing.T) {
	// Como instante, a venda de fevereiro vem antes da de janeiro
	january, err := time.Parse(time.RFC3339, "2017-01-31T23:00:00-05:00")
	require.NoError(t, err)
	february, err := time.Parse(time.RFC3339, "2017-02-01T01:00:00+03:00")
	require.NoError(t, err)

	records := []domain.SalesRecord{
		{Category: "Furniture", SubCategory: "Chairs", OrderDate: january, Sales: decimal.NewFromInt(100)},
		{Category: "Furniture", SubCategory: "Tables", OrderDate: february, Sales: decimal.NewFromInt(50)},
	}

	months := AggregateSalesByMonth(records)

	require.Len(t, months, 2)
	assert.Equal(t, "2017-01", months[0].Period)
	assert.Equal(t, "100", months[0].Sales.String())
	assert.Equal(t, "2017-02", months[1].Period)
	assert.Equal(t, "50", months[1].Sales.String())

	series := AggregateSalesBySubCategoryMonth(records)
	require.Len(t, series, 2)
	total := decimal.Zero
	for _, s := range series {
		require.Len(t, s.Points, 2)
		for _, point := range s.Points {
			total = total.Add(point.Sales)
		}
	}
	assert.Equal(t, "150", total.String())
}

func TestAggregateSalesByMonth_Empty(t *testing.T) {
	assert.Empty(t, AggregateSalesByMonth(nil))
	assert.Empty(t, AggregateSalesBySubCategoryMonth(nil))
}

func TestAggregateSalesBySubCategoryMonth(t *testing.T) {
	records := FilterRecords(sampleRecords(), "Furniture", nil)

	series := AggregateSalesBySubCategoryMonth(records)

	require.Len(t, series, 3)
	assert.Equal(t, "Bookcases", series[0].SubCategory)
	assert.Equal(t, "Chairs", series[1].SubCategory)
	assert.Equal(t, "Tables", series[2].SubCategory)

	total := decimal.Zero
	for _, s := range series {
		assert.Len(t, s.Points, 16, "todas as séries usam o mesmo eixo de meses")
		total = total.Add(s.Total())
	}
	assert.True(t, sumSales(records).Equal(total))

	assert.Equal(t, "780.8", series[1].Total().String())
	assert.Equal(t, "48.86", series[1].Points[15].Sales.String())
	assert.True(t, series[1].Points[0].Sales.IsZero())
}

func TestCalculateSalesMetrics(t *testing.T) {
	tests := []struct {
		name            string
		filtered        []domain.SalesRecord
		all             []domain.SalesRecord
		expectedSales   string
		expectedProfit  string
		expectedMargin  string
		expectedOverall string
		expectedDelta   string
	}{
		{
			name: "Furniture com lucro e prejuízo",
			filtered: []domain.SalesRecord{
				newRecord("Furniture", "Chairs", "2017-01-01", "100", "20"),
				newRecord("Furniture", "Tables", "2017-01-02", "50", "-10"),
			},
			all: []domain.SalesRecord{
				newRecord("Furniture", "Chairs", "2017-01-01", "100", "20"),
				newRecord("Furniture", "Tables", "2017-01-02", "50", "-10"),
				newRecord("Technology", "Phones", "2017-01-03", "50", "30"),
			},
			expectedSales:   "150",
			expectedProfit:  "10",
			expectedMargin:  "6.67",
			expectedOverall: "20.00",
			expectedDelta:   "-13.33",
		},
		{
			name: "Seleção com vendas zeradas",
			filtered: []domain.SalesRecord{
				newRecord("Furniture", "Chairs", "2017-01-01", "0", "0"),
			},
			all: []domain.SalesRecord{
				newRecord("Furniture", "Chairs", "2017-01-01", "0", "0"),
				newRecord("Technology", "Phones", "2017-01-03", "200", "25"),
			},
			expectedSales:   "0",
			expectedProfit:  "0",
			expectedMargin:  "0.00",
			expectedOverall: "12.50",
			expectedDelta:   "-12.50",
		},
		{
			name:            "Seleção vazia",
			filtered:        []domain.SalesRecord{},
			all:             []domain.SalesRecord{},
			expectedSales:   "0",
			expectedProfit:  "0",
			expectedMargin:  "0.00",
			expectedOverall: "0.00",
			expectedDelta:   "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := CalculateSalesMetrics(tt.filtered, tt.all)

			assert.Equal(t, tt.expectedSales, metrics.TotalSales.String())
			assert.Equal(t, tt.expectedProfit, metrics.TotalProfit.String())
			assert.Equal(t, tt.expectedMargin, metrics.ProfitMargin.StringFixed(2))
			assert.Equal(t, tt.expectedOverall, metrics.OverallProfitMargin.StringFixed(2))
			assert.Equal(t, tt.expectedDelta, metrics.MarginDelta.StringFixed(2))
		})
	}
}

func TestCalculateSalesMetrics_ZeroSalesWidgets(t *testing.T) {
	filtered := []domain.SalesRecord{newRecord("Furniture", "Chairs", "2017-01-01", "0", "5")}
	all := append(filtered, newRecord("Technology", "Phones", "2017-01-03", "100", "10"))

	widgets := CalculateSalesMetrics(filtered, all).Widgets()

	assert.Equal(t, "0.00%", widgets[0].Value)
	assert.Equal(t, "-15.00%", widgets[0].Delta)
}
