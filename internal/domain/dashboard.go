package domain

// Dashboard reúne tudo o que é exibido para uma seleção. É recalculado a cada
// interação e nunca reaproveitado entre requisições.
type Dashboard struct {
	Title              string              `json:"title"`
	Selection          Selection           `json:"selection"`
	Categories         []string            `json:"categories"`
	SubCategories      []string            `json:"sub_categories"`
	Records            *RecordTable        `json:"records"`
	CategoryAggregates []CategoryAggregate `json:"category_aggregates"`
	MonthlySales       []MonthlySales      `json:"monthly_sales"`
	SubCategoryMonthly []SubCategorySeries `json:"sub_category_monthly"`
	Metrics            SalesMetrics        `json:"metrics"`
	Widgets            []MetricWidget      `json:"widgets"`
}
