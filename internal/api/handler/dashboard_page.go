package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/vfg2006/sales-dashboard/internal/charting"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard/pkg/log"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardTemplate = template.Must(
	template.New("dashboard.html").
		Funcs(template.FuncMap{"currency": domain.FormatCurrency}).
		ParseFS(templatesFS, "templates/dashboard.html"),
)

type chartView struct {
	Title   string
	URL     template.URL
	HasData bool
}

type dashboardPage struct {
	Dashboard *domain.Dashboard
	Charts    []chartView
	ExportURL template.URL
}

// GetDashboardPage monta a página HTML do painel. Uma categoria desconhecida
// volta para a categoria padrão em vez de gerar erro.
func GetDashboardPage(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		category := strings.TrimSpace(r.URL.Query().Get(queryCategory))
		if category != "" && !slices.Contains(service.ListCategories(), category) {
			log.ForContext(r.Context()).WithField("category", category).Warn("Categoria desconhecida, usando a padrão")
			category = ""
		}

		selection := service.ResolveSelection(category, subCategoriesFromQuery(r))
		dashboard := service.BuildDashboard(selection)

		var buf bytes.Buffer
		if err := dashboardTemplate.Execute(&buf, newDashboardPage(dashboard)); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao renderizar página do painel")
			apiErrors.WriteError(w, apiErrors.ErrRenderFailure, "Erro ao renderizar página", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar página do painel")
		}
	})
}

func newDashboardPage(dashboard *domain.Dashboard) dashboardPage {
	query := selectionQuery(dashboard.Selection)
	hasData := len(dashboard.CategoryAggregates) > 0

	titles := map[string]string{
		charting.ChartCategorySales:    "Sales by Category",
		charting.ChartMonthlySales:     "Sales by Month",
		charting.ChartSubCategorySales: "Sales by Sub-Category per Month",
	}

	charts := make([]chartView, 0, len(charting.Kinds()))
	for _, kind := range charting.Kinds() {
		charts = append(charts, chartView{
			Title:   titles[kind],
			URL:     template.URL("/v1/charts/" + kind + "?" + query),
			HasData: hasData,
		})
	}

	return dashboardPage{
		Dashboard: dashboard,
		Charts:    charts,
		ExportURL: template.URL("/v1/export?" + query),
	}
}

func selectionQuery(selection domain.Selection) string {
	values := url.Values{}
	values.Set(queryCategory, selection.Category)
	for _, sub := range selection.SubCategories {
		values.Add(querySubCategory, sub)
	}
	return values.Encode()
}
