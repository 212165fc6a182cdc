package handler

import (
	"net/http"
	"slices"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
)

func ListCategories(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"categories": service.ListCategories(),
		})
	})
}

func ListSubCategories(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		category := httprouter.ParamsFromContext(r.Context()).ByName("category")
		if !slices.Contains(service.ListCategories(), category) {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Categoria não encontrada", map[string]string{
				"category": category,
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"category":       category,
			"sub_categories": service.ListSubCategories(category),
		})
	})
}

func GetRecords(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dashboard, ok := dashboardFromRequest(w, r, service)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"selection": dashboard.Selection,
			"columns":   dashboard.Records.Columns,
			"rows":      dashboard.Records.Rows,
			"total":     len(dashboard.Records.Rows),
		})
	})
}

func GetCategoryAggregates(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dashboard, ok := dashboardFromRequest(w, r, service)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"selection": dashboard.Selection,
			"items":     dashboard.CategoryAggregates,
		})
	})
}

func GetMonthlySales(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dashboard, ok := dashboardFromRequest(w, r, service)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"selection": dashboard.Selection,
			"items":     dashboard.MonthlySales,
		})
	})
}

func GetSubCategoryMonthlySales(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dashboard, ok := dashboardFromRequest(w, r, service)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"selection": dashboard.Selection,
			"series":    dashboard.SubCategoryMonthly,
		})
	})
}

func GetMetrics(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dashboard, ok := dashboardFromRequest(w, r, service)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"selection": dashboard.Selection,
			"metrics":   dashboard.Metrics,
			"widgets":   dashboard.Widgets,
		})
	})
}

func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dashboard, ok := dashboardFromRequest(w, r, service)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, dashboard)
	})
}
