package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard/infrastructure/export"
	"github.com/vfg2006/sales-dashboard/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboarding"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func DashboardPage(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: GetDashboardPage(service),
		},
	}
}

func Sales(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/categories",
			Method:  http.MethodGet,
			Handler: ListCategories(service),
		},
		{
			Path:    "/v1/categories/:category/sub-categories",
			Method:  http.MethodGet,
			Handler: ListSubCategories(service),
		},
		{
			Path:    "/v1/records",
			Method:  http.MethodGet,
			Handler: GetRecords(service),
		},
		{
			Path:    "/v1/aggregates/category",
			Method:  http.MethodGet,
			Handler: GetCategoryAggregates(service),
		},
		{
			Path:    "/v1/aggregates/monthly",
			Method:  http.MethodGet,
			Handler: GetMonthlySales(service),
		},
		{
			Path:    "/v1/aggregates/sub-category-monthly",
			Method:  http.MethodGet,
			Handler: GetSubCategoryMonthlySales(service),
		},
		{
			Path:    "/v1/metrics",
			Method:  http.MethodGet,
			Handler: GetMetrics(service),
		},
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func Charts(service dashboarding.Dashboarder, renderer ChartRenderer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/charts/:chart",
			Method:  http.MethodGet,
			Handler: GetChart(service, renderer),
		},
	}
}

func Export(service dashboarding.Dashboarder, exporter export.DashboardExporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/export",
			Method:  http.MethodGet,
			Handler: ExportDashboard(service, exporter),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
