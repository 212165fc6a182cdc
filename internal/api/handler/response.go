package handler

import (
	"net/http"
	"slices"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Parâmetros de query da seleção
const (
	queryCategory      = "category"
	querySubCategory   = "sub_category"
	querySubCategories = "sub_categories"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Warn("handler: erro ao escrever resposta")
	}
}

// subCategoriesFromQuery aceita sub_category repetido e listas separadas por vírgula
func subCategoriesFromQuery(r *http.Request) []string {
	query := r.URL.Query()
	raw := append(query[querySubCategory], query[querySubCategories]...)

	subCategories := make([]string, 0, len(raw))
	for _, value := range raw {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				subCategories = append(subCategories, part)
			}
		}
	}

	return subCategories
}

// selectionFromRequest resolve a seleção da query. Categoria desconhecida gera 404.
func selectionFromRequest(w http.ResponseWriter, r *http.Request, service dashboarding.Dashboarder) (domain.Selection, bool) {
	category := strings.TrimSpace(r.URL.Query().Get(queryCategory))

	if category != "" && !slices.Contains(service.ListCategories(), category) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Categoria não encontrada", map[string]string{
			"category": category,
		})
		return domain.Selection{}, false
	}

	return service.ResolveSelection(category, subCategoriesFromQuery(r)), true
}

// dashboardFromRequest resolve a seleção e recalcula o painel
func dashboardFromRequest(w http.ResponseWriter, r *http.Request, service dashboarding.Dashboarder) (*domain.Dashboard, bool) {
	selection, ok := selectionFromRequest(w, r, service)
	if !ok {
		return nil, false
	}

	return service.BuildDashboard(selection), true
}
