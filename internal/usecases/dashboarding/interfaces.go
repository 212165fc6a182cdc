package dashboarding

import (
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

// Dashboarder define as operações do painel de vendas
type Dashboarder interface {
	// ListCategories retorna as categorias distintas, na ordem do arquivo
	ListCategories() []string

	// ListSubCategories retorna as subcategorias de uma categoria, na ordem do arquivo
	ListSubCategories(category string) []string

	// ResolveSelection normaliza a entrada do usuário para uma seleção válida
	ResolveSelection(category string, subCategories []string) domain.Selection

	// BuildDashboard executa filtro, agregações e métricas para a seleção
	BuildDashboard(selection domain.Selection) *domain.Dashboard
}
