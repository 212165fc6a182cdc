package dashboarding

import (
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

// Service implementa Dashboarder sobre o repositório de vendas em memória
type Service struct {
	title            string
	recordRepository repository.SalesRecordRepository
}

// NewService cria uma nova instância do serviço do painel
func NewService(cfg *config.Config, recordRepo repository.SalesRecordRepository) Dashboarder {
	return &Service{
		title:            cfg.Dashboard.Title,
		recordRepository: recordRepo,
	}
}

func (s *Service) ListCategories() []string {
	return s.recordRepository.ListCategories()
}

func (s *Service) ListSubCategories(category string) []string {
	return s.recordRepository.ListSubCategories(category)
}

// ResolveSelection usa a primeira categoria quando nenhuma é informada e
// descarta subcategorias que não pertencem à categoria escolhida
func (s *Service) ResolveSelection(category string, subCategories []string) domain.Selection {
	if category == "" {
		categories := s.recordRepository.ListCategories()
		if len(categories) > 0 {
			category = categories[0]
		}
	}

	options := s.recordRepository.ListSubCategories(category)
	selected := make([]string, 0, len(subCategories))
	for _, sub := range subCategories {
		if slices.Contains(options, sub) && !slices.Contains(selected, sub) {
			selected = append(selected, sub)
		}
	}

	if len(selected) < len(subCategories) {
		logrus.WithFields(logrus.Fields{
			"category":       category,
			"requested_subs": subCategories,
			"selected_subs":  selected,
		}).Debug("dashboard: subcategorias fora da categoria descartadas")
	}

	return domain.Selection{
		Category:      category,
		SubCategories: selected,
	}
}

// BuildDashboard recalcula tudo a partir do conjunto completo, sem reaproveitar resultados anteriores
func (s *Service) BuildDashboard(selection domain.Selection) *domain.Dashboard {
	all := s.recordRepository.ListRecords()
	filtered := FilterRecords(all, selection.Category, selection.SubCategories)
	metrics := CalculateSalesMetrics(filtered, all)

	logrus.WithFields(logrus.Fields{
		"category":         selection.Category,
		"sub_categories":   selection.SubCategories,
		"filtered_records": len(filtered),
		"total_records":    len(all),
	}).Debug("dashboard: painel recalculado")

	return &domain.Dashboard{
		Title:              s.title,
		Selection:          selection,
		Categories:         s.recordRepository.ListCategories(),
		SubCategories:      s.recordRepository.ListSubCategories(selection.Category),
		Records:            domain.NewRecordTable(s.recordRepository.Columns(), filtered),
		CategoryAggregates: AggregateByCategory(filtered),
		MonthlySales:       AggregateSalesByMonth(filtered),
		SubCategoryMonthly: AggregateSalesBySubCategoryMonth(filtered),
		Metrics:            metrics,
		Widgets:            metrics.Widgets(),
	}
}
