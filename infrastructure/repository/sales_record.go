// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"slices"

	"github.com/vfg2006/sales-dashboard/internal/domain"
)

// SalesRecordRepository dá acesso somente leitura ao conjunto de vendas carregado
type SalesRecordRepository interface {
	Columns() []string
	ListRecords() []domain.SalesRecord
	ListCategories() []string
	ListSubCategories(category string) []string
}

type salesRecordRepository struct {
	dataset       *domain.Dataset
	categories    []string
	subCategories map[string][]string
}

// NewSalesRecordRepository indexa as categorias e subcategorias na ordem em que aparecem no arquivo
func NewSalesRecordRepository(dataset *domain.Dataset) SalesRecordRepository {
	categories := make([]string, 0)
	subCategories := make(map[string][]string)

	for _, record := range dataset.Records {
		subs, exists := subCategories[record.Category]
		if !exists {
			categories = append(categories, record.Category)
		}

		if !slices.Contains(subs, record.SubCategory) {
			subCategories[record.Category] = append(subs, record.SubCategory)
		}
	}

	return &salesRecordRepository{
		dataset:       dataset,
		categories:    categories,
		subCategories: subCategories,
	}
}

func (r *salesRecordRepository) Columns() []string {
	return slices.Clone(r.dataset.Columns)
}

// ListRecords retorna os registros compartilhados. Quem chama não deve alterá-los.
func (r *salesRecordRepository) ListRecords() []domain.SalesRecord {
	return r.dataset.Records
}

func (r *salesRecordRepository) ListCategories() []string {
	return slices.Clone(r.categories)
}

func (r *salesRecordRepository) ListSubCategories(category string) []string {
	subs, exists := r.subCategories[category]
	if !exists {
		return []string{}
	}
	return slices.Clone(subs)
}
