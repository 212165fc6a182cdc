package dashboarding

import (
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

// FilterRecords mantém os registros da categoria informada e, se houver
// subcategorias selecionadas, apenas os que pertencem a elas. A ordem original
// é preservada e o slice de entrada nunca é alterado.
func FilterRecords(records []domain.SalesRecord, category string, subCategories []string) []domain.SalesRecord {
	allowed := make(map[string]struct{}, len(subCategories))
	for _, sub := range subCategories {
		allowed[sub] = struct{}{}
	}

	filtered := make([]domain.SalesRecord, 0)
	for _, record := range records {
		if record.Category != category {
			continue
		}

		if len(allowed) > 0 {
			if _, ok := allowed[record.SubCategory]; !ok {
				continue
			}
		}

		filtered = append(filtered, record)
	}

	return filtered
}
