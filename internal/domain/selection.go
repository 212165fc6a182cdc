package domain

// Selection representa a escolha do usuário: uma categoria obrigatória e,
// opcionalmente, um subconjunto de subcategorias dessa categoria
type Selection struct {
	Category      string   `json:"category"`
	SubCategories []string `json:"sub_categories"`
}

// HasSubCategoryFilter indica se o filtro de subcategorias está aplicado
func (s Selection) HasSubCategoryFilter() bool {
	return len(s.SubCategories) > 0
}

// IsSubCategorySelected verifica se a subcategoria faz parte da seleção
func (s Selection) IsSubCategorySelected(subCategory string) bool {
	for _, selected := range s.SubCategories {
		if selected == subCategory {
			return true
		}
	}
	return false
}
