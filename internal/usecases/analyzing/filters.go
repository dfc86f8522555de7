package analyzing

import (
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

// ApplyFilters devolve a view com os registros que passam em todos os filtros:
// produto na lista E região na lista E data dentro do intervalo (inclusivo).
// Os filtros devem estar resolvidos (ver domain.Filters.Resolve).
func ApplyFilters(records []domain.SaleRecord, filters domain.Filters) *domain.View {
	products := toSet(filters.Products)
	regions := toSet(filters.Regions)

	out := make([]domain.SaleRecord, 0, len(records))
	for _, r := range records {
		if products != nil && !products[r.Product] {
			continue
		}
		if regions != nil && !regions[r.Region] {
			continue
		}
		if filters.StartDate != nil && r.Date.Before(*filters.StartDate) {
			continue
		}
		if filters.EndDate != nil && r.Date.After(*filters.EndDate) {
			continue
		}
		out = append(out, r)
	}

	return &domain.View{Records: out, Filters: filters}
}

// toSet devolve nil para "sem restrição" e um mapa (possivelmente vazio) caso contrário
func toSet(items []string) map[string]bool {
	if items == nil {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
