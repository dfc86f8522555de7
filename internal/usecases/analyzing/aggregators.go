package analyzing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

// Summarize calcula total de vendas, média diária e número de transações
func Summarize(view *domain.View) domain.Summary {
	summary := domain.Summary{
		TotalSales:        decimal.Zero,
		AverageDailySales: decimal.Zero,
		Transactions:      view.Len(),
	}
	if view.Len() == 0 {
		return summary
	}

	for _, r := range view.Records {
		summary.TotalSales = summary.TotalSales.Add(r.Sales)
	}

	// Média dos totais por data (somente datas presentes na view)
	days := DailySales(view)
	summary.AverageDailySales = summary.TotalSales.Div(decimal.NewFromInt(int64(len(days))))

	return summary
}

// DailySales agrupa por data e soma as vendas, em ordem cronológica
func DailySales(view *domain.View) []domain.DailyTotal {
	totals := make(map[time.Time]decimal.Decimal)
	for _, r := range view.Records {
		if current, ok := totals[r.Date]; ok {
			totals[r.Date] = current.Add(r.Sales)
		} else {
			totals[r.Date] = r.Sales
		}
	}

	days := make([]domain.DailyTotal, 0, len(totals))
	for date, sales := range totals {
		days = append(days, domain.DailyTotal{Date: date, Sales: sales})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return days
}

// SalesByProduct soma as vendas por produto, em ordem alfabética
func SalesByProduct(view *domain.View) []domain.GroupTotal {
	return groupBy(view, func(r domain.SaleRecord) string { return r.Product })
}

// SalesByRegion soma as vendas por região, em ordem alfabética
func SalesByRegion(view *domain.View) []domain.GroupTotal {
	return groupBy(view, func(r domain.SaleRecord) string { return r.Region })
}

func groupBy(view *domain.View, key func(domain.SaleRecord) string) []domain.GroupTotal {
	index := make(map[string]int)
	groups := make([]domain.GroupTotal, 0)

	for _, r := range view.Records {
		k := key(r)
		i, ok := index[k]
		if !ok {
			index[k] = len(groups)
			groups = append(groups, domain.GroupTotal{Key: k, Sales: r.Sales, Count: 1})
			continue
		}
		groups[i].Sales = groups[i].Sales.Add(r.Sales)
		groups[i].Count++
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})

	return groups
}
