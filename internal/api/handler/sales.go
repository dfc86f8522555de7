package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard/pkg/log"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

// SummaryResponse traz as métricas e os valores já formatados para exibição
type SummaryResponse struct {
	domain.Summary
	Filters   domain.Filters    `json:"filters"`
	Formatted map[string]string `json:"formatted"`
}

// GetOptions retorna produtos, regiões e intervalo de datas do dataset
func GetOptions(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		opts, err := service.Options(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, opts)
	})
}

// GetSummary retorna Total Sales, Average Daily Sales e Number of Transactions
func GetSummary(service analyzing.Analyzer, currencySymbol string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, ok := filtersFromRequest(w, r)
		if !ok {
			return
		}

		view, err := service.Filter(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		summary := analyzing.Summarize(view)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"filter_key":     view.Filters.Key(),
			"filter_records": view.Len(),
		}).Debug("summary: métricas calculadas")

		writeJSON(w, r, SummaryResponse{
			Summary: summary,
			Filters: view.Filters,
			Formatted: map[string]string{
				"total_sales":         utils.FormatCurrency(summary.TotalSales, currencySymbol, 0),
				"average_daily_sales": utils.FormatCurrency(summary.AverageDailySales, currencySymbol, 2),
			},
		})
	})
}

// GetDailySales retorna a série diária de vendas
func GetDailySales(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, ok := filtersFromRequest(w, r)
		if !ok {
			return
		}
		days, err := service.DailySales(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, days)
	})
}

// GetSalesByProduct retorna o total por produto
func GetSalesByProduct(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, ok := filtersFromRequest(w, r)
		if !ok {
			return
		}
		groups, err := service.SalesByProduct(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, groups)
	})
}

// GetSalesByRegion retorna o total por região
func GetSalesByRegion(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, ok := filtersFromRequest(w, r)
		if !ok {
			return
		}
		groups, err := service.SalesByRegion(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, groups)
	})
}

func filtersFromRequest(w http.ResponseWriter, r *http.Request) (domain.Filters, bool) {
	filters, err := parseFilters(r)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return filters, false
	}
	return filters, true
}
