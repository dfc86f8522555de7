package handler

import (
	"bytes"
	"net/http"

	"github.com/vfg2006/sales-dashboard/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard/internal/render"
	"github.com/vfg2006/sales-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/sales-dashboard/internal/usecases/forecasting"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard/pkg/log"
)

// Nomes aceitos em /v1/charts/:name
const (
	ChartDaily    = "daily"
	ChartProducts = "products"
	ChartRegions  = "regions"
	ChartForecast = "forecast"
)

// GetChart desenha um dos gráficos do dashboard como SVG ou PNG
func GetChart(analyzer analyzing.Analyzer, forecaster forecasting.Forecaster, charts *render.Charts) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := router.Param(r, "name")

		format, err := render.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		filters, ok := filtersFromRequest(w, r)
		if !ok {
			return
		}

		var buf bytes.Buffer

		switch name {
		case ChartDaily:
			days, err := analyzer.DailySales(r.Context(), filters)
			if err == nil {
				err = charts.Daily(&buf, days, format)
			}
			if err != nil {
				writeServiceError(w, r, err)
				return
			}

		case ChartProducts:
			groups, err := analyzer.SalesByProduct(r.Context(), filters)
			if err == nil {
				err = charts.Products(&buf, groups, format)
			}
			if err != nil {
				writeServiceError(w, r, err)
				return
			}

		case ChartRegions:
			groups, err := analyzer.SalesByRegion(r.Context(), filters)
			if err == nil {
				err = charts.Regions(&buf, groups, format)
			}
			if err != nil {
				writeServiceError(w, r, err)
				return
			}

		case ChartForecast:
			days, err := parseDays(r)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
			fc, err := forecaster.Forecast(r.Context(), filters, days)
			if err == nil {
				err = charts.Forecast(&buf, fc, format)
			}
			if err != nil {
				writeServiceError(w, r, err)
				return
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Gráfico inválido. Valores aceitos: daily, products, regions, forecast", nil)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Cache-Control", "no-store")
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("chart", name).Warn("erro ao enviar gráfico")
		}
	})
}
