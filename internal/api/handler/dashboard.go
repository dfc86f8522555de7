package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/render"
	"github.com/vfg2006/sales-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/sales-dashboard/internal/usecases/forecasting"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard/pkg/log"
)

// DashboardPage renderiza a página com Overview e Predictions para os filtros da query
func DashboardPage(analyzer analyzing.Analyzer, forecaster forecasting.Forecaster, page *render.Page, cfg config.Forecast) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := filtersFromRequest(w, r)
		if !ok {
			return
		}

		days, err := parseDays(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		days, err = forecaster.ResolveHorizon(days)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		opts, err := analyzer.Options(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		view, err := analyzer.Filter(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		data := render.DashboardData{
			Options: *opts,
			Filters: view.Filters,
			Summary: analyzing.Summarize(view),
			Days:    days,
			MinDays: cfg.MinDays,
			MaxDays: cfg.MaxDays,
		}

		fc, err := forecaster.Forecast(r.Context(), filters, days)
		switch {
		case errors.Is(err, forecasting.ErrInsufficientData):
			data.Warning = forecasting.ErrInsufficientData.Error()
		case err != nil:
			writeServiceError(w, r, err)
			return
		default:
			data.Forecast = fc
		}

		// renderiza em buffer para não enviar uma página pela metade
		var buf bytes.Buffer
		if err := page.Render(&buf, data); err != nil {
			logger.WithError(err).Error("erro ao renderizar dashboard")
			apiErrors.WriteError(w, apiErrors.ErrRender, "Erro ao renderizar a página", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := buf.WriteTo(w); err != nil {
			logger.WithError(err).Warn("erro ao enviar dashboard")
		}
	})
}
