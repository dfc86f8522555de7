package handler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/forecasting"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard/pkg/log"
)

// GetForecast retorna a previsão completa para os filtros e o horizonte da query
func GetForecast(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fc, ok := forecastFromRequest(w, r, service)
		if !ok {
			return
		}
		writeJSON(w, r, fc)
	})
}

// DownloadForecastCSV entrega a tabela de previsões como "Predicted Sales.csv"
func DownloadForecastCSV(service forecasting.Forecaster) http.Handler {
	return downloadForecast(service, forecasting.CSVFilename, forecasting.CSVContentType, forecasting.WriteCSV)
}

// DownloadForecastXLSX entrega a mesma tabela como planilha
func DownloadForecastXLSX(service forecasting.Forecaster) http.Handler {
	return downloadForecast(service, forecasting.XLSXFilename, forecasting.XLSXContentType, forecasting.WriteXLSX)
}

type tableWriter func(w io.Writer, points []domain.ForecastPoint) error

func downloadForecast(service forecasting.Forecaster, filename, contentType string, write tableWriter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fc, ok := forecastFromRequest(w, r, service)
		if !ok {
			return
		}

		var buf bytes.Buffer
		if err := write(&buf, fc.Future); err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("filename", filename).Error("erro ao gerar arquivo de previsão")
			apiErrors.WriteError(w, apiErrors.ErrRender, "Erro ao gerar arquivo de previsão", nil)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("erro ao enviar arquivo de previsão")
		}
	})
}

func forecastFromRequest(w http.ResponseWriter, r *http.Request, service forecasting.Forecaster) (*domain.Forecast, bool) {
	filters, ok := filtersFromRequest(w, r)
	if !ok {
		return nil, false
	}

	days, err := parseDays(r)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return nil, false
	}

	fc, err := service.Forecast(r.Context(), filters, days)
	if err != nil {
		writeServiceError(w, r, err)
		return nil, false
	}

	return fc, true
}
