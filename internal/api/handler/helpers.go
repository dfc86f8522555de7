package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/render"
	"github.com/vfg2006/sales-dashboard/internal/usecases/forecasting"
	"github.com/vfg2006/sales-dashboard/internal/usecases/loading"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard/pkg/log"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parseFilters lê product, region, start_date e end_date da query.
// Sem parâmetro o filtro fica nil (todos); products_all=0 / regions_all=0
// sem valores marcam uma seleção vazia.
func parseFilters(r *http.Request) (domain.Filters, error) {
	q := r.URL.Query()

	filters := domain.Filters{
		Products: selection(q["product"], q.Get("products_all")),
		Regions:  selection(q["region"], q.Get("regions_all")),
	}

	start, err := utils.ParseDate(q.Get("start_date"))
	if err != nil {
		return filters, errors.New("start_date inválida, use o formato AAAA-MM-DD")
	}
	end, err := utils.ParseDate(q.Get("end_date"))
	if err != nil {
		return filters, errors.New("end_date inválida, use o formato AAAA-MM-DD")
	}
	filters.StartDate = start
	filters.EndDate = end

	return filters, nil
}

func selection(values []string, all string) []string {
	items := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			items = append(items, v)
		}
	}
	if len(items) > 0 {
		return items
	}
	if all == "0" {
		return []string{}
	}
	return nil
}

// parseDays lê o horizonte de previsão; ausente retorna 0 (padrão)
func parseDays(r *http.Request) (int, error) {
	value := r.URL.Query().Get("days")
	if value == "" {
		return 0, nil
	}
	days, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.New("days deve ser um número inteiro")
	}
	return days, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao codificar resposta")
	}
}

// writeServiceError traduz erros dos casos de uso para o código de API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		apiErr  apiErrors.APIError
		loadErr *loading.LoadError
	)

	switch {
	case errors.Is(err, forecasting.ErrInsufficientData):
		apiErr = apiErrors.FromError(err, apiErrors.ErrInsufficientData)
	case errors.Is(err, forecasting.ErrInvalidHorizon):
		apiErr = apiErrors.FromError(err, apiErrors.ErrInvalidHorizon)
	case errors.Is(err, render.ErrEmptyChart):
		apiErr = apiErrors.FromError(err, apiErrors.ErrEmptyChart)
	case errors.As(err, &loadErr):
		apiErr = apiErrors.APIError{Code: apiErrors.ErrDatasetLoad, Message: "Dataset de vendas indisponível"}
	default:
		apiErr = apiErrors.APIError{Code: apiErrors.ErrInternalServer, Message: "Erro interno no servidor"}
	}

	logger := log.ForContext(r.Context()).WithError(err).WithField("path", r.URL.Path)
	if apiErrors.StatusFor(apiErr.Code) >= http.StatusInternalServerError {
		logger.Error("erro ao processar requisição")
	} else {
		logger.Warn("requisição recusada")
	}

	apiErr.Write(w)
}
