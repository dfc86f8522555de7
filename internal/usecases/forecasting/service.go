package forecasting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/sales-dashboard/pkg/forecast"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

type Forecaster interface {
	// ResolveHorizon aplica o padrão (0) e valida o intervalo de dias
	ResolveHorizon(days int) (int, error)

	// Forecast treina o modelo sobre a série diária filtrada e prevê `days` dias
	Forecast(ctx context.Context, filters domain.Filters, days int) (*domain.Forecast, error)

	// SweepCache remove previsões expiradas do cache
	SweepCache() int
}

type Service struct {
	analyzer analyzing.Analyzer
	cache    *Cache
	cfg      config.Forecast
	opts     forecast.Options
	now      func() time.Time
}

func NewService(analyzer analyzing.Analyzer, cfg config.Forecast) Forecaster {
	return &Service{
		analyzer: analyzer,
		cache:    NewCache(cfg.CacheSize, cfg.CacheTTL),
		cfg:      cfg,
		opts:     forecast.DefaultOptions(),
		now:      time.Now,
	}
}

func (s *Service) ResolveHorizon(days int) (int, error) {
	if days == 0 {
		return s.cfg.DefaultDays, nil
	}
	if days < s.cfg.MinDays || days > s.cfg.MaxDays {
		return 0, &HorizonError{Days: days, Min: s.cfg.MinDays, Max: s.cfg.MaxDays}
	}
	return days, nil
}

func (s *Service) Forecast(ctx context.Context, filters domain.Filters, days int) (*domain.Forecast, error) {
	days, err := s.ResolveHorizon(days)
	if err != nil {
		return nil, err
	}

	view, err := s.analyzer.Filter(ctx, filters)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s;h=%d", view.Filters.Key(), days)
	if cached, ok := s.cache.Get(key); ok {
		logrus.WithFields(logrus.Fields{
			"cache_key":   key,
			"forecast_id": cached.ID,
		}).Debug("Previsão encontrada no cache")
		return cached, nil
	}

	if view.DistinctDates() < 2 {
		return nil, ErrInsufficientData
	}

	start := time.Now()
	result, err := s.train(view, days)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, result)

	logrus.WithFields(logrus.Fields{
		"forecast_id":      result.ID,
		"forecast_horizon": days,
		"filter_key":       view.Filters.Key(),
		"history_days":     len(result.History),
		"duration_ms":      time.Since(start).Milliseconds(),
	}).Info("Modelo de previsão treinado")

	return result, nil
}

func (s *Service) SweepCache() int {
	return s.cache.Sweep()
}

func (s *Service) train(view *domain.View, days int) (*domain.Forecast, error) {
	history := analyzing.DailySales(view)

	points := make([]forecast.Point, len(history))
	dates := make([]time.Time, 0, len(history)+days)
	for i, d := range history {
		points[i] = forecast.Point{Date: d.Date, Value: d.Sales.InexactFloat64()}
		dates = append(dates, d.Date)
	}

	model := forecast.New(s.opts)
	if err := model.Fit(points); err != nil {
		if errors.Is(err, forecast.ErrInsufficientData) {
			return nil, ErrInsufficientData
		}
		return nil, fmt.Errorf("erro ao treinar modelo de previsão: %w", err)
	}

	dates = append(dates, model.FutureDates(days)...)
	predictions, err := model.Predict(dates)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular previsão: %w", err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da previsão: %w", err)
	}

	result := &domain.Forecast{
		ID:        id,
		Horizon:   days,
		History:   history,
		Points:    make([]domain.ForecastPoint, len(predictions)),
		Future:    make([]domain.ForecastPoint, 0, days),
		Filters:   view.Filters,
		TrainedAt: s.now(),
	}

	last := model.LastDate()
	for i, p := range predictions {
		point := domain.ForecastPoint{
			Date:           p.Date,
			PredictedSales: p.Yhat,
			Lower:          p.Lower,
			Upper:          p.Upper,
		}
		result.Points[i] = point

		// Tabela: somente datas futuras, valores com duas casas
		if p.Date.After(last) {
			result.Future = append(result.Future, domain.ForecastPoint{
				Date:           p.Date,
				PredictedSales: utils.RoundWithTwoDecimalPlace(p.Yhat),
				Lower:          utils.RoundWithTwoDecimalPlace(p.Lower),
				Upper:          utils.RoundWithTwoDecimalPlace(p.Upper),
			})
		}
	}

	return result, nil
}
