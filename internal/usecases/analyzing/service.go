package analyzing

import (
	"context"

	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/loading"
)

// Analyzer expõe as operações do painel Overview
type Analyzer interface {
	// Options retorna produtos, regiões e intervalo de datas disponíveis
	Options(ctx context.Context) (*domain.Options, error)

	// Filter resolve os filtros padrão e devolve a view derivada
	Filter(ctx context.Context, filters domain.Filters) (*domain.View, error)

	// Summary calcula as métricas resumidas para os filtros
	Summary(ctx context.Context, filters domain.Filters) (*domain.Summary, error)

	// DailySales retorna a série diária de vendas para os filtros
	DailySales(ctx context.Context, filters domain.Filters) ([]domain.DailyTotal, error)

	// SalesByProduct retorna o total por produto para os filtros
	SalesByProduct(ctx context.Context, filters domain.Filters) ([]domain.GroupTotal, error)

	// SalesByRegion retorna o total por região para os filtros
	SalesByRegion(ctx context.Context, filters domain.Filters) ([]domain.GroupTotal, error)
}

type Service struct {
	datasets loading.DatasetProvider
}

func NewService(datasets loading.DatasetProvider) Analyzer {
	return &Service{datasets: datasets}
}

func (s *Service) Options(ctx context.Context) (*domain.Options, error) {
	ds, err := s.datasets.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	opts := ds.Options()
	return &opts, nil
}

func (s *Service) Filter(ctx context.Context, filters domain.Filters) (*domain.View, error) {
	ds, err := s.datasets.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	resolved := filters.Resolve(ds.Options())
	return ApplyFilters(ds.Records(), resolved), nil
}

func (s *Service) Summary(ctx context.Context, filters domain.Filters) (*domain.Summary, error) {
	view, err := s.Filter(ctx, filters)
	if err != nil {
		return nil, err
	}
	summary := Summarize(view)
	return &summary, nil
}

func (s *Service) DailySales(ctx context.Context, filters domain.Filters) ([]domain.DailyTotal, error) {
	view, err := s.Filter(ctx, filters)
	if err != nil {
		return nil, err
	}
	return DailySales(view), nil
}

func (s *Service) SalesByProduct(ctx context.Context, filters domain.Filters) ([]domain.GroupTotal, error) {
	view, err := s.Filter(ctx, filters)
	if err != nil {
		return nil, err
	}
	return SalesByProduct(view), nil
}

func (s *Service) SalesByRegion(ctx context.Context, filters domain.Filters) ([]domain.GroupTotal, error) {
	view, err := s.Filter(ctx, filters)
	if err != nil {
		return nil, err
	}
	return SalesByRegion(view), nil
}
