package loading

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

// Source é a origem estática dos registros de vendas (arquivo CSV ou tabela)
type Source interface {
	Name() string
	Load(ctx context.Context) ([]domain.SaleRecord, error)
}

// LoadError indica que o snapshot não pôde ser carregado da origem
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("erro ao carregar dataset de %s: %s", e.Source, e.Err.Error())
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// DatasetProvider entrega o snapshot do dataset
type DatasetProvider interface {
	Dataset(ctx context.Context) (*domain.Dataset, error)
}

// Service carrega o dataset uma única vez por processo e devolve o mesmo
// snapshot em todas as chamadas. Uma falha de carga também é memorizada.
type Service struct {
	source   Source
	once     sync.Once
	dataset  *domain.Dataset
	err      error
	loadedAt time.Time
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// Dataset retorna o snapshot, carregando-o na primeira chamada
func (s *Service) Dataset(ctx context.Context) (*domain.Dataset, error) {
	s.once.Do(func() {
		s.dataset, s.err = s.load(ctx)
	})
	return s.dataset, s.err
}

// LoadedAt retorna o instante em que o snapshot foi carregado
func (s *Service) LoadedAt() time.Time {
	return s.loadedAt
}

func (s *Service) load(ctx context.Context) (*domain.Dataset, error) {
	start := time.Now()

	records, err := s.source.Load(ctx)
	if err != nil {
		logrus.WithError(err).WithField("dataset_source", s.source.Name()).Error("Erro ao carregar dataset de vendas")
		return nil, &LoadError{Source: s.source.Name(), Err: errors.WithStack(err)}
	}

	ds := domain.NewDataset(records)
	s.loadedAt = time.Now()

	opts := ds.Options()
	logrus.WithFields(logrus.Fields{
		"dataset_source":   s.source.Name(),
		"dataset_records":  ds.Len(),
		"dataset_products": len(opts.Products),
		"dataset_regions":  len(opts.Regions),
		"duration_ms":      time.Since(start).Milliseconds(),
	}).Info("Dataset de vendas carregado")

	return ds, nil
}
