package loading

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/loading/mocks"
	"go.uber.org/mock/gomock"
)

func sampleRecords() []domain.SaleRecord {
	return []domain.SaleRecord{
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Product: "Laptop", Region: "North", Sales: decimal.NewFromInt(100)},
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Product: "Phone", Region: "South", Sales: decimal.NewFromInt(50)},
	}
}

func TestService_DatasetCarregaUmaUnicaVez(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Name().Return("mock").AnyTimes()
	source.EXPECT().Load(gomock.Any()).Return(sampleRecords(), nil).Times(1)

	service := NewService(source)

	var wg sync.WaitGroup
	results := make([]*domain.Dataset, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ds, err := service.Dataset(context.Background())
			assert.NoError(t, err)
			results[i] = ds
		}(i)
	}
	wg.Wait()

	for _, ds := range results {
		assert.Same(t, results[0], ds)
	}

	opts := results[0].Options()
	assert.Equal(t, []string{"Laptop", "Phone"}, opts.Products)
	assert.Equal(t, []string{"North", "South"}, opts.Regions)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), opts.MinDate)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), opts.MaxDate)
	assert.False(t, service.LoadedAt().IsZero())
}

func TestService_DatasetMemorizaFalha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Name().Return("mock").AnyTimes()
	source.EXPECT().Load(gomock.Any()).Return(nil, errors.New("arquivo não encontrado")).Times(1)

	service := NewService(source)

	_, err := service.Dataset(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "arquivo não encontrado")

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "mock", loadErr.Source)

	_, err = service.Dataset(context.Background())
	assert.Error(t, err)
}
