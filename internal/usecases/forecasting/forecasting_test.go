package forecasting

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

var start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testConfig() config.Forecast {
	return config.Forecast{
		DefaultDays: 30,
		MinDays:     7,
		MaxDays:     90,
		CacheSize:   8,
		CacheTTL:    time.Minute,
	}
}

func viewWithDays(n int) *domain.View {
	records := make([]domain.SaleRecord, 0, n*2)
	for i := 0; i < n; i++ {
		d := start.AddDate(0, 0, i)
		records = append(records,
			domain.SaleRecord{Date: d, Product: "Laptop", Region: "North", Sales: decimal.NewFromInt(int64(100 + i))},
			domain.SaleRecord{Date: d, Product: "Phone", Region: "South", Sales: decimal.NewFromInt(50)},
		)
	}
	end := start.AddDate(0, 0, n-1)
	return &domain.View{
		Records: records,
		Filters: domain.Filters{
			Products:  []string{"Laptop", "Phone"},
			Regions:   []string{"North", "South"},
			StartDate: &start,
			EndDate:   &end,
		},
	}
}

func TestService_ResolveHorizon(t *testing.T) {
	service := NewService(nil, testConfig())

	tests := []struct {
		name    string
		days    int
		want    int
		wantErr bool
	}{
		{name: "padrão", days: 0, want: 30},
		{name: "mínimo", days: 7, want: 7},
		{name: "máximo", days: 90, want: 90},
		{name: "abaixo do mínimo", days: 6, wantErr: true},
		{name: "acima do máximo", days: 91, wantErr: true},
		{name: "negativo", days: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ResolveHorizon(tt.days)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidHorizon)
				var horizonErr *HorizonError
				require.True(t, errors.As(err, &horizonErr))
				assert.Equal(t, tt.days, horizonErr.Days)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Forecast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer := mocks.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().Filter(gomock.Any(), gomock.Any()).Return(viewWithDays(21), nil).Times(2)

	service := NewService(analyzer, testConfig())

	result, err := service.Forecast(context.Background(), domain.Filters{}, 14)
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, 14, result.Horizon)
	require.Len(t, result.History, 21)
	require.Len(t, result.Points, 21+14)
	require.Len(t, result.Future, 14)
	assert.Equal(t, start.AddDate(0, 0, 21), result.Future[0].Date)
	assert.Equal(t, start.AddDate(0, 0, 34), result.Future[13].Date)

	for _, p := range result.Future {
		assert.Equal(t, utils.RoundWithTwoDecimalPlace(p.PredictedSales), p.PredictedSales)
		assert.LessOrEqual(t, p.Lower, p.PredictedSales)
		assert.GreaterOrEqual(t, p.Upper, p.PredictedSales)
	}

	// a série diária cresce 1 por dia: a previsão segue a tendência
	assert.InDelta(t, 150+21, result.Future[0].PredictedSales, 1.0)

	// mesma combinação de filtros e horizonte vem do cache
	cached, err := service.Forecast(context.Background(), domain.Filters{}, 14)
	require.NoError(t, err)
	assert.Same(t, result, cached)
}

func TestService_Forecast_HorizonteDefinePeriodos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer := mocks.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().Filter(gomock.Any(), gomock.Any()).Return(viewWithDays(5), nil).AnyTimes()

	service := NewService(analyzer, testConfig())

	for _, days := range []int{7, 30, 90} {
		result, err := service.Forecast(context.Background(), domain.Filters{}, days)
		require.NoError(t, err)
		assert.Len(t, result.Future, days)
	}

	result, err := service.Forecast(context.Background(), domain.Filters{}, 0)
	require.NoError(t, err)
	assert.Len(t, result.Future, 30)
}

func TestService_Forecast_DadosInsuficientes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name string
		view *domain.View
	}{
		{name: "view vazia", view: &domain.View{}},
		{name: "uma data", view: viewWithDays(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := mocks.NewMockAnalyzer(ctrl)
			analyzer.EXPECT().Filter(gomock.Any(), gomock.Any()).Return(tt.view, nil)

			_, err := NewService(analyzer, testConfig()).Forecast(context.Background(), domain.Filters{}, 30)
			assert.ErrorIs(t, err, ErrInsufficientData)
			assert.Equal(t, "Not enough data to perform forecasting. Please adjust your filters.", err.Error())
		})
	}
}

func TestService_Forecast_HorizonteInvalidoNaoConsultaDados(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer := mocks.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().Filter(gomock.Any(), gomock.Any()).Times(0)

	_, err := NewService(analyzer, testConfig()).Forecast(context.Background(), domain.Filters{}, 120)
	assert.ErrorIs(t, err, ErrInvalidHorizon)
}

func TestService_Forecast_ErroDoAnalisador(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer := mocks.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().Filter(gomock.Any(), gomock.Any()).Return(nil, errors.New("dataset indisponível"))

	_, err := NewService(analyzer, testConfig()).Forecast(context.Background(), domain.Filters{}, 30)
	assert.EqualError(t, err, "dataset indisponível")
}

func TestCache(t *testing.T) {
	now := start
	cache := NewCache(2, time.Minute)
	cache.now = func() time.Time { return now }

	a := &domain.Forecast{ID: "a"}
	b := &domain.Forecast{ID: "b"}
	c := &domain.Forecast{ID: "c"}

	cache.Set("a", a)
	now = now.Add(time.Second)
	cache.Set("b", b)

	got, ok := cache.Get("a")
	require.True(t, ok)
	assert.Same(t, a, got)

	// cheio: descarta a entrada mais antiga
	now = now.Add(time.Second)
	cache.Set("c", c)
	assert.Equal(t, 2, cache.Len())
	_, ok = cache.Get("a")
	assert.False(t, ok)

	// expira após o TTL
	now = now.Add(60 * time.Second)
	assert.Equal(t, 1, cache.Sweep())
	_, ok = cache.Get("b")
	assert.False(t, ok)
	_, ok = cache.Get("c")
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = cache.Get("c")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestWriteCSV(t *testing.T) {
	points := []domain.ForecastPoint{
		{Date: start, PredictedSales: 1234.5},
		{Date: start.AddDate(0, 0, 1), PredictedSales: 99.99},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, points))

	assert.Equal(t, "Date,Predicted Sales\n2024-01-01,1234.5\n2024-01-02,99.99\n", buf.String())
}

func TestWriteCSV_SemLinhas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Date,Predicted Sales\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	points := []domain.ForecastPoint{
		{Date: start, PredictedSales: 10.25},
		{Date: start.AddDate(0, 0, 1), PredictedSales: 11.5},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, points))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsxSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "Predicted Sales"}, rows[0])
	assert.Equal(t, []string{"2024-01-01", "10.25"}, rows[1])
	assert.Equal(t, []string{"2024-01-02", "11.5"}, rows[2])
}
