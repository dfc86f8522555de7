package analyzing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/loading/mocks"
	"go.uber.org/mock/gomock"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time {
	return &t
}

func sale(d int, product, region, amount string) domain.SaleRecord {
	return domain.SaleRecord{Date: day(d), Product: product, Region: region, Sales: decimal.RequireFromString(amount)}
}

func fixture() []domain.SaleRecord {
	return []domain.SaleRecord{
		sale(1, "Laptop", "North", "1000"),
		sale(1, "Phone", "South", "500.50"),
		sale(2, "Laptop", "South", "750"),
		sale(3, "Tablet", "East", "300.25"),
		sale(3, "Phone", "North", "450"),
		sale(5, "Laptop", "East", "1200"),
	}
}

func total(records []domain.SaleRecord) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(r.Sales)
	}
	return sum
}

func TestApplyFilters(t *testing.T) {
	records := fixture()

	tests := []struct {
		name    string
		filters domain.Filters
		want    int
	}{
		{name: "sem restrições", filters: domain.Filters{}, want: 6},
		{name: "um produto", filters: domain.Filters{Products: []string{"Laptop"}}, want: 3},
		{name: "produto e região", filters: domain.Filters{Products: []string{"Laptop", "Phone"}, Regions: []string{"North"}}, want: 2},
		{name: "lista vazia não seleciona nada", filters: domain.Filters{Products: []string{}}, want: 0},
		{name: "intervalo inclusivo", filters: domain.Filters{StartDate: datePtr(day(2)), EndDate: datePtr(day(3))}, want: 3},
		{name: "mesmo dia", filters: domain.Filters{StartDate: datePtr(day(1)), EndDate: datePtr(day(1))}, want: 2},
		{name: "intervalo invertido", filters: domain.Filters{StartDate: datePtr(day(5)), EndDate: datePtr(day(1))}, want: 0},
		{name: "produto inexistente", filters: domain.Filters{Products: []string{"Watch"}}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := ApplyFilters(records, tt.filters)
			assert.Equal(t, tt.want, view.Len())
		})
	}
}

func TestApplyFilters_Idempotente(t *testing.T) {
	filters := domain.Filters{
		Products:  []string{"Laptop", "Phone"},
		Regions:   []string{"North", "South"},
		StartDate: datePtr(day(1)),
		EndDate:   datePtr(day(3)),
	}

	once := ApplyFilters(fixture(), filters)
	twice := ApplyFilters(once.Records, filters)

	assert.Equal(t, once.Records, twice.Records)
}

func TestApplyFilters_Comutativo(t *testing.T) {
	byProduct := domain.Filters{Products: []string{"Laptop", "Tablet"}}
	byRegion := domain.Filters{Regions: []string{"East", "South"}}
	byDate := domain.Filters{StartDate: datePtr(day(2)), EndDate: datePtr(day(5))}

	orders := [][]domain.Filters{
		{byProduct, byRegion, byDate},
		{byProduct, byDate, byRegion},
		{byRegion, byProduct, byDate},
		{byRegion, byDate, byProduct},
		{byDate, byProduct, byRegion},
		{byDate, byRegion, byProduct},
	}

	var expected []domain.SaleRecord
	for i, order := range orders {
		records := fixture()
		for _, f := range order {
			records = ApplyFilters(records, f).Records
		}
		if i == 0 {
			expected = records
			continue
		}
		assert.Equal(t, expected, records)
	}

	combined := ApplyFilters(fixture(), domain.Filters{
		Products:  byProduct.Products,
		Regions:   byRegion.Regions,
		StartDate: byDate.StartDate,
		EndDate:   byDate.EndDate,
	})
	assert.Equal(t, expected, combined.Records)
	assert.Len(t, expected, 3)
}

func TestApplyFilters_ConservaSomas(t *testing.T) {
	all := fixture()
	filtered := ApplyFilters(all, domain.Filters{Regions: []string{"North"}})

	assert.True(t, total(filtered.Records).LessThanOrEqual(total(all)))
	assert.True(t, total(filtered.Records).Equal(decimal.RequireFromString("1450")))
}

func TestSummarize(t *testing.T) {
	view := &domain.View{Records: fixture()}
	summary := Summarize(view)

	assert.True(t, decimal.RequireFromString("4200.75").Equal(summary.TotalSales), summary.TotalSales.String())
	// 4 datas distintas: 4200.75 / 4
	assert.True(t, decimal.RequireFromString("1050.1875").Equal(summary.AverageDailySales), summary.AverageDailySales.String())
	assert.Equal(t, 6, summary.Transactions)
}

func TestSummarize_ViewVazia(t *testing.T) {
	summary := Summarize(&domain.View{})

	assert.True(t, summary.TotalSales.IsZero())
	assert.True(t, summary.AverageDailySales.IsZero())
	assert.Equal(t, 0, summary.Transactions)
}

func TestDailySales(t *testing.T) {
	days := DailySales(&domain.View{Records: fixture()})

	require.Len(t, days, 4)
	assert.Equal(t, day(1), days[0].Date)
	assert.True(t, decimal.RequireFromString("1500.50").Equal(days[0].Sales))
	assert.Equal(t, day(5), days[3].Date)

	sum := decimal.Zero
	for _, d := range days {
		sum = sum.Add(d.Sales)
	}
	assert.True(t, sum.Equal(total(fixture())))
}

func TestSalesByProduct_OrdemAlfabetica(t *testing.T) {
	view := &domain.View{Records: []domain.SaleRecord{
		sale(1, "Tablet", "West", "10"),
		sale(1, "Smartphone", "East", "20"),
		sale(2, "Laptop", "West", "30"),
		sale(2, "Headphones", "East", "40"),
		sale(3, "Tablet", "East", "5"),
	}}

	keys := func(groups []domain.GroupTotal) []string {
		out := make([]string, len(groups))
		for i, g := range groups {
			out[i] = g.Key
		}
		return out
	}

	assert.Equal(t, []string{"Headphones", "Laptop", "Smartphone", "Tablet"}, keys(SalesByProduct(view)))
	assert.Equal(t, []string{"East", "West"}, keys(SalesByRegion(view)))
}

func TestSalesByProductAndRegion(t *testing.T) {
	view := &domain.View{Records: fixture()}

	products := SalesByProduct(view)
	require.Len(t, products, 3)
	assert.Equal(t, "Laptop", products[0].Key)
	assert.True(t, decimal.RequireFromString("2950").Equal(products[0].Sales))
	assert.Equal(t, 3, products[0].Count)
	assert.Equal(t, "Phone", products[1].Key)
	assert.Equal(t, "Tablet", products[2].Key)

	regions := SalesByRegion(view)
	require.Len(t, regions, 3)
	assert.Equal(t, []string{"East", "North", "South"}, []string{regions[0].Key, regions[1].Key, regions[2].Key})
	assert.True(t, decimal.RequireFromString("1500.25").Equal(regions[0].Sales))

	sum := decimal.Zero
	for _, r := range regions {
		sum = sum.Add(r.Sales)
	}
	assert.True(t, sum.Equal(Summarize(view).TotalSales))
}

func TestService_FilterResolvePadroes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockDatasetProvider(ctrl)
	provider.EXPECT().Dataset(gomock.Any()).Return(domain.NewDataset(fixture()), nil).AnyTimes()

	service := NewService(provider)

	view, err := service.Filter(context.Background(), domain.Filters{})
	require.NoError(t, err)
	assert.Equal(t, 6, view.Len())
	assert.Equal(t, []string{"Laptop", "Phone", "Tablet"}, view.Filters.Products)
	assert.Equal(t, day(1), *view.Filters.StartDate)
	assert.Equal(t, day(5), *view.Filters.EndDate)

	summary, err := service.Summary(context.Background(), domain.Filters{Products: []string{"Tablet"}})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Transactions)

	opts, err := service.Options(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"North", "South", "East"}, opts.Regions)
}

func TestService_PropagaErroDoDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockDatasetProvider(ctrl)
	provider.EXPECT().Dataset(gomock.Any()).Return(nil, errors.New("falha de carga")).AnyTimes()

	service := NewService(provider)

	_, err := service.DailySales(context.Background(), domain.Filters{})
	assert.EqualError(t, err, "falha de carga")

	_, err = service.SalesByRegion(context.Background(), domain.Filters{})
	assert.Error(t, err)
}
