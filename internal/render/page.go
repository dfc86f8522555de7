package render

import (
	"embed"
	"html/template"
	"io"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

//go:embed templates/*.html
var templates embed.FS

const (
	PageTitle    = "Interactive Sales Dashboard"
	PageSubtitle = "Analyse sales data by product, region, and time"
)

// DashboardData é o conteúdo de uma renderização da página
type DashboardData struct {
	Options domain.Options
	// Filters já resolvidos (padrões aplicados)
	Filters domain.Filters
	Summary domain.Summary

	Days    int
	MinDays int
	MaxDays int

	Forecast *domain.Forecast
	// Warning substitui o painel de previsões quando não há dados suficientes
	Warning string
}

// Page renderiza o dashboard em HTML
type Page struct {
	tmpl     *template.Template
	currency string
}

func NewPage(currencySymbol string) (*Page, error) {
	p := &Page{currency: currencySymbol}

	tmpl, err := template.New("dashboard.html").Funcs(template.FuncMap{
		"money":    p.money,
		"selected": slices.Contains[[]string, string],
		"date":     formatDate,
		"day":      formatDay,
		"amount":   formatAmount,
	}).ParseFS(templates, "templates/dashboard.html")
	if err != nil {
		return nil, err
	}
	p.tmpl = tmpl

	return p, nil
}

// Render escreve a página completa
func (p *Page) Render(w io.Writer, data DashboardData) error {
	return p.tmpl.Execute(w, pageView{
		DashboardData: data,
		Title:         PageTitle,
		Subtitle:      PageSubtitle,
		Query:         template.URL(FilterQuery(data.Filters, data.Options, data.Days).Encode()),
	})
}

type pageView struct {
	DashboardData
	Title    string
	Subtitle string
	// Query reaproveita os filtros nas URLs de gráficos e downloads
	Query template.URL
}

// FilterQuery codifica os filtros nos parâmetros aceitos pela API.
// Seleções vazias são marcadas com products_all=0 / regions_all=0.
func FilterQuery(filters domain.Filters, opts domain.Options, days int) url.Values {
	q := url.Values{}

	if filters.Products != nil && !sameItems(filters.Products, opts.Products) {
		if len(filters.Products) == 0 {
			q.Set("products_all", "0")
		}
		for _, product := range filters.Products {
			q.Add("product", product)
		}
	}
	if filters.Regions != nil && !sameItems(filters.Regions, opts.Regions) {
		if len(filters.Regions) == 0 {
			q.Set("regions_all", "0")
		}
		for _, region := range filters.Regions {
			q.Add("region", region)
		}
	}
	if filters.StartDate != nil && !filters.StartDate.Equal(opts.MinDate) {
		q.Set("start_date", filters.StartDate.Format(time.DateOnly))
	}
	if filters.EndDate != nil && !filters.EndDate.Equal(opts.MaxDate) {
		q.Set("end_date", filters.EndDate.Format(time.DateOnly))
	}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}

	return q
}

func sameItems(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for _, item := range a {
		if !slices.Contains(b, item) {
			return false
		}
	}
	return true
}

func (p *Page) money(value decimal.Decimal, places int) string {
	return utils.FormatCurrency(value, p.currency, int32(places))
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}

func formatDay(t time.Time) string {
	return t.Format(time.DateOnly)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
