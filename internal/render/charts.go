// Package render desenha os gráficos e a página do dashboard
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrEmptyChart indica que não há pontos suficientes para desenhar o gráfico
var ErrEmptyChart = errors.New("render: sem dados para o gráfico")

// Format é o formato de saída da imagem
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat aceita "svg" (padrão quando vazio) e "png"
func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case "", FormatSVG:
		return FormatSVG, nil
	case FormatPNG:
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("render: formato inválido: %q", value)
	}
}

// ContentType retorna o mime type da imagem
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) provider() chart.RendererProvider {
	if f == FormatPNG {
		return chart.PNG
	}
	return chart.SVG
}

const (
	forecastColor = "2ca02c"
	dailyColor    = "1f77b4"
)

// Charts desenha os gráficos com dimensões fixas
type Charts struct {
	width  int
	height int
}

func NewCharts(width, height int) *Charts {
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 400
	}
	return &Charts{width: width, height: height}
}

// Daily desenha a linha de vendas diárias
func (c *Charts) Daily(w io.Writer, days []domain.DailyTotal, format Format) error {
	if len(days) == 0 {
		return ErrEmptyChart
	}

	times := make([]time.Time, len(days))
	values := make([]float64, len(days))
	for i, d := range days {
		times[i] = d.Date
		values[i] = d.Sales.InexactFloat64()
	}

	graph := c.timeChart("Daily Sales", "Sales")
	graph.Series = []chart.Series{
		timeSeries("Sales", times, values, lineStyle(dailyColor, nil)),
	}
	graph.YAxis.Range = paddedRange(values)

	return graph.Render(format.provider(), w)
}

// Products desenha o total de vendas por produto (barras)
func (c *Charts) Products(w io.Writer, groups []domain.GroupTotal, format Format) error {
	if len(groups) == 0 {
		return ErrEmptyChart
	}

	bars := make([]chart.Value, len(groups))
	values := make([]float64, len(groups))
	for i, g := range groups {
		values[i] = g.Sales.InexactFloat64()
		bars[i] = chart.Value{
			Label: g.Key,
			Value: values[i],
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex(palette[i%len(palette)]),
				StrokeColor: drawing.ColorFromHex(palette[i%len(palette)]),
			},
		}
	}

	graph := chart.BarChart{
		Title:      "Total Sales by Product",
		Width:      c.width,
		Height:     c.height,
		BarWidth:   barWidth(c.width, len(groups)),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis: chart.YAxis{
			Name:           "Sales",
			Range:          barRange(values),
			ValueFormatter: amountFormatter,
		},
		Bars: bars,
	}

	return graph.Render(format.provider(), w)
}

// Regions desenha a distribuição de vendas por região (pizza).
// Regiões com total não positivo ficam de fora.
func (c *Charts) Regions(w io.Writer, groups []domain.GroupTotal, format Format) error {
	values := make([]chart.Value, 0, len(groups))
	for i, g := range groups {
		v := g.Sales.InexactFloat64()
		if v <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: g.Key,
			Value: v,
			Style: chart.Style{FillColor: drawing.ColorFromHex(palette[i%len(palette)])},
		})
	}
	if len(values) == 0 {
		return ErrEmptyChart
	}

	graph := chart.PieChart{
		Title:  "Sales Distribution by Region",
		Width:  c.width,
		Height: c.height,
		Values: values,
	}

	return graph.Render(format.provider(), w)
}

// Forecast desenha a série prevista completa (ajuste sobre o histórico
// seguido dos dias futuros) em verde, com o intervalo de incerteza tracejado
func (c *Charts) Forecast(w io.Writer, forecast *domain.Forecast, format Format) error {
	graph, err := c.forecastChart(forecast)
	if err != nil {
		return err
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(format.provider(), w)
}

func (c *Charts) forecastChart(forecast *domain.Forecast) (chart.Chart, error) {
	if forecast == nil || len(forecast.Points) == 0 {
		return chart.Chart{}, ErrEmptyChart
	}

	points := forecast.Points
	times := make([]time.Time, len(points))
	yhat := make([]float64, len(points))
	lower := make([]float64, len(points))
	upper := make([]float64, len(points))
	for i, p := range points {
		times[i] = p.Date
		yhat[i] = p.PredictedSales
		lower[i] = p.Lower
		upper[i] = p.Upper
	}

	dashed := []float64{5.0, 5.0}
	graph := c.timeChart(fmt.Sprintf("Future Sales for the next %d days", forecast.Horizon), "Predicted Sales")
	graph.Series = []chart.Series{
		timeSeries("Lower", times, lower, lineStyle(forecastColor, dashed)),
		timeSeries("Upper", times, upper, lineStyle(forecastColor, dashed)),
		timeSeries("Predicted Sales", times, yhat, lineStyle(forecastColor, nil)),
	}
	graph.YAxis.Range = paddedRange(append(append(lower, upper...), yhat...))

	return graph, nil
}

func (c *Charts) timeChart(title, yName string) chart.Chart {
	return chart.Chart{
		Title:      title,
		Width:      c.width,
		Height:     c.height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:           yName,
			ValueFormatter: amountFormatter,
		},
	}
}

var palette = []string{"1f77b4", "ff7f0e", "2ca02c", "d62728", "9467bd", "8c564b", "e377c2", "7f7f7f", "bcbd22", "17becf"}

func lineStyle(hex string, dashArray []float64) chart.Style {
	return chart.Style{
		StrokeColor:     drawing.ColorFromHex(hex),
		StrokeWidth:     2,
		StrokeDashArray: dashArray,
		DotColor:        drawing.ColorFromHex(hex),
		DotWidth:        2,
	}
}

// timeSeries duplica um ponto único para que o eixo X tenha amplitude
func timeSeries(name string, times []time.Time, values []float64, style chart.Style) chart.TimeSeries {
	if len(times) == 1 {
		times = []time.Time{times[0].Add(-12 * time.Hour), times[0].Add(12 * time.Hour)}
		values = []float64{values[0], values[0]}
		style.DotWidth = 6
	}
	return chart.TimeSeries{Name: name, XValues: times, YValues: values, Style: style}
}

// paddedRange evita amplitude zero no eixo Y
func paddedRange(values []float64) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = math.Max(math.Abs(hi)*0.1, 1)
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

// barRange parte de zero e garante topo positivo
func barRange(values []float64) *chart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi * 1.1}
}

func barWidth(width, bars int) int {
	bw := width / (bars*2 + 1)
	return max(10, min(bw, 120))
}

func amountFormatter(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}
