// Package forecast implementa um modelo aditivo de séries temporais diárias:
// tendência linear + sazonalidade semanal + sazonalidade anual (séries de Fourier),
// ajustado por mínimos quadrados com regularização ridge nos termos sazonais.
package forecast

import (
	"errors"
	"math"
	"sort"
	"time"
)

const (
	day = 24 * time.Hour

	weeklyPeriod = 7.0
	yearlyPeriod = 365.25
)

var (
	// ErrInsufficientData indica menos de duas datas distintas no histórico
	ErrInsufficientData = errors.New("forecast: são necessárias pelo menos duas datas distintas")
	// ErrNotFitted indica uso do modelo antes de Fit
	ErrNotFitted = errors.New("forecast: modelo não ajustado")
)

// Seasonality controla se um componente sazonal entra no modelo
type Seasonality int

const (
	// SeasonalityAuto habilita o componente quando o histórico cobre o período mínimo
	SeasonalityAuto Seasonality = iota
	SeasonalityOn
	SeasonalityOff
)

// Options parametriza o ajuste do modelo
type Options struct {
	Weekly      Seasonality
	WeeklyOrder int
	// WeeklyMinSpan é o intervalo mínimo do histórico para a sazonalidade semanal automática
	WeeklyMinSpan time.Duration

	Yearly        Seasonality
	YearlyOrder   int
	YearlyMinSpan time.Duration

	// Ridge é a penalidade aplicada aos coeficientes sazonais
	Ridge float64
	// IntervalWidth é a cobertura do intervalo de incerteza (0.80 = 80%)
	IntervalWidth float64
}

// DefaultOptions retorna os parâmetros padrão do dashboard
func DefaultOptions() Options {
	return Options{
		Weekly:        SeasonalityAuto,
		WeeklyOrder:   3,
		WeeklyMinSpan: 14 * day,
		Yearly:        SeasonalityAuto,
		YearlyOrder:   10,
		YearlyMinSpan: 730 * day,
		Ridge:         1e-3,
		IntervalWidth: 0.80,
	}
}

// Point é uma observação diária
type Point struct {
	Date  time.Time
	Value float64
}

// Prediction é o valor previsto para uma data com seu intervalo e componentes
type Prediction struct {
	Date   time.Time
	Yhat   float64
	Lower  float64
	Upper  float64
	Trend  float64
	Weekly float64
	Yearly float64
}

// Model é o modelo aditivo ajustado
type Model struct {
	opts Options

	start    time.Time
	end      time.Time
	spanDays float64
	yScale   float64

	weeklyOrder int
	yearlyOrder int

	coeffs []float64
	sigma  float64
	z      float64
	fitted bool
}

// New cria um modelo com as opções informadas
func New(opts Options) *Model {
	return &Model{opts: opts}
}

// Fit ajusta o modelo ao histórico. Os pontos não precisam estar ordenados.
func (m *Model) Fit(points []Point) error {
	history := make([]Point, len(points))
	copy(history, points)
	for i := range history {
		history[i].Date = truncate(history[i].Date)
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.Before(history[j].Date)
	})

	if distinctDates(history) < 2 {
		return ErrInsufficientData
	}

	m.start = history[0].Date
	m.end = history[len(history)-1].Date
	span := m.end.Sub(m.start)
	m.spanDays = span.Hours() / 24

	m.weeklyOrder = resolveOrder(m.opts.Weekly, m.opts.WeeklyOrder, span, m.opts.WeeklyMinSpan)
	m.yearlyOrder = resolveOrder(m.opts.Yearly, m.opts.YearlyOrder, span, m.opts.YearlyMinSpan)

	m.yScale = 0
	for _, p := range history {
		m.yScale = math.Max(m.yScale, math.Abs(p.Value))
	}
	if m.yScale == 0 {
		m.yScale = 1
	}

	x := make([][]float64, len(history))
	y := make([]float64, len(history))
	for i, p := range history {
		x[i] = m.features(p.Date)
		y[i] = p.Value / m.yScale
	}

	coeffs, err := m.solve(x, y)
	if err != nil {
		return err
	}
	m.coeffs = coeffs

	// Desvio padrão dos resíduos na escala original
	var sse float64
	for i, row := range x {
		r := y[i] - dot(row, coeffs)
		sse += r * r
	}
	dof := len(history) - len(coeffs)
	if dof < 1 {
		dof = len(history)
	}
	m.sigma = math.Sqrt(sse/float64(dof)) * m.yScale
	m.z = ZScore(m.opts.IntervalWidth)
	m.fitted = true

	return nil
}

// FutureDates retorna os `periods` dias seguintes à última data do histórico
func (m *Model) FutureDates(periods int) []time.Time {
	dates := make([]time.Time, 0, max(periods, 0))
	for i := 1; i <= periods; i++ {
		dates = append(dates, m.end.AddDate(0, 0, i))
	}
	return dates
}

// LastDate retorna a última data do histórico ajustado
func (m *Model) LastDate() time.Time {
	return m.end
}

// Orders retorna as ordens de Fourier efetivas após o ajuste (0 = desligada)
func (m *Model) Orders() (weekly, yearly int) {
	return m.weeklyOrder, m.yearlyOrder
}

// Predict calcula a previsão para cada data informada
func (m *Model) Predict(dates []time.Time) ([]Prediction, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	out := make([]Prediction, len(dates))
	for i, d := range dates {
		d = truncate(d)
		row := m.features(d)

		trend := (m.coeffs[0] + m.coeffs[1]*row[1]) * m.yScale
		weekly := partial(row, m.coeffs, 2, 2+2*m.weeklyOrder) * m.yScale
		yearly := partial(row, m.coeffs, 2+2*m.weeklyOrder, len(row)) * m.yScale
		yhat := trend + weekly + yearly
		width := m.z * m.sigma

		out[i] = Prediction{
			Date:   d,
			Yhat:   yhat,
			Lower:  yhat - width,
			Upper:  yhat + width,
			Trend:  trend,
			Weekly: weekly,
			Yearly: yearly,
		}
	}

	return out, nil
}

// features monta a linha da matriz de projeto: [1, t, semanal..., anual...]
func (m *Model) features(d time.Time) []float64 {
	row := make([]float64, 0, 2+2*(m.weeklyOrder+m.yearlyOrder))
	row = append(row, 1, d.Sub(m.start).Hours()/24/m.spanDays)

	// Fase fixa em relação à época Unix para alinhar os dias da semana
	t := float64(d.Unix()) / 86400
	row = append(row, fourier(t, weeklyPeriod, m.weeklyOrder)...)
	row = append(row, fourier(t, yearlyPeriod, m.yearlyOrder)...)

	return row
}

// solve resolve as equações normais (XᵀX + λD)β = Xᵀy.
// Intercepto e tendência não são penalizados.
func (m *Model) solve(x [][]float64, y []float64) ([]float64, error) {
	p := len(x[0])
	a := make([][]float64, p)
	for i := range a {
		a[i] = make([]float64, p)
	}
	b := make([]float64, p)

	for r, row := range x {
		for i := 0; i < p; i++ {
			b[i] += row[i] * y[r]
			for j := i; j < p; j++ {
				a[i][j] += row[i] * row[j]
			}
		}
	}
	for i := 0; i < p; i++ {
		for j := 0; j < i; j++ {
			a[i][j] = a[j][i]
		}
		if i >= 2 {
			a[i][i] += m.opts.Ridge * float64(len(x))
		}
	}

	return Solve(a, b)
}

func resolveOrder(mode Seasonality, order int, span, minSpan time.Duration) int {
	switch mode {
	case SeasonalityOn:
		return order
	case SeasonalityOff:
		return 0
	default:
		if span >= minSpan {
			return order
		}
		return 0
	}
}

func fourier(t, period float64, order int) []float64 {
	terms := make([]float64, 0, 2*order)
	for k := 1; k <= order; k++ {
		angle := 2 * math.Pi * float64(k) * t / period
		terms = append(terms, math.Sin(angle), math.Cos(angle))
	}
	return terms
}

func partial(row, coeffs []float64, from, to int) float64 {
	var sum float64
	for i := from; i < to; i++ {
		sum += row[i] * coeffs[i]
	}
	return sum
}

func dot(a, b []float64) float64 {
	return partial(a, b, 0, len(a))
}

func distinctDates(points []Point) int {
	count := 0
	for i, p := range points {
		if i == 0 || !p.Date.Equal(points[i-1].Date) {
			count++
		}
	}
	return count
}

func truncate(t time.Time) time.Time {
	y, mo, d := t.UTC().Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
