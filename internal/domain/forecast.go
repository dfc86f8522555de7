package domain

import "time"

// ForecastPoint é uma linha da previsão de vendas
type ForecastPoint struct {
	Date           time.Time `json:"date"`
	PredictedSales float64   `json:"predicted_sales"`
	Lower          float64   `json:"lower"`
	Upper          float64   `json:"upper"`
}

// Forecast é o resultado do treino do modelo para um conjunto de filtros
type Forecast struct {
	ID        string          `json:"id"`
	Horizon   int             `json:"horizon"`
	History   []DailyTotal    `json:"history"`
	Points    []ForecastPoint `json:"points"`
	Future    []ForecastPoint `json:"future"`
	Filters   Filters         `json:"filters"`
	TrainedAt time.Time       `json:"trained_at"`
}
