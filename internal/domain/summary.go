package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary representa as métricas resumidas do dashboard
type Summary struct {
	TotalSales        decimal.Decimal `json:"total_sales"`
	AverageDailySales decimal.Decimal `json:"average_daily_sales"`
	Transactions      int             `json:"transactions"`
}

// GroupTotal é o total de vendas de um produto ou região
type GroupTotal struct {
	Key   string          `json:"key"`
	Sales decimal.Decimal `json:"sales"`
	Count int             `json:"count"`
}

// DailyTotal é o total de vendas de um dia
type DailyTotal struct {
	Date  time.Time       `json:"date"`
	Sales decimal.Decimal `json:"sales"`
}
