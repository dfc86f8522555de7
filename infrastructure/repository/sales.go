package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

const defaultSalesTable = "sales"

// SalesRepository lê os registros de vendas de uma tabela com o mesmo
// formato do CSV (date, product, region, sales)
type SalesRepository interface {
	ListSales(ctx context.Context) ([]domain.SaleRecord, error)
}

type salesRepository struct {
	conn  postgres.Queryer
	table string
}

func NewSalesRepository(conn postgres.Queryer, table string) SalesRepository {
	if table == "" {
		table = defaultSalesTable
	}
	return &salesRepository{
		conn:  conn,
		table: table,
	}
}

// listSalesQuery monta a consulta de leitura completa da tabela
func listSalesQuery(table string) (string, []any, error) {
	return squirrel.
		Select("s.date", "s.product", "s.region", "s.sales").
		From(table + " s").
		OrderBy("s.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *salesRepository) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	query, args, err := listSalesQuery(r.table)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SaleRecord, 0)
	for rows.Next() {
		var (
			record domain.SaleRecord
			sales  string
		)
		if err := rows.Scan(&record.Date, &record.Product, &record.Region, &sales); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}

		record.Date = utils.TruncateDay(record.Date)
		record.Sales, err = decimal.NewFromString(sales)
		if err != nil {
			return nil, fmt.Errorf("valor de vendas inválido %q: %w", sales, err)
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// SalesSource adapta o repositório para a interface de fonte do carregador
type SalesSource struct {
	Repository SalesRepository
	Table      string
}

func (s *SalesSource) Name() string {
	return "postgres:" + s.Table
}

func (s *SalesSource) Load(ctx context.Context) ([]domain.SaleRecord, error) {
	return s.Repository.ListSales(ctx)
}
