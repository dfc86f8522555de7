// Package dataset lê o arquivo de vendas usado pelo dashboard
package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

// Colunas obrigatórias do arquivo
const (
	ColumnDate    = "date"
	ColumnProduct = "product"
	ColumnRegion  = "region"
	ColumnSales   = "sales"
)

var ErrMissingColumn = errors.New("coluna obrigatória ausente")

// CSVSource carrega registros de vendas de um arquivo CSV local
type CSVSource struct {
	Path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

// Name identifica a fonte nos logs
func (s *CSVSource) Name() string {
	return "csv:" + s.Path
}

// Load abre o arquivo e converte todas as linhas em registros
func (s *CSVSource) Load(_ context.Context) ([]domain.SaleRecord, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir arquivo de vendas %s", s.Path)
	}
	defer file.Close()

	return ParseCSV(file)
}

// ParseCSV lê o cabeçalho (Date, Product, Region, Sales em qualquer ordem)
// e converte as linhas. Colunas extras são ignoradas.
func ParseCSV(r io.Reader) ([]domain.SaleRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.New("arquivo de vendas vazio")
		}
		return nil, errors.Wrap(err, "erro ao ler cabeçalho")
	}

	idx, err := columnIndexes(header)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SaleRecord, 0)
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d", line)
		}

		record, err := parseRow(row, idx)
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d", line)
		}
		records = append(records, record)
	}

	return records, nil
}

func columnIndexes(header []string) (map[string]int, error) {
	idx := make(map[string]int, 4)
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.Trim(h, "\uFEFF\"")))
		if _, exists := idx[name]; !exists {
			idx[name] = i
		}
	}

	for _, col := range []string{ColumnDate, ColumnProduct, ColumnRegion, ColumnSales} {
		if _, ok := idx[col]; !ok {
			return nil, errors.Wrap(ErrMissingColumn, col)
		}
	}

	return idx, nil
}

func parseRow(row []string, idx map[string]int) (domain.SaleRecord, error) {
	field := func(col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	date, err := utils.ParseFlexibleDate(field(ColumnDate))
	if err != nil {
		return domain.SaleRecord{}, err
	}

	sales, err := decimal.NewFromString(field(ColumnSales))
	if err != nil {
		return domain.SaleRecord{}, errors.Wrapf(err, "valor de vendas inválido: %q", field(ColumnSales))
	}

	return domain.SaleRecord{
		Date:    date,
		Product: field(ColumnProduct),
		Region:  field(ColumnRegion),
		Sales:   sales,
	}, nil
}
