package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord representa uma linha do arquivo de vendas
type SaleRecord struct {
	Date    time.Time       `json:"date"`
	Product string          `json:"product"`
	Region  string          `json:"region"`
	Sales   decimal.Decimal `json:"sales"`
}

// Options são os valores disponíveis para os filtros do dashboard
type Options struct {
	Products []string  `json:"products"`
	Regions  []string  `json:"regions"`
	MinDate  time.Time `json:"min_date"`
	MaxDate  time.Time `json:"max_date"`
}

// Dataset é o snapshot imutável carregado uma única vez por processo.
// Os registros nunca são alterados; filtros geram uma nova View.
type Dataset struct {
	records []SaleRecord
	options Options
}

// NewDataset cria o snapshot a partir dos registros carregados
func NewDataset(records []SaleRecord) *Dataset {
	copied := make([]SaleRecord, len(records))
	copy(copied, records)

	ds := &Dataset{records: copied}
	ds.options = buildOptions(copied)
	return ds
}

// Len retorna a quantidade de registros do snapshot
func (d *Dataset) Len() int {
	return len(d.records)
}

// Record retorna o registro na posição i
func (d *Dataset) Record(i int) SaleRecord {
	return d.records[i]
}

// Records retorna uma cópia dos registros
func (d *Dataset) Records() []SaleRecord {
	out := make([]SaleRecord, len(d.records))
	copy(out, d.records)
	return out
}

// Options retorna os produtos, regiões e intervalo de datas do snapshot
func (d *Dataset) Options() Options {
	return Options{
		Products: append([]string(nil), d.options.Products...),
		Regions:  append([]string(nil), d.options.Regions...),
		MinDate:  d.options.MinDate,
		MaxDate:  d.options.MaxDate,
	}
}

// buildOptions mantém a ordem da primeira ocorrência de cada produto e região
func buildOptions(records []SaleRecord) Options {
	opts := Options{
		Products: make([]string, 0),
		Regions:  make([]string, 0),
	}

	seenProducts := make(map[string]bool)
	seenRegions := make(map[string]bool)

	for i, r := range records {
		if !seenProducts[r.Product] {
			seenProducts[r.Product] = true
			opts.Products = append(opts.Products, r.Product)
		}
		if !seenRegions[r.Region] {
			seenRegions[r.Region] = true
			opts.Regions = append(opts.Regions, r.Region)
		}

		if i == 0 || r.Date.Before(opts.MinDate) {
			opts.MinDate = r.Date
		}
		if i == 0 || r.Date.After(opts.MaxDate) {
			opts.MaxDate = r.Date
		}
	}

	return opts
}

// View é um subconjunto derivado do snapshot
type View struct {
	Records []SaleRecord
	Filters Filters
}

// Len retorna a quantidade de registros da view
func (v *View) Len() int {
	if v == nil {
		return 0
	}
	return len(v.Records)
}

// DistinctDates retorna a quantidade de datas distintas na view
func (v *View) DistinctDates() int {
	if v == nil {
		return 0
	}
	seen := make(map[time.Time]struct{}, len(v.Records))
	for _, r := range v.Records {
		seen[r.Date] = struct{}{}
	}
	return len(seen)
}
