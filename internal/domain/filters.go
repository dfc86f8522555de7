package domain

import (
	"sort"
	"strings"
	"time"
)

// Filters define quais registros entram na view.
// Products ou Regions nil significam "todos"; uma lista vazia não seleciona nada.
// As datas são inclusivas.
type Filters struct {
	Products  []string   `json:"products"`
	Regions   []string   `json:"regions"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// Resolve preenche os campos ausentes com os valores padrão do dashboard
func (f Filters) Resolve(opts Options) Filters {
	resolved := Filters{
		Products:  f.Products,
		Regions:   f.Regions,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
	}

	if resolved.Products == nil {
		resolved.Products = append([]string{}, opts.Products...)
	}
	if resolved.Regions == nil {
		resolved.Regions = append([]string{}, opts.Regions...)
	}
	if resolved.StartDate == nil {
		start := opts.MinDate
		resolved.StartDate = &start
	}
	if resolved.EndDate == nil {
		end := opts.MaxDate
		resolved.EndDate = &end
	}

	return resolved
}

// Key gera uma chave canônica para os filtros, usada no cache de previsões
func (f Filters) Key() string {
	products := append([]string{}, f.Products...)
	regions := append([]string{}, f.Regions...)
	sort.Strings(products)
	sort.Strings(regions)

	var sb strings.Builder
	sb.WriteString("p=")
	if f.Products == nil {
		sb.WriteString("*")
	} else {
		sb.WriteString(strings.Join(products, "|"))
	}
	sb.WriteString(";r=")
	if f.Regions == nil {
		sb.WriteString("*")
	} else {
		sb.WriteString(strings.Join(regions, "|"))
	}
	sb.WriteString(";s=")
	if f.StartDate != nil {
		sb.WriteString(f.StartDate.Format(time.DateOnly))
	}
	sb.WriteString(";e=")
	if f.EndDate != nil {
		sb.WriteString(f.EndDate.Format(time.DateOnly))
	}

	return sb.String()
}
