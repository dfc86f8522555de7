package forecasting

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	CSVFilename  = "Predicted Sales.csv"
	XLSXFilename = "Predicted Sales.xlsx"

	CSVContentType  = "text/csv"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	xlsxSheet = "Predicted Sales"
)

var tableHeader = []string{"Date", "Predicted Sales"}

// WriteCSV escreve a tabela de previsão (Date, Predicted Sales)
func WriteCSV(w io.Writer, points []domain.ForecastPoint) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(tableHeader); err != nil {
		return err
	}
	for _, p := range points {
		record := []string{
			p.Date.Format(time.DateOnly),
			strconv.FormatFloat(p.PredictedSales, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteXLSX escreve a mesma tabela em uma planilha
func WriteXLSX(w io.Writer, points []domain.ForecastPoint) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return err
	}

	for i, header := range tableHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(xlsxSheet, cell, header); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(xlsxSheet, "A", "B", 18); err != nil {
		return err
	}

	for i, p := range points {
		row := i + 2
		if err := f.SetCellValue(xlsxSheet, fmt.Sprintf("A%d", row), p.Date.Format(time.DateOnly)); err != nil {
			return err
		}
		if err := f.SetCellValue(xlsxSheet, fmt.Sprintf("B%d", row), p.PredictedSales); err != nil {
			return err
		}
	}

	if len(points) > 0 {
		style, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(xlsxSheet, "B2", fmt.Sprintf("B%d", len(points)+1), style); err != nil {
			return err
		}
	}

	return f.Write(w)
}
