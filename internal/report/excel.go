// Package report exporta as análises em uma planilha XLSX
package report

import (
	"errors"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/commerce-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

const (
	SheetSummary      = "Summary"
	SheetDailyRevenue = "DailyRevenue"
	SheetLowStock     = "LowStock"
	SheetTopCustomers = "TopCustomers"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const noDataMessage = "No purchase data available"

type Exporter interface {
	// Write gera a planilha e escreve no writer
	Write(w io.Writer) error

	// Save gera a planilha e grava no caminho informado
	Save(path string) error
}

type ExcelReport struct {
	analyzer analyzing.Analyzer
	ranking  ranking.RankingService
}

func NewExcelReport(analyzer analyzing.Analyzer, rankingService ranking.RankingService) Exporter {
	return &ExcelReport{
		analyzer: analyzer,
		ranking:  rankingService,
	}
}

func (r *ExcelReport) Write(w io.Writer) error {
	f, err := r.Build()
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

func (r *ExcelReport) Save(path string) error {
	f, err := r.Build()
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}

// Build monta as quatro abas. Sem compras, as abas de resumo e receita diária
// trazem apenas a indicação de ausência de dados.
func (r *ExcelReport) Build() (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		f.Close()
		return nil, err
	}
	for _, sheet := range []string{SheetDailyRevenue, SheetLowStock, SheetTopCustomers} {
		if _, err := f.NewSheet(sheet); err != nil {
			f.Close()
			return nil, err
		}
	}

	writers := []func(*excelize.File) error{
		r.writeSummary,
		r.writeDailyRevenue,
		r.writeLowStock,
		r.writeTopCustomers,
	}
	for _, write := range writers {
		if err := write(f); err != nil {
			f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)

	return f, nil
}

func (r *ExcelReport) writeSummary(f *excelize.File) error {
	summary, err := r.analyzer.FinancialSummary()
	if errors.Is(err, analyzing.ErrNoData) {
		return setRows(f, SheetSummary, [][]any{{"Metric", "Value"}, {noDataMessage}})
	}
	if err != nil {
		return err
	}

	return setRows(f, SheetSummary, [][]any{
		{"Metric", "Value"},
		{"Total Revenue", summary.TotalRevenue},
		{"Total COGS", summary.TotalCOGS},
		{"Gross Profit", summary.GrossProfit},
		{"Operating Expenses", summary.OperatingExpenses},
		{"Net Profit", summary.NetProfit},
		{"Total Sales Count", summary.TotalSalesCount},
		{"Tax Rate", summary.TaxRate},
		{"Estimated Tax Payable", summary.EstimatedTaxPayable},
	})
}

func (r *ExcelReport) writeDailyRevenue(f *excelize.File) error {
	report, err := r.analyzer.GrowthReport()
	if errors.Is(err, analyzing.ErrNoData) {
		return setRows(f, SheetDailyRevenue, [][]any{{"Date", "Revenue"}, {noDataMessage}})
	}
	if err != nil {
		return err
	}

	rows := [][]any{{"Date", "Revenue"}}
	for _, day := range report.Daily {
		rows = append(rows, []any{utils.FormatDay(day.Date), day.Revenue})
	}

	return setRows(f, SheetDailyRevenue, rows)
}

func (r *ExcelReport) writeLowStock(f *excelize.File) error {
	report := r.analyzer.RestockReport()

	rows := [][]any{{"Product ID", "Name", "Current Stock", "Sales (30 days)", "Avg Daily Sales", "Threshold", "Recommended Qty"}}
	for _, item := range report.Items {
		rows = append(rows, []any{
			item.ProductID,
			item.Name,
			item.CurrentStock,
			item.SalesInLast30Days,
			item.AvgDailySales,
			item.DynamicThreshold,
			item.RecommendationQty,
		})
	}
	if len(report.Items) == 0 {
		rows = append(rows, []any{report.Summary})
	}

	return setRows(f, SheetLowStock, rows)
}

func (r *ExcelReport) writeTopCustomers(f *excelize.File) error {
	top := r.ranking.GetCustomerRanking()

	rows := [][]any{{"Position", "Customer ID", "Name", "Total Spent"}}
	for _, item := range top.TopCustomers {
		rows = append(rows, []any{item.Position, item.CustomerID, item.Name, item.TotalSpent})
	}

	return setRows(f, SheetTopCustomers, rows)
}

func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
