package export

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Nomes das planilhas geradas
const (
	SheetRecords     = "Records"
	SheetCategory    = "By Category"
	SheetMonthly     = "By Month"
	SheetSubCategory = "By Sub-Category"
	SheetMetrics     = "Metrics"
)

// ContentType do arquivo XLSX
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	numFmtMoney = 4 // #,##0.00
	headerColor = "#1F4E79"
)

// DashboardExporter grava um painel calculado em algum formato de arquivo
type DashboardExporter interface {
	WriteDashboard(w io.Writer, dashboard *domain.Dashboard) error
}

// XLSXExporter grava o painel como planilha Excel
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

type sheetWriter struct {
	file        *excelize.File
	headerStyle int
	moneyStyle  int
}

// WriteDashboard gera uma planilha por visão do painel e grava em w
func (e *XLSXExporter) WriteDashboard(w io.Writer, dashboard *domain.Dashboard) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithError(err).Warn("export: erro ao fechar planilha")
		}
	}()

	sw, err := newSheetWriter(f)
	if err != nil {
		return err
	}

	if err := f.SetSheetName("Sheet1", SheetRecords); err != nil {
		return errors.Wrap(err, "export: erro ao renomear planilha")
	}

	steps := []func(*domain.Dashboard) error{
		sw.writeRecords,
		sw.writeCategories,
		sw.writeMonthly,
		sw.writeSubCategories,
		sw.writeMetrics,
	}
	for _, step := range steps {
		if err := step(dashboard); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "export: erro ao gravar planilha")
	}

	logrus.WithFields(logrus.Fields{
		"category": dashboard.Selection.Category,
		"records":  recordCount(dashboard),
	}).Debug("export: planilha gerada")

	return nil
}

// FileName monta o nome do arquivo exportado para a seleção
func FileName(selection domain.Selection, now time.Time) string {
	return fmt.Sprintf("sales-%s-%s.xlsx", slug(selection.Category), now.Format("20060102-150405"))
}

func newSheetWriter(f *excelize.File) (*sheetWriter, error) {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "export: erro ao criar estilo do cabeçalho")
	}

	moneyStyle, err := f.NewStyle(&excelize.Style{
		NumFmt:    numFmtMoney,
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "export: erro ao criar estilo monetário")
	}

	return &sheetWriter{file: f, headerStyle: headerStyle, moneyStyle: moneyStyle}, nil
}

func (sw *sheetWriter) ensureSheet(name string) error {
	index, err := sw.file.GetSheetIndex(name)
	if err != nil {
		return errors.Wrapf(err, "export: erro ao buscar planilha %s", name)
	}
	if index >= 0 {
		return nil
	}
	if _, err := sw.file.NewSheet(name); err != nil {
		return errors.Wrapf(err, "export: erro ao criar planilha %s", name)
	}
	return nil
}

// writeRows grava o cabeçalho na linha 1 e os dados a partir da linha 2
func (sw *sheetWriter) writeRows(sheet string, header []string, rows [][]interface{}, moneyColumns ...int) error {
	if err := sw.ensureSheet(sheet); err != nil {
		return err
	}

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := sw.file.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return errors.Wrapf(err, "export: erro ao gravar cabeçalho de %s", sheet)
	}

	if len(header) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(header), 1)
		if err := sw.file.SetCellStyle(sheet, "A1", last, sw.headerStyle); err != nil {
			return errors.Wrap(err, "export: erro ao aplicar estilo")
		}
		lastCol, _ := excelize.ColumnNumberToName(len(header))
		if err := sw.file.SetColWidth(sheet, "A", lastCol, 18); err != nil {
			return errors.Wrap(err, "export: erro ao ajustar colunas")
		}
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := row
		if err := sw.file.SetSheetRow(sheet, cell, &values); err != nil {
			return errors.Wrapf(err, "export: erro ao gravar linha %d de %s", i+2, sheet)
		}
	}

	if len(rows) == 0 {
		return nil
	}
	for _, col := range moneyColumns {
		first, _ := excelize.CoordinatesToCellName(col, 2)
		last, _ := excelize.CoordinatesToCellName(col, len(rows)+1)
		if err := sw.file.SetCellStyle(sheet, first, last, sw.moneyStyle); err != nil {
			return errors.Wrap(err, "export: erro ao aplicar estilo monetário")
		}
	}

	return nil
}

func (sw *sheetWriter) writeRecords(dashboard *domain.Dashboard) error {
	if dashboard.Records == nil {
		return sw.writeRows(SheetRecords, domain.RequiredColumns, nil)
	}

	rows := make([][]interface{}, 0, len(dashboard.Records.Rows))
	for _, record := range dashboard.Records.Rows {
		row := make([]interface{}, len(record))
		for i, value := range record {
			row[i] = value
		}
		rows = append(rows, row)
	}

	return sw.writeRows(SheetRecords, dashboard.Records.Columns, rows)
}

func (sw *sheetWriter) writeCategories(dashboard *domain.Dashboard) error {
	rows := make([][]interface{}, 0, len(dashboard.CategoryAggregates))
	for _, aggregate := range dashboard.CategoryAggregates {
		rows = append(rows, []interface{}{
			aggregate.Category,
			aggregate.Sales.Round(2).InexactFloat64(),
			aggregate.Profit.Round(2).InexactFloat64(),
			aggregate.Records,
		})
	}

	return sw.writeRows(SheetCategory, []string{"Category", "Sales", "Profit", "Records"}, rows, 2, 3)
}

func (sw *sheetWriter) writeMonthly(dashboard *domain.Dashboard) error {
	rows := make([][]interface{}, 0, len(dashboard.MonthlySales))
	for _, month := range dashboard.MonthlySales {
		rows = append(rows, []interface{}{month.Period, month.Sales.Round(2).InexactFloat64()})
	}

	return sw.writeRows(SheetMonthly, []string{"Month", "Sales"}, rows, 2)
}

// writeSubCategories grava uma coluna por subcategoria, todas sobre o mesmo eixo de meses
func (sw *sheetWriter) writeSubCategories(dashboard *domain.Dashboard) error {
	header := []string{"Month"}
	for _, series := range dashboard.SubCategoryMonthly {
		header = append(header, series.SubCategory)
	}

	rows := make([][]interface{}, 0)
	if len(dashboard.SubCategoryMonthly) > 0 {
		for i, point := range dashboard.SubCategoryMonthly[0].Points {
			row := []interface{}{point.Period}
			for _, series := range dashboard.SubCategoryMonthly {
				row = append(row, series.Points[i].Sales.Round(2).InexactFloat64())
			}
			rows = append(rows, row)
		}
	}

	moneyColumns := make([]int, 0, len(header)-1)
	for col := 2; col <= len(header); col++ {
		moneyColumns = append(moneyColumns, col)
	}

	return sw.writeRows(SheetSubCategory, header, rows, moneyColumns...)
}

func (sw *sheetWriter) writeMetrics(dashboard *domain.Dashboard) error {
	metrics := dashboard.Metrics
	rows := [][]interface{}{
		{"Category", dashboard.Selection.Category},
		{"Sub-Categories", strings.Join(dashboard.Selection.SubCategories, ", ")},
		{"Total Sales", domain.FormatCurrency(metrics.TotalSales)},
		{"Total Profit", domain.FormatCurrency(metrics.TotalProfit)},
		{"Profit Margin (%)", domain.FormatPercent(metrics.ProfitMargin)},
		{"Overall Profit Margin (%)", domain.FormatPercent(metrics.OverallProfitMargin)},
		{"Margin Delta", domain.FormatDelta(metrics.MarginDelta)},
	}

	return sw.writeRows(SheetMetrics, []string{"Metric", "Value"}, rows)
}

func recordCount(dashboard *domain.Dashboard) int {
	if dashboard.Records == nil {
		return 0
	}
	return len(dashboard.Records.Rows)
}

func slug(s string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash && b.Len() > 0 {
			b.WriteByte('-')
			lastDash = true
		}
	}

	result := strings.TrimSuffix(b.String(), "-")
	if result == "" {
		return "all"
	}
	return result
}
