// Package dataset carrega o arquivo de vendas para a memória
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

var (
	ErrMissingColumn = errors.New("coluna obrigatória ausente")
	ErrInvalidValue  = errors.New("valor inválido")
	ErrEmptyDataset  = errors.New("arquivo de vendas sem registros")
)

const byteOrderMark = "\ufeff"

type options struct {
	delimiter   rune
	dateLayouts []string
}

// Option configura a leitura do arquivo
type Option func(*options)

// WithDelimiter define o separador de colunas (padrão: vírgula)
func WithDelimiter(delimiter rune) Option {
	return func(o *options) {
		o.delimiter = delimiter
	}
}

// WithDateLayouts substitui os formatos aceitos para Order_Date
func WithDateLayouts(layouts ...string) Option {
	return func(o *options) {
		o.dateLayouts = layouts
	}
}

// Load lê o arquivo de vendas do disco e valida todas as linhas
func Load(path string, opts ...Option) (*domain.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o arquivo de vendas %s", path)
	}
	defer file.Close()

	dataset, err := Read(file, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao carregar o arquivo de vendas %s", path)
	}

	dataset.Source = path

	logrus.WithFields(logrus.Fields{
		"path":    path,
		"records": len(dataset.Records),
		"columns": len(dataset.Columns),
	}).Info("Arquivo de vendas carregado")

	return dataset, nil
}

// Read interpreta o conteúdo delimitado. A primeira linha deve ser o cabeçalho.
func Read(r io.Reader, opts ...Option) (*domain.Dataset, error) {
	cfg := &options{
		delimiter:   ',',
		dateLayouts: utils.DateLayouts,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	reader := csv.NewReader(r)
	reader.Comma = cfg.delimiter

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o cabeçalho")
	}

	columns := normalizeHeader(header)
	index, err := indexRequiredColumns(columns)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler o arquivo")
		}

		line, _ := reader.FieldPos(0)
		record, err := parseRecord(row, line, index, cfg)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	return &domain.Dataset{
		Columns:  columns,
		Records:  records,
		LoadedAt: time.Now(),
	}, nil
}

func normalizeHeader(header []string) []string {
	columns := make([]string, len(header))
	for i, column := range header {
		if i == 0 {
			column = strings.TrimPrefix(column, byteOrderMark)
		}
		columns[i] = strings.TrimSpace(column)
	}
	return columns
}

func indexRequiredColumns(columns []string) (map[string]int, error) {
	index := make(map[string]int, len(domain.RequiredColumns))
	for i, column := range columns {
		if _, exists := index[column]; !exists {
			index[column] = i
		}
	}

	missing := make([]string, 0)
	for _, required := range domain.RequiredColumns {
		if _, exists := index[required]; !exists {
			missing = append(missing, required)
		}
	}

	if len(missing) > 0 {
		return nil, errors.Wrapf(ErrMissingColumn, "colunas %s", strings.Join(missing, ", "))
	}

	return index, nil
}

func parseRecord(row []string, line int, index map[string]int, cfg *options) (domain.SalesRecord, error) {
	orderDate, err := utils.ParseDateWithLayouts(row[index[domain.ColumnOrderDate]], cfg.dateLayouts)
	if err != nil {
		return domain.SalesRecord{}, invalidValue(line, domain.ColumnOrderDate, err)
	}

	sales, err := utils.ParseCurrency(row[index[domain.ColumnSales]])
	if err != nil {
		return domain.SalesRecord{}, invalidValue(line, domain.ColumnSales, err)
	}

	profit, err := utils.ParseCurrency(row[index[domain.ColumnProfit]])
	if err != nil {
		return domain.SalesRecord{}, invalidValue(line, domain.ColumnProfit, err)
	}

	return domain.SalesRecord{
		Category:    row[index[domain.ColumnCategory]],
		SubCategory: row[index[domain.ColumnSubCategory]],
		OrderDate:   orderDate,
		Sales:       sales,
		Profit:      profit,
		Line:        line,
		Values:      row,
	}, nil
}

func invalidValue(line int, column string, cause error) error {
	return errors.Wrapf(ErrInvalidValue, "linha %d, coluna %s: %v", line, column, cause)
}
