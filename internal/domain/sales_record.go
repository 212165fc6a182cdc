// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Colunas obrigatórias do arquivo de vendas
const (
	ColumnCategory    = "Category"
	ColumnSubCategory = "Sub_Category"
	ColumnOrderDate   = "Order_Date"
	ColumnSales       = "Sales"
	ColumnProfit      = "Profit"
)

// RequiredColumns lista as colunas que o arquivo de vendas precisa conter
var RequiredColumns = []string{
	ColumnCategory,
	ColumnSubCategory,
	ColumnOrderDate,
	ColumnSales,
	ColumnProfit,
}

// SalesRecord representa uma linha de venda carregada do arquivo. É imutável após a carga.
type SalesRecord struct {
	Category    string          `json:"category"`
	SubCategory string          `json:"sub_category"`
	OrderDate   time.Time       `json:"order_date"`
	Sales       decimal.Decimal `json:"sales"`
	Profit      decimal.Decimal `json:"profit"`
	Line        int             `json:"-"`
	Values      []string        `json:"-"` // Valores brutos na ordem de Dataset.Columns
}

// Dataset é o conjunto completo de vendas, compartilhado somente para leitura
type Dataset struct {
	Source   string
	Columns  []string
	Records  []SalesRecord
	LoadedAt time.Time
}

// RecordTable é a visão tabular (colunas originais) de um conjunto de vendas
type RecordTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// NewRecordTable monta a tabela bruta a partir dos registros filtrados
func NewRecordTable(columns []string, records []SalesRecord) *RecordTable {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, record.Values)
	}

	return &RecordTable{
		Columns: columns,
		Rows:    rows,
	}
}
