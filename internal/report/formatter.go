package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/dsa-reconciliation/internal/domain"
	"github.com/xuri/excelize/v2"
)

// OutputFormatter defines the interface for formatting report bundles
type OutputFormatter interface {
	Format(b Bundle) ([]byte, error)
	FileExtension() string
}

// NewFormatter returns the formatter registered under name
func NewFormatter(name string, prettyPrint bool, sheet string) (OutputFormatter, error) {
	switch name {
	case "json":
		return NewJSONFormatter(prettyPrint), nil
	case "csv":
		return NewCSVFormatter(sheet), nil
	case "xlsx":
		return NewXLSXFormatter(), nil
	}
	return nil, fmt.Errorf("unsupported output format: %s", name)
}

type jsonSheet struct {
	Name    string     `json:"name"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type jsonBundle struct {
	RunID  string      `json:"run_id"`
	Report string      `json:"report"`
	Stats  any         `json:"stats,omitempty"`
	Sheets []jsonSheet `json:"sheets"`
}

// JSONFormatter formats report bundles as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(b Bundle) ([]byte, error) {
	out := jsonBundle{
		RunID:  b.RunID,
		Report: b.Report,
		Stats:  b.Stats,
		Sheets: make([]jsonSheet, 0, len(b.Sheets)),
	}
	for _, s := range b.Sheets {
		rows := s.Rows
		if rows == nil {
			rows = make([][]string, 0)
		}
		out.Sheets = append(out.Sheets, jsonSheet{Name: s.Name, Columns: s.Columns, Rows: rows})
	}

	if f.PrettyPrint {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}

// CSVFormatter writes one table of a bundle as CSV with its header verbatim
type CSVFormatter struct {
	Sheet string // first sheet when empty
}

func NewCSVFormatter(sheet string) *CSVFormatter {
	return &CSVFormatter{
		Sheet: sheet,
	}
}

// Format implements the OutputFormatter interface for CSV
func (f *CSVFormatter) Format(b Bundle) ([]byte, error) {
	t, err := f.pick(b)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, fmt.Errorf("writing rows: %w", err)
	}

	return buf.Bytes(), nil
}

func (f *CSVFormatter) pick(b Bundle) (domain.Table, error) {
	if f.Sheet == "" {
		if len(b.Sheets) == 0 {
			return domain.Table{}, fmt.Errorf("report %s has no tables", b.Report)
		}
		return b.Sheets[0], nil
	}

	t, ok := b.Sheet(f.Sheet)
	if !ok {
		return domain.Table{}, fmt.Errorf("report %s has no table %s", b.Report, f.Sheet)
	}
	return t, nil
}

func (f *CSVFormatter) FileExtension() string {
	return "csv"
}

// XLSXFormatter writes every table of a bundle to its own worksheet
type XLSXFormatter struct{}

func NewXLSXFormatter() *XLSXFormatter {
	return &XLSXFormatter{}
}

// Format implements the OutputFormatter interface for XLSX
func (f *XLSXFormatter) Format(b Bundle) ([]byte, error) {
	if len(b.Sheets) == 0 {
		return nil, fmt.Errorf("report %s has no tables", b.Report)
	}

	wb := excelize.NewFile()
	defer wb.Close()

	for i, s := range b.Sheets {
		if i == 0 {
			if err := wb.SetSheetName(wb.GetSheetName(0), s.Name); err != nil {
				return nil, fmt.Errorf("naming sheet %s: %w", s.Name, err)
			}
		} else if _, err := wb.NewSheet(s.Name); err != nil {
			return nil, fmt.Errorf("creating sheet %s: %w", s.Name, err)
		}

		if err := writeSheet(wb, s); err != nil {
			return nil, err
		}
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(wb *excelize.File, t domain.Table) error {
	rows := append([][]string{t.Columns}, t.Rows...)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		values := make([]interface{}, len(row))
		for j, v := range row {
			if i == 0 || j >= len(t.Columns) {
				values[j] = v
				continue
			}
			values[j] = cellValue(t.Columns[j], v)
		}
		if err := wb.SetSheetRow(t.Name, cell, &values); err != nil {
			return fmt.Errorf("writing sheet %s row %d: %w", t.Name, i+1, err)
		}
	}

	return nil
}

// cellValue writes counts, amounts and rates as numbers. Identifiers and labels
// stay text, and blank cells stay empty.
func cellValue(column, v string) interface{} {
	if v == "" {
		return nil
	}
	if !numericColumns[column] {
		return v
	}

	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n
	}
	if d, err := decimal.NewFromString(v); err == nil {
		return d.InexactFloat64()
	}
	return v
}

var numericColumns = map[string]bool{
	ColBoughtTicket:               true,
	ColDidScan:                    true,
	ColDeposited:                  true,
	ColCustomerCount:              true,
	ColDepositCount:               true,
	ColTicketCount:                true,
	ColScanCount:                  true,
	ColPaymentA:                   true,
	ColPayment:                    true,
	domain.ColTicketAmount:        true,
	domain.ColScanAmount:          true,
	domain.ColDepositCount:        true,
	"Customer_Count":              true,
	"Customers_who_deposited":     true,
	"Customers_who_bought_ticket": true,
	"Customers_who_did_scan":      true,
	"Total_Ticket_Amount":         true,
	"Total_Scan_Amount":           true,
	"Ticket_Conversion_Rate":      true,
	"Scan_Conversion_Rate":        true,
	"Deposit_Conversion_Rate":     true,
}

func (f *XLSXFormatter) FileExtension() string {
	return "xlsx"
}
