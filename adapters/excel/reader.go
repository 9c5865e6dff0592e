package excel

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"hypokit/internal"
	"hypokit/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader reads numeric samples from .xlsx, .csv and plain list files
type DataReader struct {
	filePath string
	fileType string // "xlsx", "csv" or "list"
	sheet    string
	log      *internal.Logger
}

// NewDataReader picks the file type from the extension. Anything that is not
// .xlsx or .csv is read as a plain list of numbers.
func NewDataReader(filePath string, config ReaderConfig) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "list"
	switch ext {
	case ".xlsx", ".xlsm":
		fileType = "xlsx"
	case ".csv":
		fileType = "csv"
	}
	logger := config.Logger
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DataReader{filePath: filePath, fileType: fileType, sheet: config.Sheet, log: logger}
}

// FileType returns "xlsx", "csv" or "list"
func (r *DataReader) FileType() string { return r.fileType }

// ReadData reads a tabular file into headers and rows. List files have the
// single header "value".
func (r *DataReader) ReadData() (*ExcelData, error) {
	r.log.Debug("[DataReader] reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound("sample file " + r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVData()
	case "xlsx":
		return r.readExcelData()
	default:
		return r.readListData()
	}
}

// ReadColumn returns the numbers in column. An empty column name selects the
// only column of a single-column file. Blank cells are skipped.
func (r *DataReader) ReadColumn(column string) ([]float64, error) {
	data, err := r.ReadData()
	if err != nil {
		return nil, err
	}
	return ColumnValues(data, column)
}

func (r *DataReader) readExcelData() (*ExcelData, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.InvalidInputf(err, "failed to open Excel file %s", r.filePath)
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.InvalidInput("Excel file has no sheets: " + r.filePath)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.InvalidInputf(err, "failed to read sheet %q", sheet)
	}
	r.log.Debug("[DataReader] sheet %s read in %.2fms (%d rows)", sheet, float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, errors.InvalidInput("Excel sheet must have a header row and at least one data row")
	}
	return r.processRows(rows)
}

func (r *DataReader) readCSVData() (*ExcelData, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.InvalidInputf(err, "failed to open CSV file %s", r.filePath)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.InvalidInputf(err, "failed to read CSV file %s", r.filePath)
	}
	r.log.Debug("[DataReader] CSV file read (%d rows)", len(rows))

	if len(rows) < 2 {
		return nil, errors.InvalidInput("CSV file must have a header row and at least one data row")
	}
	return r.processRows(rows)
}

func (r *DataReader) readListData() (*ExcelData, error) {
	content, err := os.ReadFile(r.filePath)
	if err != nil {
		return nil, errors.InvalidInputf(err, "failed to read list file %s", r.filePath)
	}
	data := &ExcelData{Headers: []string{listHeader}}
	for _, field := range splitList(string(content)) {
		data.Rows = append(data.Rows, RawRowData{listHeader: field})
	}
	if len(data.Rows) == 0 {
		return nil, errors.InvalidInput("list file has no values: " + r.filePath)
	}
	return data, nil
}

// processRows converts raw string rows into ExcelData format
func (r *DataReader) processRows(rows [][]string) (*ExcelData, error) {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]RawRowData, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rowData := make(RawRowData, len(headers))
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	r.log.Debug("[DataReader] %s file processed (%d columns, %d rows)", strings.ToUpper(r.fileType), len(headers), len(dataRows))
	return &ExcelData{Headers: headers, Rows: dataRows}, nil
}

const listHeader = "value"

// ColumnValues parses the numeric cells of column. An empty column selects
// the only column of single-column data.
func ColumnValues(data *ExcelData, column string) ([]float64, error) {
	var header string
	switch {
	case column == "" && len(data.Headers) == 1:
		header = data.Headers[0]
	case column == "":
		return nil, errors.InvalidInput("a column is required when the data has " + strconv.Itoa(len(data.Headers)) + " columns: " + strings.Join(data.Headers, ", "))
	default:
		h, ok := data.header(column)
		if !ok {
			return nil, errors.NotFound("column " + strconv.Quote(column))
		}
		header = h
	}

	values := make([]float64, 0, len(data.Rows))
	for i, row := range data.Rows {
		cell := row[header]
		if cell == "" {
			continue
		}
		v, err := parseNumber(cell)
		if err != nil {
			// +2 for the header row and one-based numbering
			return nil, errors.InvalidInputf(err, "row %d of column %q", i+2, header)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, errors.InvalidInput("column " + strconv.Quote(header) + " has no values")
	}
	return values, nil
}

// ParseList parses numbers separated by commas, semicolons or whitespace
func ParseList(s string) ([]float64, error) {
	fields := splitList(s)
	if len(fields) == 0 {
		return nil, errors.InvalidInput("no values given")
	}
	values := make([]float64, len(fields))
	for i, field := range fields {
		v, err := parseNumber(field)
		if err != nil {
			return nil, errors.InvalidInputf(err, "value %d", i+1)
		}
		values[i] = v
	}
	return values, nil
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.InvalidInput(strconv.Quote(s) + " is not a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.InvalidInput(strconv.Quote(s) + " is not a finite number")
	}
	return v, nil
}
