// =============================================================================
// Vendor Price-File Converter - CSV Parser Module
// =============================================================================
//
// This module is the CSV row source: it parses a vendor price file into a
// sequence of column->value mappings, one per data row, preserving the
// original string formatting of every cell. Nothing here coerces numbers or
// dates: leading zeros and currency symbols are semantically meaningful to
// the transform core and must survive parsing intact.
//
// FEATURES:
//   - Configurable delimiter (comma, pipe, tab, semicolon)
//   - Lazy quoting for the not-quite-CSV files some vendors export
//   - Empty-row skipping
//   - A streaming variant for large files
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retailops/pricefeed/internal/types"
)

// =============================================================================
// SETTINGS
// =============================================================================

// Settings contains options for parsing a vendor CSV file.
type Settings struct {
	// Delimiter is the field separator. Accepts literal characters plus the
	// aliases "tab", "pipe" and "semicolon". Default: ","
	Delimiter string

	// HeaderRow is the 1-indexed row containing the column headers.
	// Default: 1
	HeaderRow int
}

// DefaultSettings returns the settings used for standard vendor exports.
func DefaultSettings() Settings {
	return Settings{Delimiter: ",", HeaderRow: 1}
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV file and returns the parsed data.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: The parsing settings.
//
// RETURNS:
//   - The parsed file: headers in file order plus one RawRow per data row.
//   - An error if the file cannot be read or parsed.
func Parse(filePath string, settings Settings) (*types.FileData, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	data, err := ParseReader(file, settings)
	if err != nil {
		return nil, err
	}

	data.SourceFile = filePath
	return data, nil
}

// ParseReader parses CSV content from any reader. Used directly by tests and
// by Parse above.
func ParseReader(r io.Reader, settings Settings) (*types.FileData, error) {
	csvReader := csv.NewReader(bufio.NewReader(r))
	configureReader(csvReader, settings)

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(allRows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	headerIndex := settings.HeaderRow - 1
	if headerIndex < 0 {
		headerIndex = 0
	}
	if headerIndex >= len(allRows) {
		return nil, fmt.Errorf("file has fewer rows than header_row setting (%d)", settings.HeaderRow)
	}

	headers := cleanHeaders(allRows[headerIndex])
	rows := extractDataRows(allRows[headerIndex+1:], headers)

	return &types.FileData{
		Headers:  headers,
		Rows:     rows,
		RowCount: len(rows),
	}, nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings Settings) {
	switch settings.Delimiter {
	case "\\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(settings.Delimiter) > 0 {
			reader.Comma = rune(settings.Delimiter[0])
		} else {
			reader.Comma = ','
		}
	}

	// Vendor exports are inconsistent about trailing columns and quoting.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
}

// cleanHeaders trims header values and names any empty headers by position so
// row maps never collide on "".
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))

	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}

	return cleaned
}

// extractDataRows converts raw records to RawRow maps, skipping fully empty
// rows. Cell values keep their original formatting apart from surrounding
// whitespace.
func extractDataRows(records [][]string, headers []string) []types.RawRow {
	rows := make([]types.RawRow, 0, len(records))

	for _, record := range records {
		if isRowEmpty(record) {
			continue
		}

		row := make(types.RawRow, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = strings.TrimSpace(record[i])
			} else {
				row[header] = ""
			}
		}

		rows = append(rows, row)
	}

	return rows
}

// isRowEmpty checks if a record contains only empty values.
func isRowEmpty(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// =============================================================================
// STREAMING PARSER FOR LARGE FILES
// =============================================================================

// StreamingParser processes rows one at a time instead of loading the whole
// file.
//
// USAGE:
//   parser, err := NewStreamingParser(filePath, settings)
//   if err != nil {
//       return err
//   }
//   defer parser.Close()
//
//   for parser.Next() {
//       row := parser.Row()
//       // Process the row...
//   }
//
//   if err := parser.Err(); err != nil {
//       return err
//   }
type StreamingParser struct {
	file       *os.File
	reader     *csv.Reader
	headers    []string
	currentRow types.RawRow
	rowNumber  int
	err        error
}

// NewStreamingParser creates a streaming parser positioned at the first data
// row.
func NewStreamingParser(filePath string, settings Settings) (*StreamingParser, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	reader := csv.NewReader(bufio.NewReader(file))
	configureReader(reader, settings)

	parser := &StreamingParser{file: file, reader: reader}

	headerRow := settings.HeaderRow
	if headerRow < 1 {
		headerRow = 1
	}

	for i := 0; i < headerRow; i++ {
		record, err := reader.Read()
		if err == io.EOF {
			file.Close()
			return nil, fmt.Errorf("unexpected end of file while reading headers")
		}
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("error reading header row %d: %w", i+1, err)
		}
		parser.headers = cleanHeaders(record)
		parser.rowNumber++
	}

	return parser, nil
}

// Next advances to the next non-empty row. Returns false at end of input or
// on error.
func (p *StreamingParser) Next() bool {
	if p.err != nil {
		return false
	}

	record, err := p.reader.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		p.err = fmt.Errorf("error reading row %d: %w", p.rowNumber+1, err)
		return false
	}

	p.rowNumber++

	if isRowEmpty(record) {
		return p.Next()
	}

	p.currentRow = make(types.RawRow, len(p.headers))
	for i, header := range p.headers {
		if i < len(record) {
			p.currentRow[header] = strings.TrimSpace(record[i])
		} else {
			p.currentRow[header] = ""
		}
	}

	return true
}

// Row returns the current row.
func (p *StreamingParser) Row() types.RawRow {
	return p.currentRow
}

// Headers returns the parsed headers.
func (p *StreamingParser) Headers() []string {
	return p.headers
}

// RowNumber returns the current row number (1-indexed, counting the header).
func (p *StreamingParser) RowNumber() int {
	return p.rowNumber
}

// Err returns any error that occurred during streaming.
func (p *StreamingParser) Err() error {
	return p.err
}

// Close closes the underlying file.
func (p *StreamingParser) Close() error {
	return p.file.Close()
}
