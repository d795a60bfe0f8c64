package dataframe

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV decoding.
type CSVOptions struct {
	IndexColumn string // Column holding row labels (optional)
	HasHeader   bool   // Whether the first row names the columns (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV decoding.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		HasHeader: true,
		Delimiter: ',',
	}
}

// missing lists cell spellings that denote an absent value.
var missing = map[string]bool{"": true, "NA": true, "NaN": true, "null": true}

// ReadCSV decodes a frame from r. Cells that parse as numbers become
// float64 values; everything else stays a string. Missing cells, including
// any spelling ParseFloat reads as NaN, are rejected.
func ReadCSV(r io.Reader, opts *CSVOptions, frameOpts ...FrameOption) (*Frame, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	var headers []string
	if opts.HasHeader {
		header, err := reader.Read()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: csv has no header", ErrInvalidInput)
		}
		if err != nil {
			return nil, err
		}
		for _, h := range header {
			headers = append(headers, strings.TrimSpace(h))
		}
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if headers == nil {
		if len(records) == 0 {
			return nil, fmt.Errorf("%w: no data found in csv", ErrInvalidInput)
		}
		for i := range records[0] {
			headers = append(headers, strconv.Itoa(i))
		}
	}

	indexIdx := -1
	if opts.IndexColumn != "" {
		for i, h := range headers {
			if h == opts.IndexColumn {
				indexIdx = i
				break
			}
		}
		if indexIdx == -1 {
			return nil, fmt.Errorf("%w: index column %q not in csv header", ErrInvalidInput, opts.IndexColumn)
		}
	}

	cells := make([][]any, len(headers))
	var labels []any
	for row, record := range records {
		for col, raw := range record {
			val := strings.TrimSpace(raw)
			cell := parseCell(val)
			if f, ok := cell.(float64); missing[val] || (ok && math.IsNaN(f)) {
				return nil, fmt.Errorf("%w: missing value in row %d column %q", ErrInvalidInput, row+1, headers[col])
			}
			if col == indexIdx {
				labels = append(labels, val)
				continue
			}
			cells[col] = append(cells[col], cell)
		}
	}

	columns := make([]Column, 0, len(headers))
	for i, h := range headers {
		if i == indexIdx {
			continue
		}
		data := cells[i]
		if data == nil {
			data = []any{}
		}
		columns = append(columns, Column{Name: h, Data: data})
	}
	if indexIdx >= 0 {
		if labels == nil {
			labels = []any{}
		}
		frameOpts = append(frameOpts, WithRowIndex(labels...))
	}
	return NewFrame(columns, frameOpts...)
}

func parseCell(s string) any {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// WriteCSV encodes the frame to w with a header row. When includeIndex is
// true the row labels are written first under an "index" column.
func (f *Frame) WriteCSV(w io.Writer, includeIndex bool) error {
	buf := bufio.NewWriter(w)
	writer := csv.NewWriter(buf)

	header := f.Columns()
	if includeIndex {
		header = append([]string{"index"}, header...)
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i, label := range f.rowIndex {
		record := make([]string, 0, len(header))
		if includeIndex {
			record = append(record, formatValue(label))
		}
		for _, c := range f.columns {
			record = append(record, formatValue(c.values[i]))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return buf.Flush()
}
