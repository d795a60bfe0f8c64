package dataframe

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"sort"
	"strings"
)

// Column is the named data of one frame column.
type Column struct {
	Name string
	Data any
}

// Frame is a set of named columns sharing one row index.
type Frame struct {
	columns  []*Series
	rowIndex []any
	layout   Layout
	logger   *slog.Logger
}

// FrameOption configures NewFrame.
type FrameOption func(*frameConfig)

type frameConfig struct {
	rowIndex    []any
	hasRowIndex bool
	layout      Layout
	logger      *slog.Logger
}

// WithRowIndex supplies row labels, one per row.
func WithRowIndex(labels ...any) FrameOption {
	return func(c *frameConfig) {
		c.rowIndex = labels
		c.hasRowIndex = true
	}
}

// WithLayout overrides DefaultLayout for rendering.
func WithLayout(l Layout) FrameOption {
	return func(c *frameConfig) {
		c.layout = l
	}
}

// WithLogger sets the logger used to report recoverable conditions.
func WithLogger(logger *slog.Logger) FrameOption {
	return func(c *frameConfig) {
		c.logger = logger
	}
}

// NewFrame builds a frame with one series per column, in column order.
// All columns must have the same length, which must also match the row
// index when one is given. Rows are labeled 0..n-1 by default.
func NewFrame(columns []Column, opts ...FrameOption) (*Frame, error) {
	cfg := frameConfig{layout: DefaultLayout()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.layout.Validate(); err != nil {
		return nil, err
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: frame needs at least one column", ErrInvalidInput)
	}

	series := make([]*Series, 0, len(columns))
	for _, col := range columns {
		if !isColumnData(col.Data) {
			return nil, fmt.Errorf("%w: column %q data must be a slice or array, got %T",
				ErrInvalidInput, col.Name, col.Data)
		}
		s, err := NewSeries(col.Data, WithName(col.Name))
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Name, err)
		}
		if len(series) > 0 && s.Size() != series[0].Size() {
			return nil, fmt.Errorf("%w: column %q has %d values, column %q has %d",
				ErrInvalidInput, col.Name, s.Size(), series[0].Name(), series[0].Size())
		}
		series = append(series, s)
	}

	rows := series[0].Size()
	rowIndex := positions(rows)
	if cfg.hasRowIndex {
		if len(cfg.rowIndex) != rows {
			return nil, fmt.Errorf("%w: row index has %d labels, columns have %d values",
				ErrInvalidInput, len(cfg.rowIndex), rows)
		}
		rowIndex = append([]any(nil), cfg.rowIndex...)
	}

	return &Frame{
		columns:  series,
		rowIndex: rowIndex,
		layout:   cfg.layout,
		logger:   cfg.logger,
	}, nil
}

// isColumnData reports whether data is a plain sequence of values. Maps
// and []Entry carry their own keys, which would not line up with the row
// index.
func isColumnData(data any) bool {
	if _, ok := data.([]Entry); ok {
		return false
	}
	if data == nil {
		return false
	}
	switch reflect.ValueOf(data).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// FromMap builds a frame from a name to column data map. Go maps are
// unordered, so columns are laid out in ascending name order.
func FromMap(data map[string]any, opts ...FrameOption) (*Frame, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: frame data is nil", ErrInvalidInput)
	}
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	columns := make([]Column, len(names))
	for i, name := range names {
		columns[i] = Column{Name: name, Data: data[name]}
	}
	return NewFrame(columns, opts...)
}

// Shape returns the number of rows and columns.
func (f *Frame) Shape() (rows, cols int) {
	return len(f.rowIndex), len(f.columns)
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.Name()
	}
	return names
}

// Column returns a copy of the first column with the given name.
func (f *Frame) Column(name string) (*Series, bool) {
	c := f.find(name)
	if c == nil {
		return nil, false
	}
	return c.clone(), true
}

// RowIndex returns a copy of the row labels.
func (f *Frame) RowIndex() []any {
	return append([]any(nil), f.rowIndex...)
}

// Layout returns the rendering layout.
func (f *Frame) Layout() Layout {
	return f.layout
}

func (f *Frame) find(name string) *Series {
	for _, c := range f.columns {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// ColumnResult is the outcome of a reduction over one column. Skipped
// results carry the reason in Reason and no Value.
type ColumnResult struct {
	Column  string
	Value   float64
	Skipped bool
	Reason  error
}

// reduceColumns applies op to each column that is numeric and non-empty.
// Other columns are reported as skipped.
func (f *Frame) reduceColumns(op func(*Series) (float64, error)) ([]ColumnResult, error) {
	results := make([]ColumnResult, 0, len(f.columns))
	for _, c := range f.columns {
		res := ColumnResult{Column: c.Name()}
		switch {
		case !c.IsNumeric():
			res.Skipped, res.Reason = true, ErrNonNumericValue
		case c.Size() == 0:
			res.Skipped, res.Reason = true, ErrEmptySeries
		default:
			v, err := op(c)
			if err != nil {
				return nil, err
			}
			res.Value = v
		}
		results = append(results, res)
	}
	return results, nil
}

// ColumnMin returns the minimum of every numeric column.
func (f *Frame) ColumnMin() ([]ColumnResult, error) {
	return f.reduceColumns((*Series).Min)
}

// ColumnMax returns the maximum of every numeric column.
func (f *Frame) ColumnMax() ([]ColumnResult, error) {
	return f.reduceColumns((*Series).Max)
}

// ColumnMean returns the mean of every numeric column.
func (f *Frame) ColumnMean() ([]ColumnResult, error) {
	return f.reduceColumns((*Series).Mean)
}

// WriteReductions writes one line per computed result: the column name
// left-aligned, a tab, then the value right-aligned. Skipped results are
// omitted.
func (f *Frame) WriteReductions(w io.Writer, results []ColumnResult) error {
	var b strings.Builder
	for _, r := range results {
		if r.Skipped {
			continue
		}
		b.WriteString(f.layout.reductionLine(r.Column, r.Value))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// PrintMin writes ColumnMin results to w.
func (f *Frame) PrintMin(w io.Writer) error {
	return f.print(w, f.ColumnMin)
}

// PrintMax writes ColumnMax results to w.
func (f *Frame) PrintMax(w io.Writer) error {
	return f.print(w, f.ColumnMax)
}

// PrintMean writes ColumnMean results to w.
func (f *Frame) PrintMean(w io.Writer) error {
	return f.print(w, f.ColumnMean)
}

func (f *Frame) print(w io.Writer, reduce func() ([]ColumnResult, error)) error {
	results, err := reduce()
	if err != nil {
		return err
	}
	return f.WriteReductions(w, results)
}

// Render writes the frame as a text table: a header of centered column
// names, then one line per row with its label and values.
func (f *Frame) Render(w io.Writer) error {
	var b strings.Builder
	b.WriteByte('\t')
	for _, c := range f.columns {
		b.WriteString(center(c.Name(), f.layout.HeaderWidth))
		b.WriteByte(' ')
	}
	b.WriteByte('\n')

	for i, label := range f.rowIndex {
		b.WriteString(padRight(formatValue(label), f.layout.LabelWidth))
		for _, c := range f.columns {
			v, err := c.ValueAt(i)
			if err != nil {
				return err
			}
			b.WriteString(padRight(formatValue(v), f.layout.CellWidth))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// String renders the frame.
func (f *Frame) String() string {
	var b strings.Builder
	_ = f.Render(&b)
	return b.String()
}

// SortByColumn stably sorts the rows by the values of the named column in
// ascending order, moving every column and the row index together. A
// missing column is logged and leaves the frame unchanged.
func (f *Frame) SortByColumn(name string) error {
	target := f.find(name)
	if target == nil {
		f.logger.Warn("column not found, no sorting performed", "column", name)
		return nil
	}

	perm, err := stablePermutation(target.values)
	if err != nil {
		return fmt.Errorf("sort by column %q: %w", name, err)
	}

	for _, c := range f.columns {
		if err := c.reorder(perm); err != nil {
			// Lengths are equal by construction, so reorder cannot fail
			// part way through.
			return fmt.Errorf("sort by column %q: column %q: %w", name, c.Name(), err)
		}
	}
	rowIndex := make([]any, len(perm))
	for j, p := range perm {
		rowIndex[j] = f.rowIndex[p]
	}
	f.rowIndex = rowIndex

	f.logger.Debug("sorted frame", "column", name, "rows", len(perm))
	return nil
}
