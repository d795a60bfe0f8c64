package dataframe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Layout holds the field widths used by the text renderers. Widths are
// measured in terminal cells; content wider than its field is written in
// full.
type Layout struct {
	HeaderWidth      int `yaml:"header_width"`       // column names in the frame header (centered)
	LabelWidth       int `yaml:"label_width"`        // row labels (left-aligned)
	CellWidth        int `yaml:"cell_width"`         // frame values (left-aligned)
	ReduceNameWidth  int `yaml:"reduce_name_width"`  // column names in reduction output (left-aligned)
	ReduceValueWidth int `yaml:"reduce_value_width"` // reduction results (right-aligned)
	Precision        int `yaml:"precision"`          // decimals of reduction results
}

// DefaultLayout returns the standard rendering widths.
func DefaultLayout() Layout {
	return Layout{
		HeaderWidth:      17,
		LabelWidth:       13,
		CellWidth:        19,
		ReduceNameWidth:  12,
		ReduceValueWidth: 12,
		Precision:        2,
	}
}

// Validate checks that every width is positive and the precision is not
// negative.
func (l Layout) Validate() error {
	widths := []struct {
		name  string
		value int
	}{
		{"header_width", l.HeaderWidth},
		{"label_width", l.LabelWidth},
		{"cell_width", l.CellWidth},
		{"reduce_name_width", l.ReduceNameWidth},
		{"reduce_value_width", l.ReduceValueWidth},
	}
	for _, w := range widths {
		if w.value <= 0 {
			return fmt.Errorf("%w: layout %s must be > 0, got %d", ErrInvalidInput, w.name, w.value)
		}
	}
	if l.Precision < 0 {
		return fmt.Errorf("%w: layout precision must be >= 0, got %d", ErrInvalidInput, l.Precision)
	}
	return nil
}

func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func padLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// center places s in the middle of width cells; an odd remainder goes to
// the right.
func center(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

func (l Layout) reductionLine(name string, value float64) string {
	return padRight(name, l.ReduceNameWidth) + "\t" +
		padLeft(strconv.FormatFloat(value, 'f', l.Precision, 64), l.ReduceValueWidth) + "\n"
}
