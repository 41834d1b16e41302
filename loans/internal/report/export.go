package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/errs"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
)

const (
	BOM       = "\uFEFF"
	Delimiter = ";"
	// DateLayout is dd/MM/yyyy.
	DateLayout = "02/01/2006"
)

// Table is a flat list of records sharing one header.
type Table struct {
	Columns []string
	Rows    [][]string
}

func NewTable(columns ...string) *Table {
	return &Table{Columns: columns}
}

// Add appends one record; values are rendered with FormatValue.
func (t *Table) Add(values ...any) {
	row := make([]string, len(t.Columns))
	for i := range row {
		if i < len(values) {
			row[i] = FormatValue(values[i])
		}
	}
	t.Rows = append(t.Rows, row)
}

func (t *Table) Len() int { return len(t.Rows) }

func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case model.Date:
		if x.IsZero() {
			return ""
		}
		return x.Format(DateLayout)
	case *model.Date:
		if x == nil {
			return ""
		}
		return FormatValue(*x)
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format(DateLayout)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Export writes t as BOM-prefixed, ;-delimited text with every value quoted.
// An empty table writes nothing and returns errs.ErrNothingToExport.
func Export(w io.Writer, t *Table) error {
	if t == nil || t.Len() == 0 {
		return errs.ErrNothingToExport
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(BOM + strings.Join(t.Columns, Delimiter) + "\n"); err != nil {
		return err
	}
	vals := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i := range vals {
			vals[i] = quote(row[i])
		}
		if _, err := bw.WriteString(strings.Join(vals, Delimiter) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
