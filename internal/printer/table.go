package printer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/slok/zide/internal/model"
)

// TablePrinter prints step information in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintSteps prints steps in a table format.
func (t *TablePrinter) PrintSteps(steps []model.Step) error {
	if len(steps) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header
	fmt.Fprintln(tw, "NAME\tCATEGORY\tDESCRIPTION")

	// Print rows
	for _, s := range steps {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, s.Category, s.Description)
	}

	return nil
}

// PrintMessage prints a simple message.
func (t *TablePrinter) PrintMessage(msg string) error {
	_, err := fmt.Fprintln(t.writer, msg)
	return err
}
