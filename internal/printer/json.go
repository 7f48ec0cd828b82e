package printer

import (
	"encoding/json"
	"io"

	"github.com/slok/zide/internal/model"
)

// JSONPrinter prints step information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// stepItem represents a step in the list output.
type stepItem struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// messageOutput represents a simple message output.
type messageOutput struct {
	Message string `json:"message"`
}

// PrintSteps prints steps in JSON format.
func (j *JSONPrinter) PrintSteps(steps []model.Step) error {
	items := make([]stepItem, len(steps))
	for i, s := range steps {
		items[i] = stepItem{
			Name:        s.Name,
			Category:    string(s.Category),
			Description: s.Description,
		}
	}

	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	output := messageOutput{Message: msg}
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
