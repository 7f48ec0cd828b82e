package printer_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/zide/internal/model"
	"github.com/slok/zide/internal/printer"
)

func testSteps() []model.Step {
	return []model.Step{
		model.NewStep("build", "Build the project"),
		model.NewStep("test", "Run unit tests"),
		model.NewStep("fuzz", ""),
	}
}

func TestTablePrinterPrintSteps(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	require.NoError(t, p.PrintSteps(testSteps()))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "DESCRIPTION")
	assert.Contains(t, out, "build")
	assert.Contains(t, out, "Run unit tests")
	assert.Contains(t, out, "custom")
}

func TestTablePrinterPrintStepsEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	require.NoError(t, p.PrintSteps(nil))

	assert.Empty(t, buf.String())
}

func TestJSONPrinterPrintSteps(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	require.NoError(t, p.PrintSteps(testSteps()))

	var items []struct {
		Name        string `json:"name"`
		Category    string `json:"category"`
		Description string `json:"description"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &items))

	require.Len(t, items, 3)
	assert.Equal(t, "build", items[0].Name)
	assert.Equal(t, "build", items[0].Category)
	assert.Equal(t, "test", items[1].Category)
	assert.Equal(t, "custom", items[2].Category)
	assert.Equal(t, "", items[2].Description)
}

func TestJSONPrinterPrintStepsEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	require.NoError(t, p.PrintSteps(nil))

	assert.Equal(t, "[]\n", buf.String())
}
