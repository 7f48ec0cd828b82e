package printer

import "github.com/slok/zide/internal/model"

// Printer knows how to print step information in different formats.
type Printer interface {
	PrintSteps(steps []model.Step) error
	PrintMessage(msg string) error
}
