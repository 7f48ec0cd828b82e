package render

import (
	"fmt"

	"github.com/slok/zide/internal/conventions"
	"github.com/slok/zide/internal/model"
)

// DefaultBuildTaskLabel is the label of the always-present default build
// task, referenced by the launch configurations as their pre-launch task.
const DefaultBuildTaskLabel = "zig build"

type tasksDocument struct {
	Version string      `json:"version"`
	Tasks   []taskEntry `json:"tasks"`
}

type taskEntry struct {
	Label          string           `json:"label"`
	Type           string           `json:"type"`
	Command        string           `json:"command"`
	Args           []string         `json:"args"`
	Group          interface{}      `json:"group"`
	Presentation   taskPresentation `json:"presentation"`
	ProblemMatcher string           `json:"problemMatcher"`
}

type taskGroup struct {
	Kind      string `json:"kind"`
	IsDefault bool   `json:"isDefault"`
}

type taskPresentation struct {
	Echo             bool   `json:"echo"`
	Reveal           string `json:"reveal"`
	Focus            bool   `json:"focus"`
	Panel            string `json:"panel"`
	ShowReuseMessage bool   `json:"showReuseMessage"`
	Clear            bool   `json:"clear"`
}

// Tasks renders the task runner document: the default build task first, then
// one task per discovered step, in discovery order. Test-category steps land
// in the test group, everything else in the build group.
func Tasks(pctx model.ProjectContext) ([]byte, error) {
	tasks := make([]taskEntry, 0, len(pctx.Steps)+1)

	tasks = append(tasks, newTaskEntry(DefaultBuildTaskLabel, []string{"build"}, taskGroup{
		Kind:      "build",
		IsDefault: true,
	}))

	for _, s := range pctx.Steps {
		group := "build"
		if s.Category == model.StepCategoryTest {
			group = "test"
		}
		label := fmt.Sprintf("zig build %s", s.Name)
		tasks = append(tasks, newTaskEntry(label, []string{"build", s.Name}, group))
	}

	return marshal(tasksDocument{
		Version: "2.0.0",
		Tasks:   tasks,
	})
}

// newTaskEntry builds a task with the fixed presentation policy: shared
// sequential output panel, no focus stealing, no clearing between runs.
func newTaskEntry(label string, args []string, group interface{}) taskEntry {
	return taskEntry{
		Label:   label,
		Type:    "shell",
		Command: conventions.ZigBinary,
		Args:    args,
		Group:   group,
		Presentation: taskPresentation{
			Echo:             true,
			Reveal:           "always",
			Focus:            false,
			Panel:            "shared",
			ShowReuseMessage: false,
			Clear:            false,
		},
		ProblemMatcher: "$gcc",
	}
}
