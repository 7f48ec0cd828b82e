package model

import "fmt"

// StepCategory is the coarse classification of a build step, used to group
// editor tasks and to decide which steps get debug launch entries.
type StepCategory string

const (
	// StepCategoryRun identifies the step that runs the project's artifact.
	StepCategoryRun StepCategory = "run"
	// StepCategoryTest identifies the step that runs the project's tests.
	StepCategoryTest StepCategory = "test"
	// StepCategoryBuild identifies steps that produce build artifacts.
	StepCategoryBuild StepCategory = "build"
	// StepCategoryCustom identifies every project-defined step.
	StepCategoryCustom StepCategory = "custom"
)

// Step is a named, invokable unit of the build tool's public surface.
type Step struct {
	Name        string
	Description string
	Category    StepCategory
}

// NewStep creates a step deriving its category from the name.
func NewStep(name, description string) Step {
	return Step{
		Name:        name,
		Description: description,
		Category:    CategoryFromName(name),
	}
}

// CategoryFromName derives a step category from the step name. The match is
// exact and case-sensitive, anything unknown is a custom step.
func CategoryFromName(name string) StepCategory {
	switch name {
	case "run":
		return StepCategoryRun
	case "test":
		return StepCategoryTest
	case "build", "install":
		return StepCategoryBuild
	default:
		return StepCategoryCustom
	}
}

// ProjectContext carries everything the document renderers need for one
// generation run. Step order follows discovery order and is preserved into
// the rendered task list.
type ProjectContext struct {
	ProjectName string
	Steps       []Step
	Executables []string
}

// Validate validates the project context.
func (p *ProjectContext) Validate() error {
	if p.ProjectName == "" {
		return fmt.Errorf("project name is required: %w", ErrNotValid)
	}

	for _, s := range p.Steps {
		if s.Name == "" {
			return fmt.Errorf("step name is required: %w", ErrNotValid)
		}
	}

	return nil
}

// RunSteps returns the steps with the run category, in order.
func (p *ProjectContext) RunSteps() []Step {
	var runs []Step
	for _, s := range p.Steps {
		if s.Category == StepCategoryRun {
			runs = append(runs, s)
		}
	}
	return runs
}

// ProjectConfig is the optional per-project configuration loaded from the
// project's zide config file. It overrides values the tool would otherwise
// guess (project name from the directory, executables from the run step).
type ProjectConfig struct {
	Name        string
	Executables []string
}

// GlobalConfig is the optional user-level configuration (~/.zide/config.yaml).
type GlobalConfig struct {
	ZigBinary string
}
