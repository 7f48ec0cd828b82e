package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/zide/internal/model"
)

func TestCategoryFromName(t *testing.T) {
	tests := map[string]struct {
		name        string
		expCategory model.StepCategory
	}{
		"The run step should be categorized as run": {
			name:        "run",
			expCategory: model.StepCategoryRun,
		},

		"The test step should be categorized as test": {
			name:        "test",
			expCategory: model.StepCategoryTest,
		},

		"The build step should be categorized as build": {
			name:        "build",
			expCategory: model.StepCategoryBuild,
		},

		"The install step should be categorized as build": {
			name:        "install",
			expCategory: model.StepCategoryBuild,
		},

		"A project-defined step should be categorized as custom": {
			name:        "docs",
			expCategory: model.StepCategoryCustom,
		},

		"Matching should be case-sensitive": {
			name:        "Run",
			expCategory: model.StepCategoryCustom,
		},

		"Matching should be exact": {
			name:        "run-all",
			expCategory: model.StepCategoryCustom,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expCategory, model.CategoryFromName(tt.name))
		})
	}
}

func TestNewStep(t *testing.T) {
	step := model.NewStep("test", "Run unit tests")

	assert.Equal(t, "test", step.Name)
	assert.Equal(t, "Run unit tests", step.Description)
	assert.Equal(t, model.StepCategoryTest, step.Category)
}

func TestProjectContextValidate(t *testing.T) {
	tests := map[string]struct {
		context model.ProjectContext
		expErr  bool
	}{
		"A valid context should not fail": {
			context: model.ProjectContext{
				ProjectName: "myapp",
				Steps: []model.Step{
					model.NewStep("build", "Build the project"),
				},
			},
			expErr: false,
		},

		"A context without steps should not fail": {
			context: model.ProjectContext{ProjectName: "myapp"},
			expErr:  false,
		},

		"Missing project name should fail": {
			context: model.ProjectContext{},
			expErr:  true,
		},

		"A step without name should fail": {
			context: model.ProjectContext{
				ProjectName: "myapp",
				Steps:       []model.Step{{Description: "nameless"}},
			},
			expErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.context.Validate()

			if tt.expErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, model.ErrNotValid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProjectContextRunSteps(t *testing.T) {
	pctx := model.ProjectContext{
		ProjectName: "myapp",
		Steps: []model.Step{
			model.NewStep("build", ""),
			model.NewStep("run", "Run it"),
			model.NewStep("test", ""),
			model.NewStep("run", "Run it again"),
		},
	}

	runs := pctx.RunSteps()

	assert.Len(t, runs, 2)
	assert.Equal(t, "Run it", runs[0].Description)
	assert.Equal(t, "Run it again", runs[1].Description)
}
