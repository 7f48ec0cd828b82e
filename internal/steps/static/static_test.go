package static_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/zide/internal/model"
	"github.com/slok/zide/internal/steps/static"
)

func TestListerListSteps(t *testing.T) {
	tests := map[string]struct {
		steps    []static.Step
		expSteps []model.Step
		expErr   bool
	}{
		"Steps should be returned in their native order with derived categories": {
			steps: []static.Step{
				{Name: "install", Description: "Copy build artifacts to prefix path"},
				{Name: "run", Description: "Run the app"},
				{Name: "docs", Description: ""},
			},
			expSteps: []model.Step{
				{Name: "install", Description: "Copy build artifacts to prefix path", Category: model.StepCategoryBuild},
				{Name: "run", Description: "Run the app", Category: model.StepCategoryRun},
				{Name: "docs", Description: "", Category: model.StepCategoryCustom},
			},
		},

		"An empty collection should yield an empty list, not an error": {
			steps:    nil,
			expSteps: []model.Step{},
		},

		"A step without name should fail at construction": {
			steps:  []static.Step{{Description: "nameless"}},
			expErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			lister, err := static.NewLister(static.ListerConfig{Steps: tt.steps})

			if tt.expErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			stepList, err := lister.ListSteps(context.TODO())

			require.NoError(t, err)
			assert.Equal(t, tt.expSteps, stepList)
		})
	}
}
