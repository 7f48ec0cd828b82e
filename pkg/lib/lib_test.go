package lib_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/zide/pkg/lib"
)

func TestGenerateValidation(t *testing.T) {
	tests := map[string]struct {
		cfg lib.Config
	}{
		"Missing project name should fail": {
			cfg: lib.Config{OutputDir: "out"},
		},
		"Missing output dir should fail": {
			cfg: lib.Config{ProjectName: "myapp"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := lib.Generate(context.TODO(), tt.cfg)

			assert.ErrorIs(t, err, lib.ErrNotValid)
		})
	}
}

func TestGenerate(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), ".vscode")

	err := lib.Generate(context.TODO(), lib.Config{
		ProjectName: "myapp",
		OutputDir:   outDir,
		Steps: []lib.Step{
			{Name: "install", Description: "Copy build artifacts to prefix path"},
			{Name: "run", Description: "Run the app"},
			{Name: "test", Description: "Run unit tests"},
		},
	})
	require.NoError(t, err)

	for _, name := range []string{"extensions.json", "tasks.json", "launch.json", "settings.json"} {
		content, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err, name)
		assert.True(t, json.Valid(content), "%s is not valid JSON", name)
	}

	// The launch configuration uses the project name as executable
	// placeholder when no explicit executables are set.
	launch, err := os.ReadFile(filepath.Join(outDir, "launch.json"))
	require.NoError(t, err)
	var launchDoc struct {
		Configurations []struct {
			Program string `json:"program"`
		} `json:"configurations"`
	}
	require.NoError(t, json.Unmarshal(launch, &launchDoc))
	require.Len(t, launchDoc.Configurations, 1)
	assert.Equal(t, "${workspaceFolder}/zig-out/bin/myapp", launchDoc.Configurations[0].Program)

	// The task list preserves the step order after the default build task.
	tasks, err := os.ReadFile(filepath.Join(outDir, "tasks.json"))
	require.NoError(t, err)
	var tasksDoc struct {
		Tasks []struct {
			Label string `json:"label"`
		} `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(tasks, &tasksDoc))
	require.Len(t, tasksDoc.Tasks, 4)
	assert.Equal(t, "zig build", tasksDoc.Tasks[0].Label)
	assert.Equal(t, "zig build install", tasksDoc.Tasks[1].Label)
	assert.Equal(t, "zig build run", tasksDoc.Tasks[2].Label)
	assert.Equal(t, "zig build test", tasksDoc.Tasks[3].Label)
}

func TestGenerateExplicitExecutables(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), ".vscode")

	err := lib.Generate(context.TODO(), lib.Config{
		ProjectName: "myapp",
		OutputDir:   outDir,
		Steps:       []lib.Step{{Name: "run", Description: "Run the app"}},
		Executables: []string{"server", "worker"},
	})
	require.NoError(t, err)

	launch, err := os.ReadFile(filepath.Join(outDir, "launch.json"))
	require.NoError(t, err)
	var launchDoc struct {
		Configurations []struct {
			Name string `json:"name"`
		} `json:"configurations"`
	}
	require.NoError(t, json.Unmarshal(launch, &launchDoc))
	require.Len(t, launchDoc.Configurations, 2)
	assert.Equal(t, "Debug server", launchDoc.Configurations[0].Name)
	assert.Equal(t, "Debug worker", launchDoc.Configurations[1].Name)
}
