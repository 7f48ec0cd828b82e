package render

import (
	"fmt"
	"path"

	"github.com/slok/zide/internal/conventions"
	"github.com/slok/zide/internal/model"
)

type launchDocument struct {
	Version        string        `json:"version"`
	Configurations []launchEntry `json:"configurations"`
}

type launchEntry struct {
	Name          string            `json:"name"`
	Type          string            `json:"type"`
	Request       string            `json:"request"`
	Program       string            `json:"program"`
	Args          []string          `json:"args"`
	Cwd           string            `json:"cwd"`
	PreLaunchTask string            `json:"preLaunchTask"`
	Windows       *platformDebugger `json:"windows,omitempty"`
	OSX           *platformDebugger `json:"osx,omitempty"`
	Linux         *platformDebugger `json:"linux,omitempty"`
}

type platformDebugger struct {
	Type   string `json:"type"`
	MIMode string `json:"MIMode,omitempty"`
}

// Launch renders the debugger launch document. Configuration names come from
// the explicit executable list when present, otherwise one per run-category
// step (the project name stands in for the binary, a run step does not
// reveal its artifact name), otherwise a single project-name fallback so the
// document never has zero configurations.
func Launch(pctx model.ProjectContext) ([]byte, error) {
	names := pctx.Executables
	if len(names) == 0 {
		for range pctx.RunSteps() {
			names = append(names, pctx.ProjectName)
		}
	}
	if len(names) == 0 {
		names = []string{pctx.ProjectName}
	}

	configurations := make([]launchEntry, 0, len(names))
	for _, name := range names {
		configurations = append(configurations, newLaunchEntry(name))
	}

	return marshal(launchDocument{
		Version:        "0.2.0",
		Configurations: configurations,
	})
}

func newLaunchEntry(executable string) launchEntry {
	return launchEntry{
		Name:          fmt.Sprintf("Debug %s", executable),
		Type:          "cppdbg",
		Request:       "launch",
		Program:       "${workspaceFolder}/" + path.Join(conventions.OutputBinDir, executable),
		Args:          []string{},
		Cwd:           "${workspaceFolder}",
		PreLaunchTask: DefaultBuildTaskLabel,
		Windows:       &platformDebugger{Type: "cppvsdbg"},
		OSX:           &platformDebugger{Type: "lldb"},
		Linux:         &platformDebugger{Type: "cppdbg", MIMode: "gdb"},
	}
}
