package conventions

import "path/filepath"

const (
	// BuildFileName is the build description file every Zig project carries.
	BuildFileName = "build.zig"
	// ProjectConfigFileName is the optional per-project zide config file.
	ProjectConfigFileName = "zide.yaml"
	// VSCodeDirName is the conventional editor configuration directory.
	VSCodeDirName = ".vscode"

	// Generated files.

	// ExtensionsFileName is the recommended-extensions document.
	ExtensionsFileName = "extensions.json"
	// TasksFileName is the task runner document.
	TasksFileName = "tasks.json"
	// LaunchFileName is the debugger launch document.
	LaunchFileName = "launch.json"
	// SettingsFileName is the editor settings document.
	SettingsFileName = "settings.json"

	// Build tool surface.

	// ZigBinary is the default build tool binary name, resolved through PATH.
	ZigBinary = "zig"
	// ListStepsFlag is the zig build flag that lists the declared steps.
	ListStepsFlag = "--list-steps"
	// OutputBinDir is where zig installs executable artifacts, relative to
	// the project root.
	OutputBinDir = "zig-out/bin"
)

// BuildFilePath returns the path to a project's build description file.
func BuildFilePath(projectDir string) string {
	return filepath.Join(projectDir, BuildFileName)
}

// ProjectConfigPath returns the path to a project's zide config file.
func ProjectConfigPath(projectDir string) string {
	return filepath.Join(projectDir, ProjectConfigFileName)
}

// DocumentNames returns the generated file names in the order they are
// written.
func DocumentNames() []string {
	return []string{ExtensionsFileName, TasksFileName, LaunchFileName, SettingsFileName}
}
