// Package lib generates VS Code configuration files for Zig projects from
// within Go tooling, without shelling out to the zide CLI binary or to
// `zig build --list-steps`.
//
// It is the in-process counterpart of the CLI: the caller already knows the
// build steps (e.g. a build pipeline iterating its own step registry) and
// hands them over directly, no subprocess and no text parsing involved.
//
// # Quick Start
//
//	err := lib.Generate(ctx, lib.Config{
//	    ProjectName: "myapp",
//	    OutputDir:   filepath.Join(projectDir, ".vscode"),
//	    Steps: []lib.Step{
//	        {Name: "install", Description: "Copy build artifacts to prefix path"},
//	        {Name: "run", Description: "Run the app"},
//	        {Name: "test", Description: "Run unit tests"},
//	    },
//	})
//
// # Executables
//
// Debug launch configurations need executable names, and there is no
// reliable way to enumerate real build artifacts from a step list alone.
// When [Config].Executables is empty the project name is used as a single
// best-effort placeholder; set Executables explicitly when the artifact
// names differ from the project name.
//
// # Error Handling
//
// Errors can be inspected with [errors.Is] against the sentinels re-exported
// here: [ErrNotValid] for invalid configuration and [ErrWriteFailed] for
// filesystem failures (the target path is in the error message). A failed
// write aborts generation; documents already written stay on disk.
package lib
