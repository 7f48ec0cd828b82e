// Package zigcli discovers build steps by running the zig build step listing
// and parsing its textual output.
package zigcli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/slok/zide/internal/conventions"
	"github.com/slok/zide/internal/log"
	"github.com/slok/zide/internal/model"
)

// DefaultMaxOutputBytes is the default bound on captured subprocess output.
// Reads beyond the bound fail the run instead of silently truncating.
const DefaultMaxOutputBytes = 10 * 1024 * 1024

// ListerConfig is the configuration for the zig CLI lister.
type ListerConfig struct {
	// ProjectDir is the directory of the Zig project to inspect.
	ProjectDir string
	// ZigBinary is the zig binary to run. Default: "zig" (resolved via PATH).
	ZigBinary string
	// MaxOutputBytes bounds the captured stdout/stderr of the subprocess.
	// Default: DefaultMaxOutputBytes.
	MaxOutputBytes int
	Logger         log.Logger
}

func (c *ListerConfig) defaults() error {
	if c.ProjectDir == "" {
		return fmt.Errorf("project dir is required")
	}
	if c.ZigBinary == "" {
		c.ZigBinary = conventions.ZigBinary
	}
	if c.MaxOutputBytes <= 0 {
		c.MaxOutputBytes = DefaultMaxOutputBytes
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "steps.ZigCLI"})
	return nil
}

// Lister discovers steps by running `zig build --list-steps` in the project
// directory and parsing the output lines.
type Lister struct {
	projectDir     string
	zigBinary      string
	maxOutputBytes int
	logger         log.Logger
}

// NewLister creates a new zig CLI lister.
func NewLister(cfg ListerConfig) (*Lister, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Lister{
		projectDir:     cfg.ProjectDir,
		zigBinary:      cfg.ZigBinary,
		maxOutputBytes: cfg.MaxOutputBytes,
		logger:         cfg.Logger,
	}, nil
}

// ListSteps runs the step listing subcommand and parses its output. It fails
// without running anything when the project has no build description file.
func (l *Lister) ListSteps(ctx context.Context) ([]model.Step, error) {
	buildFile := conventions.BuildFilePath(l.projectDir)
	if _, err := os.Stat(buildFile); err != nil {
		return nil, fmt.Errorf("no %s in %s: %w", conventions.BuildFileName, l.projectDir, model.ErrMissingBuildFile)
	}

	stdout := newCappedBuffer(l.maxOutputBytes)
	stderr := newCappedBuffer(l.maxOutputBytes)

	cmd := exec.CommandContext(ctx, l.zigBinary, "build", conventions.ListStepsFlag)
	cmd.Dir = l.projectDir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	l.logger.Debugf("Running %s build %s in %s", l.zigBinary, conventions.ListStepsFlag, l.projectDir)

	err := cmd.Run()
	if err != nil {
		errText := strings.TrimSpace(stderr.String())
		if errText == "" {
			errText = err.Error()
		}
		return nil, fmt.Errorf("step listing failed: %s: %w", errText, model.ErrSubprocessFailed)
	}

	stepList := ParseStepList(stdout.String())
	l.logger.Debugf("Discovered %d steps", len(stepList))

	return stepList, nil
}

// Check runs the preflight checks for the zig CLI environment.
func (l *Lister) Check(ctx context.Context) []model.CheckResult {
	var results []model.CheckResult

	// Zig binary resolvable.
	binPath, err := exec.LookPath(l.zigBinary)
	if err != nil {
		results = append(results, model.CheckResult{
			ID:      "zig_binary",
			Message: fmt.Sprintf("zig binary %q not found in PATH", l.zigBinary),
			Status:  model.CheckStatusError,
		})
	} else {
		results = append(results, model.CheckResult{
			ID:      "zig_binary",
			Message: fmt.Sprintf("found %s", binPath),
			Status:  model.CheckStatusOK,
		})
	}

	// Zig binary runnable.
	if err == nil {
		out, verr := exec.CommandContext(ctx, l.zigBinary, "version").Output()
		if verr != nil {
			results = append(results, model.CheckResult{
				ID:      "zig_version",
				Message: fmt.Sprintf("could not run %s version: %s", l.zigBinary, verr),
				Status:  model.CheckStatusError,
			})
		} else {
			results = append(results, model.CheckResult{
				ID:      "zig_version",
				Message: strings.TrimSpace(string(out)),
				Status:  model.CheckStatusOK,
			})
		}
	}

	// Project build description present.
	if _, err := os.Stat(conventions.BuildFilePath(l.projectDir)); err != nil {
		results = append(results, model.CheckResult{
			ID:      "build_file",
			Message: fmt.Sprintf("no %s in %s", conventions.BuildFileName, l.projectDir),
			Status:  model.CheckStatusError,
		})
	} else {
		results = append(results, model.CheckResult{
			ID:      "build_file",
			Message: fmt.Sprintf("%s present", conventions.BuildFileName),
			Status:  model.CheckStatusOK,
		})
	}

	return results
}

// ParseStepList extracts the step records from the step listing output.
//
// A candidate line starts with exactly two spaces followed by a non-space
// character (one indentation level, not nested). The step name is the token
// before the first whitespace run; the description is the trimmed remainder
// as captured, internal spacing preserved. Everything else (headers, blank
// lines, deeper nesting) is ignored. An output with no candidate lines
// yields an empty list, not an error.
func ParseStepList(output string) []model.Step {
	var stepList []model.Step

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if !isStepLine(line) {
			continue
		}

		candidate := strings.TrimSpace(line)
		name := candidate
		description := ""
		if i := strings.IndexFunc(candidate, unicode.IsSpace); i >= 0 {
			name = candidate[:i]
			description = strings.TrimSpace(candidate[i:])
		}

		stepList = append(stepList, model.NewStep(name, description))
	}

	return stepList
}

func isStepLine(line string) bool {
	if len(line) < 3 || line[0] != ' ' || line[1] != ' ' {
		return false
	}
	r, _ := utf8.DecodeRuneInString(line[2:])
	return !unicode.IsSpace(r)
}

// cappedBuffer is a bytes buffer that fails writes beyond its cap, so an
// unexpectedly large subprocess output aborts the run instead of being
// silently cut.
type cappedBuffer struct {
	buf bytes.Buffer
	max int
}

func newCappedBuffer(max int) *cappedBuffer {
	return &cappedBuffer{max: max}
}

func (c *cappedBuffer) Write(p []byte) (int, error) {
	if c.buf.Len()+len(p) > c.max {
		return 0, fmt.Errorf("subprocess output exceeds %d bytes", c.max)
	}
	return c.buf.Write(p)
}

func (c *cappedBuffer) String() string { return c.buf.String() }
