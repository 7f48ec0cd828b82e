package commands

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"k8s.io/client-go/util/homedir"

	"github.com/slok/zide/internal/conventions"
	"github.com/slok/zide/internal/log"
	storageio "github.com/slok/zide/internal/storage/io"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string
	ConfigPath string
	ZigBinary  string

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)

	defaultConfigPath := filepath.Join(homedir.HomeDir(), ".zide", "config.yaml")
	app.Flag("config", "Path to the global zide config file.").Default(defaultConfigPath).StringVar(&c.ConfigPath)
	app.Flag("zig-binary", "Zig binary used to list build steps (overrides the global config).").StringVar(&c.ZigBinary)

	return c
}

// resolveZigBinary returns the zig binary to use: the --zig-binary flag wins,
// then the global config file, then the conventional default.
func (c *RootCommand) resolveZigBinary(ctx context.Context) string {
	if c.ZigBinary != "" {
		return c.ZigBinary
	}

	repo := storageio.NewGlobalYAMLRepository(os.DirFS(filepath.Dir(c.ConfigPath)))
	cfg, err := repo.GetGlobalConfig(ctx, filepath.Base(c.ConfigPath))
	if err == nil && cfg.ZigBinary != "" {
		return cfg.ZigBinary
	}

	return conventions.ZigBinary
}
