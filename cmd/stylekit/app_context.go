package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/stylekit/internal/config"
	"github.com/alexisbeaulieu97/stylekit/internal/engine"
	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/ports"
	"github.com/alexisbeaulieu97/stylekit/internal/store"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
)

// AppContext bundles the services a command needs.
type AppContext struct {
	ConfigPath string
	Config     *config.AppConfig
	Store      ports.Store
	Engine     *engine.Engine
	Log        *logger.Logger
	// Sources maps custom theme names to the file that defined them.
	Sources map[string]string
}

type appOptions struct {
	// ephemeral keeps theme switches in memory so the persisted theme is
	// left untouched.
	ephemeral bool
}

func newAppContext(cmd *cobra.Command, flags *rootFlags, opts appOptions) (*AppContext, error) {
	configPath := flags.configPath
	if configPath == "" {
		path, err := defaultConfigPath()
		if err != nil {
			return nil, newCommandError(cmd.Name(), "determining config path", err, "Ensure your HOME directory is set correctly.")
		}
		configPath = path
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading configuration", err, fmt.Sprintf("Fix or remove %s and try again.", configPath))
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr(), Component: "stylekit"})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "creating logger", err, "Use one of debug, info, warn or error for log_level.")
	}

	statePath := flags.statePath
	if statePath == "" {
		statePath = cfg.StatePath
	}
	if statePath == "" {
		path, err := defaultStatePath()
		if err != nil {
			return nil, newCommandError(cmd.Name(), "determining state path", err, "Ensure your HOME directory is set correctly.")
		}
		statePath = path
	}

	fileStore, err := store.NewFileStore(statePath)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading state", err, "Check state file permissions or remove the corrupt file.")
	}

	var st ports.Store = fileStore
	if opts.ephemeral {
		mem := store.NewMemoryStore()
		if current, ok := fileStore.Get(theme.PersistKey); ok {
			_ = mem.Set(theme.PersistKey, current, 0)
		}
		st = mem
	}

	defs, sources, err := loadThemeDefinitions(cfg.ThemeFiles)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading theme files", err, "Fix the theme file or remove it with 'stylekit theme remove <name>'.")
	}

	eng, err := engine.New(engine.Options{
		Store:        st,
		Logger:       log,
		Themes:       defs,
		DefaultTheme: cfg.DefaultTheme,
	})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "initialising style engine", err, "Check the configured theme files.")
	}

	return &AppContext{
		ConfigPath: configPath,
		Config:     cfg,
		Store:      st,
		Engine:     eng,
		Log:        log,
		Sources:    sources,
	}, nil
}

func loadThemeDefinitions(paths []string) ([]engine.ThemeDefinition, map[string]string, error) {
	defs := make([]engine.ThemeDefinition, 0, len(paths))
	sources := make(map[string]string, len(paths))

	for _, path := range paths {
		def, err := loadThemeDefinition(path)
		if err != nil {
			return nil, nil, err
		}
		defs = append(defs, def)
		sources[def.Name] = path
	}

	return defs, sources, nil
}

func loadThemeDefinition(path string) (engine.ThemeDefinition, error) {
	tf, err := config.LoadThemeFile(path)
	if err != nil {
		return engine.ThemeDefinition{}, err
	}

	cfg, err := tf.StyleConfig()
	if err != nil {
		return engine.ThemeDefinition{}, err
	}

	return engine.ThemeDefinition{Name: tf.Name, Config: cfg}, nil
}

func supportsColor(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
