package config

// AppConfig is the CLI configuration stored in ~/.stylekit/config.yaml.
type AppConfig struct {
	Version      string   `yaml:"version" validate:"required,semver"`
	LogLevel     string   `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	StatePath    string   `yaml:"state_path"`
	DefaultTheme string   `yaml:"default_theme" validate:"omitempty,theme_name"`
	ThemeFiles   []string `yaml:"theme_files" validate:"dive,required"`
}

// ThemeFile is a custom theme definition loaded from YAML or TOML.
type ThemeFile struct {
	Name        string         `yaml:"name" toml:"name" validate:"required,theme_name"`
	Description string         `yaml:"description" toml:"description"`
	Tokens      map[string]any `yaml:"tokens" toml:"tokens" validate:"required,min=1"`

	// Path is the file the theme was read from.
	Path string `yaml:"-" toml:"-"`
}
