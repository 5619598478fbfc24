package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
	apperrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// CurrentVersion is written into freshly created configuration files.
const CurrentVersion = "1.0"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Default returns the configuration used when no file exists.
func Default() *AppConfig {
	return &AppConfig{
		Version:      CurrentVersion,
		LogLevel:     "warn",
		DefaultTheme: style.ThemeLight,
	}
}

// Load reads the application config at path. A missing file yields Default.
// Relative theme file paths are resolved against the config directory.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, apperrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateAppConfig(cfg); err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	for i, file := range cfg.ThemeFiles {
		cfg.ThemeFiles[i] = resolvePath(dir, file)
	}
	if cfg.StatePath != "" {
		cfg.StatePath = resolvePath(dir, cfg.StatePath)
	}

	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg *AppConfig) error {
	if err := ValidateAppConfig(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadThemeFile parses a .yaml, .yml or .toml theme definition.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	var tf ThemeFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &tf); err != nil {
			return nil, apperrors.NewParseError(path, extractLine(err), err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &tf); err != nil {
			return nil, apperrors.NewParseError(path, tomlLine(err), err)
		}
	default:
		return nil, apperrors.NewValidationError("path", fmt.Sprintf("unsupported theme file extension %q", filepath.Ext(path)), nil)
	}

	if err := ValidateThemeFile(&tf); err != nil {
		return nil, err
	}
	tf.Path = path

	return &tf, nil
}

// StyleConfig converts the file's tokens into theme overrides. Strings become
// literals, numbers are formatted, maps become groups.
func (tf *ThemeFile) StyleConfig() (style.Config, error) {
	return convertTokens("tokens", tf.Tokens)
}

func convertTokens(field string, tokens map[string]any) (style.Config, error) {
	keys := make([]string, 0, len(tokens))
	for key := range tokens {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	cfg := make(style.Config, len(tokens))
	for _, key := range keys {
		path := field + "." + key
		switch v := tokens[key].(type) {
		case string:
			cfg[key] = style.Literal(v)
		case int:
			cfg[key] = style.Literal(strconv.Itoa(v))
		case int64:
			cfg[key] = style.Literal(strconv.FormatInt(v, 10))
		case uint64:
			cfg[key] = style.Literal(strconv.FormatUint(v, 10))
		case float64:
			cfg[key] = style.Literal(strconv.FormatFloat(v, 'f', -1, 64))
		case map[string]any:
			group, err := convertTokens(path, v)
			if err != nil {
				return nil, err
			}
			cfg[key] = style.Group(group)
		default:
			return nil, apperrors.NewValidationError(path, fmt.Sprintf("unsupported token value of type %T", v), nil)
		}
	}
	return cfg, nil
}

func resolvePath(base, path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}

	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return 0
}
