package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
	apperrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, dir string, cfg *AppConfig, err error)
	}{
		{
			name: "valid configuration is parsed",
			contents: `version: "1.0"
log_level: debug
state_path: state.json
default_theme: ocean
theme_files:
  - themes/ocean.yaml
  - /abs/forest.toml
`,
			assert: func(t *testing.T, dir string, cfg *AppConfig, err error) {
				require.NoError(t, err)
				require.Equal(t, "debug", cfg.LogLevel)
				require.Equal(t, "ocean", cfg.DefaultTheme)
				require.Equal(t, filepath.Join(dir, "state.json"), cfg.StatePath)
				require.Equal(t, []string{filepath.Join(dir, "themes", "ocean.yaml"), "/abs/forest.toml"}, cfg.ThemeFiles)
			},
		},
		{
			name:     "defaults fill omitted fields",
			contents: `version: "1.0"` + "\n",
			assert: func(t *testing.T, _ string, cfg *AppConfig, err error) {
				require.NoError(t, err)
				require.Equal(t, "warn", cfg.LogLevel)
				require.Equal(t, style.ThemeLight, cfg.DefaultTheme)
			},
		},
		{
			name:     "syntax error reports line",
			contents: "version: \"1.0\"\nlog_level: [debug\n",
			assert: func(t *testing.T, _ string, _ *AppConfig, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Greater(t, parseErr.Line, 0)
			},
		},
		{
			name:     "invalid log level",
			contents: "version: \"1.0\"\nlog_level: loud\n",
			assert: func(t *testing.T, _ string, _ *AppConfig, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "log_level", validationErr.Field)
			},
		},
		{
			name:     "invalid version",
			contents: "version: beta\n",
			assert: func(t *testing.T, _ string, _ *AppConfig, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "version", validationErr.Field)
				require.Contains(t, validationErr.Message, "semver")
			},
		},
		{
			name:     "invalid default theme name",
			contents: "version: \"1.0\"\ndefault_theme: Ocean Blue\n",
			assert: func(t *testing.T, _ string, _ *AppConfig, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "default_theme", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := writeFile(t, dir, "config.yaml", tc.contents)
			cfg, err := Load(path)
			tc.assert(t, dir, cfg, err)
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.ThemeFiles = []string{"/themes/ocean.yaml"}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.ThemeFiles, loaded.ThemeFiles)
	assert.Equal(t, cfg.Version, loaded.Version)

	require.Error(t, Save(path, &AppConfig{Version: "nope"}))
}

func TestLoadThemeFileYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "ocean.yaml", `name: ocean
description: Deep blue
tokens:
  primary: "#006994"
  p-gutter: 32
  opacity-soft: 0.5
  spacing:
    sm: 8rpx
    lg: 32rpx
`)

	tf, err := LoadThemeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ocean", tf.Name)
	assert.Equal(t, "Deep blue", tf.Description)
	assert.Equal(t, path, tf.Path)

	cfg, err := tf.StyleConfig()
	require.NoError(t, err)

	primary, ok := cfg["primary"].AsLiteral()
	require.True(t, ok)
	assert.Equal(t, "#006994", primary)

	gutter, _ := cfg["p-gutter"].AsLiteral()
	assert.Equal(t, "32", gutter)

	soft, _ := cfg["opacity-soft"].AsLiteral()
	assert.Equal(t, "0.5", soft)

	spacing, ok := cfg["spacing"].AsGroup()
	require.True(t, ok)
	lg, _ := spacing["lg"].AsLiteral()
	assert.Equal(t, "32rpx", lg)
}

func TestLoadThemeFileTOML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "forest.toml", `name = "forest"
description = "Greens"

[tokens]
primary = "#228B22"
"text-md" = "30rpx"
"p-gutter" = 24

[tokens.spacing]
sm = "6rpx"
`)

	tf, err := LoadThemeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "forest", tf.Name)

	cfg, err := tf.StyleConfig()
	require.NoError(t, err)

	textMd, _ := cfg["text-md"].AsLiteral()
	assert.Equal(t, "30rpx", textMd)
	gutter, _ := cfg["p-gutter"].AsLiteral()
	assert.Equal(t, "24", gutter)
	_, ok := cfg["spacing"].AsGroup()
	assert.True(t, ok)
}

func TestLoadThemeFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("missing name", func(t *testing.T) {
		path := writeFile(t, dir, "noname.yaml", "tokens:\n  primary: red\n")
		_, err := LoadThemeFile(path)
		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "name", validationErr.Field)
	})

	t.Run("empty tokens", func(t *testing.T) {
		path := writeFile(t, dir, "empty.yaml", "name: empty\ntokens: {}\n")
		_, err := LoadThemeFile(path)
		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "tokens", validationErr.Field)
	})

	t.Run("bad toml reports line", func(t *testing.T) {
		path := writeFile(t, dir, "bad.toml", "name = \"x\"\n[tokens\n")
		_, err := LoadThemeFile(path)
		var parseErr *apperrors.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Greater(t, parseErr.Line, 0)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, dir, "theme.json", "{}")
		_, err := LoadThemeFile(path)
		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "path", validationErr.Field)
	})

	t.Run("unsupported token value", func(t *testing.T) {
		path := writeFile(t, dir, "list.yaml", "name: list\ntokens:\n  palette: [red, blue]\n")
		tf, err := LoadThemeFile(path)
		require.NoError(t, err)

		_, err = tf.StyleConfig()
		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "tokens.palette", validationErr.Field)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadThemeFile(filepath.Join(dir, "absent.yaml"))
		var parseErr *apperrors.ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}

func TestValidThemeName(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidThemeName("ocean"))
	assert.True(t, ValidThemeName("high-contrast_2"))
	assert.False(t, ValidThemeName("Ocean"))
	assert.False(t, ValidThemeName("-ocean"))
	assert.False(t, ValidThemeName(""))
}
