package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylekit/internal/store"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
)

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func setupHome(t *testing.T) string {
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func statePath(home string) string {
	return filepath.Join(home, ".stylekit", "state.json")
}

func configPath(home string) string {
	return filepath.Join(home, ".stylekit", "config.yaml")
}

func writeThemeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func persistedTheme(t *testing.T, home string) (string, bool) {
	t.Helper()
	s, err := store.NewFileStore(statePath(home))
	require.NoError(t, err)
	return s.Get(theme.PersistKey)
}

const oceanTheme = `name: ocean
description: Deep blue
tokens:
  primary: "#006994"
  text-md: 30rpx
`
