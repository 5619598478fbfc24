package main

import (
	"os"
	"path/filepath"
)

func stylekitDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".stylekit"), nil
}

func defaultConfigPath() (string, error) {
	dir, err := stylekitDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.yaml"), nil
}

func defaultStatePath() (string, error) {
	dir, err := stylekitDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "state.json"), nil
}
