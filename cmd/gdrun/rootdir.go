package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"

	"github.com/1273l/Godot-Launcher/internal/config"
	"github.com/1273l/Godot-Launcher/internal/messages"
	"github.com/1273l/Godot-Launcher/internal/ui"
)

// ensureRootDir returns the versions root directory, prompting for it on
// first run and persisting the answer. A configured directory that no longer
// exists is fatal; an empty answer at the prompt cancels the run.
func ensureRootDir(cfg *config.Config, configPath string, prompter ui.UI, stderr io.Writer) (string, error) {
	if cfg.RootDirectory != "" {
		if info, err := os.Stat(cfg.RootDirectory); err != nil || !info.IsDir() {
			return "", fmt.Errorf(messages.RootDirMissingFmt, cfg.RootDirectory)
		}
		return cfg.RootDirectory, nil
	}

	var answer string
	if err := prompter.Input(messages.PromptRootDirTitle, messages.PromptRootDirDescription, &answer); err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", ui.ErrAborted
	}

	expanded, err := homedir.Expand(answer)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return "", fmt.Errorf(messages.RootDirMissingFmt, abs)
	}

	cfg.RootDirectory = abs
	if err := config.Save(configPath, cfg); err != nil {
		_, _ = color.New(color.FgYellow).Fprintf(stderr, messages.ConfigSaveWarnFmt, configPath, err)
	}
	return abs, nil
}
