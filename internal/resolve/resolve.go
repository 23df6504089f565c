// Package resolve picks the single executable to launch for a chosen
// version, consulting and updating the remembered default.
package resolve

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/1273l/Godot-Launcher/internal/config"
	"github.com/1273l/Godot-Launcher/internal/messages"
	"github.com/1273l/Godot-Launcher/internal/scan"
	"github.com/1273l/Godot-Launcher/internal/ui"
)

// ErrCancelled reports that the user backed out of the executable prompt.
// The run ends cleanly and nothing is written.
var ErrCancelled = errors.New("selection cancelled")

// ErrNoExecutable reports that the chosen version directory holds no
// qualifying executable.
var ErrNoExecutable = errors.New("no Godot executable found")

// Resolve returns the executable path to launch for cand.
//
// Unless skipDefault is set, a remembered path for this version that still
// exists on disk wins without any directory enumeration. Otherwise the
// version directory is enumerated: one hit is taken automatically, several
// go through the prompt (editor builds listed before console builds). Every
// successful selection overwrites the remembered default for this version
// and is persisted immediately; a failed save only warns.
func Resolve(sys scan.System, prompter ui.UI, cfg *config.Config, configPath string, cand scan.Candidate, skipDefault bool, stderr io.Writer) (string, error) {
	warn := color.New(color.FgYellow)

	if !skipDefault {
		if remembered, ok := cfg.DefaultExecutables[cand.Version]; ok && remembered != "" {
			if _, err := sys.Stat(remembered); err == nil {
				persist(cfg, configPath, cand.Version, remembered, warn, stderr)
				return remembered, nil
			}
			_, _ = warn.Fprintf(stderr, messages.ConfigStaleWarnFmt, remembered)
		}
	}

	execs := scan.Executables(sys, cand.Dir)
	if len(execs) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoExecutable, cand.Dir)
	}

	selected := execs[0].Path
	if len(execs) > 1 {
		picked, err := pick(prompter, execs)
		if err != nil {
			return "", err
		}
		selected = picked
	}

	persist(cfg, configPath, cand.Version, selected, warn, stderr)
	return selected, nil
}

// pick prompts for one of several executables. The options arrive already
// ordered editor-first by scan.Executables.
func pick(prompter ui.UI, execs []scan.Executable) (string, error) {
	labels := make([]string, len(execs))
	byLabel := make(map[string]string, len(execs))
	for i, exe := range execs {
		label := fmt.Sprintf("%s (%s)", filepath.Base(exe.Path), exe.Variant)
		labels[i] = label
		byLabel[label] = exe.Path
	}

	choice := labels[0]
	if err := prompter.Select(messages.PromptExecutableTitle, labels, &choice); err != nil {
		if errors.Is(err, ui.ErrAborted) {
			return "", ErrCancelled
		}
		return "", err
	}
	path, ok := byLabel[choice]
	if !ok {
		return "", ErrCancelled
	}
	return path, nil
}

// persist records the selection as the version's default and saves the
// config. Save failures are warnings: the selection still stands.
func persist(cfg *config.Config, configPath, version, path string, warn *color.Color, stderr io.Writer) {
	cfg.DefaultExecutables[version] = path
	if err := config.Save(configPath, cfg); err != nil {
		_, _ = warn.Fprintf(stderr, messages.ConfigSaveWarnFmt, configPath, err)
	}
}
