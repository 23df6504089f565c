package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/1273l/Godot-Launcher/internal/config"
	"github.com/1273l/Godot-Launcher/internal/launch"
	"github.com/1273l/Godot-Launcher/internal/messages"
	"github.com/1273l/Godot-Launcher/internal/resolve"
	"github.com/1273l/Godot-Launcher/internal/scan"
	"github.com/1273l/Godot-Launcher/internal/ui"
)

// Seams for tests.
var (
	configPathFunc = config.DefaultPath
	scanFunc       = scan.Scan
	resolveFunc    = resolve.Resolve
	spawnFunc      = launch.Spawn
	newUIFunc      = func() ui.UI { return ui.NewHuhUI() }
)

// run is the whole launch pipeline: load config, ensure a versions root,
// scan it, pick a version, resolve the executable, spawn it detached.
func run(cmd *cobra.Command, opts options) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	warn := color.New(color.FgYellow)

	configPath, err := configPathFunc()
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		_, _ = warn.Fprintf(stderr, messages.ConfigLoadWarnFmt, configPath, err)
	}

	prompter := newUIFunc()

	rootDir, err := ensureRootDir(cfg, configPath, prompter, stderr)
	if err != nil {
		return err
	}

	sys := scan.RealSystem{}
	candidates, err := scanFunc(sys, rootDir, config.ReservedDirName(configPath))
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return fmt.Errorf(messages.NoVersionsFmt, rootDir)
	}

	cand, err := pickVersion(prompter, candidates, stdout)
	if err != nil {
		return err
	}

	path, err := resolveFunc(sys, prompter, cfg, configPath, cand, opts.skipDefault, stderr)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(stdout, messages.LaunchingFmt, path)
	return spawnFunc(path, opts.passthrough)
}

// pickVersion selects among the discovered versions. A single candidate is
// taken automatically; several go through the prompt.
func pickVersion(prompter ui.UI, candidates []scan.Candidate, stdout io.Writer) (scan.Candidate, error) {
	if len(candidates) == 1 {
		_, _ = fmt.Fprintf(stdout, messages.UsingVersionFmt, candidates[0].Version)
		return candidates[0], nil
	}

	versions := make([]string, len(candidates))
	for i, cand := range candidates {
		versions[i] = cand.Version
	}
	choice := versions[0]
	if err := prompter.Select(messages.PromptVersionTitle, versions, &choice); err != nil {
		return scan.Candidate{}, err
	}
	for _, cand := range candidates {
		if cand.Version == choice {
			return cand, nil
		}
	}
	return scan.Candidate{}, ui.ErrAborted
}
