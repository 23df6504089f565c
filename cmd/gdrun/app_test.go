package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/1273l/Godot-Launcher/internal/config"
	"github.com/1273l/Godot-Launcher/internal/messages"
	"github.com/1273l/Godot-Launcher/internal/ui"
)

// spawnRecord captures the spawn the pipeline would have performed.
type spawnRecord struct {
	path  string
	args  []string
	calls int
	err   error
}

// stubSeams points the pipeline at a fixed config path, a scripted UI, and a
// recording spawner for the duration of one test.
func stubSeams(t *testing.T, configPath string, prompter ui.UI) *spawnRecord {
	t.Helper()
	rec := &spawnRecord{}
	prevConfig, prevUI, prevSpawn := configPathFunc, newUIFunc, spawnFunc
	configPathFunc = func() (string, error) { return configPath, nil }
	newUIFunc = func() ui.UI { return prompter }
	spawnFunc = func(path string, args []string) error {
		rec.calls++
		rec.path = path
		rec.args = args
		return rec.err
	}
	t.Cleanup(func() {
		configPathFunc, newUIFunc, spawnFunc = prevConfig, prevUI, prevSpawn
	})
	return rec
}

func writeExec(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
	return path
}

// setupTree builds a versions root with the given version directories plus a
// Gdrun self directory holding the config file.
func setupTree(t *testing.T, versions map[string][]string) (string, string) {
	t.Helper()
	root := t.TempDir()
	for version, executables := range versions {
		dir := filepath.Join(root, version)
		require.NoError(t, os.Mkdir(dir, 0o755))
		for _, name := range executables {
			writeExec(t, dir, name)
		}
	}
	selfDir := filepath.Join(root, "Gdrun")
	require.NoError(t, os.Mkdir(selfDir, 0o755))
	return root, filepath.Join(selfDir, config.FileName)
}

func runGdrun(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := execute(append([]string{"gdrun"}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestFirstRunPromptsForRootAndLaunches(t *testing.T) {
	root, configPath := setupTree(t, map[string][]string{
		"4.2-stable": {"godot.exe", "godot_console.exe"},
	})

	prompter := &ui.MockUI{
		InputFunc: func(_ string, _ string, value *string) error {
			*value = root
			return nil
		},
		SelectFunc: func(_ string, options []string, value *string) error {
			*value = options[0]
			return nil
		},
	}
	rec := stubSeams(t, configPath, prompter)

	stdout, _, err := runGdrun(t, "-e", "project.godot")
	require.NoError(t, err)
	require.Equal(t, 1, rec.calls)
	require.Equal(t, filepath.Join(root, "4.2-stable", "godot.exe"), rec.path)
	require.Equal(t, []string{"-e", "project.godot"}, rec.args)
	require.Contains(t, stdout, "Launching")

	saved, loadErr := config.Load(configPath)
	require.NoError(t, loadErr)
	require.Equal(t, root, saved.RootDirectory)
	require.Equal(t, rec.path, saved.DefaultExecutables["4.2-stable"])
}

func TestRememberedDefaultLaunchesWithoutPrompts(t *testing.T) {
	root, configPath := setupTree(t, map[string][]string{
		"4.2-stable": {"godot.exe", "godot_console.exe"},
	})
	remembered := filepath.Join(root, "4.2-stable", "godot_console.exe")
	require.NoError(t, config.Save(configPath, &config.Config{
		RootDirectory:      root,
		DefaultExecutables: map[string]string{"4.2-stable": remembered},
	}))

	prompter := &ui.MockUI{}
	rec := stubSeams(t, configPath, prompter)

	_, _, err := runGdrun(t)
	require.NoError(t, err)
	require.Equal(t, remembered, rec.path)
	require.Zero(t, prompter.SelectCalls)
	require.Zero(t, prompter.InputCalls)
}

func TestSelectFlagForcesReselection(t *testing.T) {
	root, configPath := setupTree(t, map[string][]string{
		"4.2-stable": {"godot.exe", "godot_console.exe"},
	})
	require.NoError(t, config.Save(configPath, &config.Config{
		RootDirectory:      root,
		DefaultExecutables: map[string]string{"4.2-stable": filepath.Join(root, "4.2-stable", "godot.exe")},
	}))

	prompter := &ui.MockUI{
		SelectFunc: func(_ string, options []string, value *string) error {
			*value = options[1] // the console build
			return nil
		},
	}
	rec := stubSeams(t, configPath, prompter)

	_, _, err := runGdrun(t, "--select")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "4.2-stable", "godot_console.exe"), rec.path)

	saved, loadErr := config.Load(configPath)
	require.NoError(t, loadErr)
	require.Equal(t, rec.path, saved.DefaultExecutables["4.2-stable"])
}

func TestVersionPromptListsSortedCandidates(t *testing.T) {
	root, configPath := setupTree(t, map[string][]string{
		"4.2-stable": {"godot.exe"},
		"3.5":        {"godot.exe"},
	})
	require.NoError(t, config.Save(configPath, &config.Config{RootDirectory: root}))

	var seen []string
	prompter := &ui.MockUI{
		SelectFunc: func(_ string, options []string, value *string) error {
			seen = options
			*value = "4.2-stable"
			return nil
		},
	}
	rec := stubSeams(t, configPath, prompter)

	_, _, err := runGdrun(t)
	require.NoError(t, err)
	require.Equal(t, []string{"3.5", "4.2-stable"}, seen)
	require.Equal(t, filepath.Join(root, "4.2-stable", "godot.exe"), rec.path)
}

func TestSelfDirectoryNeverACandidate(t *testing.T) {
	// The Gdrun directory contains a qualifying executable, yet only the real
	// version directory is offered.
	root, configPath := setupTree(t, map[string][]string{
		"4.2-stable": {"godot.exe"},
	})
	writeExec(t, filepath.Join(root, "Gdrun"), "godot.exe")
	require.NoError(t, config.Save(configPath, &config.Config{RootDirectory: root}))

	prompter := &ui.MockUI{}
	rec := stubSeams(t, configPath, prompter)

	stdout, _, err := runGdrun(t)
	require.NoError(t, err)
	require.Zero(t, prompter.SelectCalls, "single candidate picked automatically")
	require.Contains(t, stdout, "4.2-stable")
	require.Equal(t, filepath.Join(root, "4.2-stable", "godot.exe"), rec.path)
}

func TestZeroVersionsIsFatal(t *testing.T) {
	root, configPath := setupTree(t, map[string][]string{})
	require.NoError(t, config.Save(configPath, &config.Config{RootDirectory: root}))

	rec := stubSeams(t, configPath, &ui.MockUI{})

	_, _, err := runGdrun(t)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no Godot versions")
	require.Zero(t, rec.calls)
}

func TestConfiguredRootGoneIsFatal(t *testing.T) {
	_, configPath := setupTree(t, map[string][]string{})
	missing := filepath.Join(t.TempDir(), "moved")
	require.NoError(t, config.Save(configPath, &config.Config{RootDirectory: missing}))

	rec := stubSeams(t, configPath, &ui.MockUI{})

	_, _, err := runGdrun(t)
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")
	require.Zero(t, rec.calls)
}

func TestRootPromptAbortCancelsRun(t *testing.T) {
	_, configPath := setupTree(t, map[string][]string{"4.2-stable": {"godot.exe"}})

	prompter := &ui.MockUI{
		InputFunc: func(string, string, *string) error { return ui.ErrAborted },
	}
	rec := stubSeams(t, configPath, prompter)

	stdout, _, err := runGdrun(t)
	var silent *SilentExitError
	require.ErrorAs(t, err, &silent)
	require.Equal(t, 1, silent.Code)
	require.Contains(t, stdout, messages.Cancelled)
	require.Zero(t, rec.calls)
}

func TestEmptyRootAnswerCancelsRun(t *testing.T) {
	_, configPath := setupTree(t, map[string][]string{"4.2-stable": {"godot.exe"}})

	prompter := &ui.MockUI{
		InputFunc: func(_ string, _ string, value *string) error {
			*value = "   "
			return nil
		},
	}
	rec := stubSeams(t, configPath, prompter)

	stdout, _, err := runGdrun(t)
	var silent *SilentExitError
	require.ErrorAs(t, err, &silent)
	require.Contains(t, stdout, messages.Cancelled)
	require.Zero(t, rec.calls)
}

func TestExecutablePromptAbortCancelsRun(t *testing.T) {
	root, configPath := setupTree(t, map[string][]string{
		"4.2-stable": {"godot.exe", "godot_console.exe"},
	})
	require.NoError(t, config.Save(configPath, &config.Config{RootDirectory: root}))

	prompter := &ui.MockUI{
		SelectFunc: func(string, []string, *string) error { return ui.ErrAborted },
	}
	rec := stubSeams(t, configPath, prompter)

	stdout, _, err := runGdrun(t)
	var silent *SilentExitError
	require.ErrorAs(t, err, &silent)
	require.Contains(t, stdout, messages.Cancelled)
	require.Zero(t, rec.calls)
}

func TestCorruptConfigWarnsAndContinues(t *testing.T) {
	root, configPath := setupTree(t, map[string][]string{"4.2-stable": {"godot.exe"}})
	require.NoError(t, os.WriteFile(configPath, []byte("root-directory = [broken"), 0o644))

	prompter := &ui.MockUI{
		InputFunc: func(_ string, _ string, value *string) error {
			*value = root
			return nil
		},
	}
	rec := stubSeams(t, configPath, prompter)

	_, stderr, err := runGdrun(t)
	require.NoError(t, err)
	require.Contains(t, stderr, "Warning")
	require.Equal(t, filepath.Join(root, "4.2-stable", "godot.exe"), rec.path)
}

func TestSpawnFailureIsFatal(t *testing.T) {
	root, configPath := setupTree(t, map[string][]string{"4.2-stable": {"godot.exe"}})
	require.NoError(t, config.Save(configPath, &config.Config{RootDirectory: root}))

	rec := stubSeams(t, configPath, &ui.MockUI{})
	rec.err = errors.New("exec format error")

	_, _, err := runGdrun(t)
	require.Error(t, err)
	require.Contains(t, err.Error(), "exec format error")

	// The default written before the failed spawn survives untouched.
	saved, loadErr := config.Load(configPath)
	require.NoError(t, loadErr)
	require.Equal(t, filepath.Join(root, "4.2-stable", "godot.exe"), saved.DefaultExecutables["4.2-stable"])
}
