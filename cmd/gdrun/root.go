package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1273l/Godot-Launcher/internal/messages"
	"github.com/1273l/Godot-Launcher/internal/resolve"
	"github.com/1273l/Godot-Launcher/internal/ui"
)

// newRootCmd builds the gdrun command. Flag parsing is disabled so every
// argument gdrun does not recognize reaches the launched Godot process
// untouched.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                messages.RootUse,
		Short:              messages.RootShort,
		Long:               messages.RootLong,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := parseArgs(args)
			if opts.showHelp {
				return cmd.Help()
			}
			if opts.showVersion {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), cmd.Version)
				return nil
			}

			err := run(cmd, opts)
			if errors.Is(err, ui.ErrAborted) || errors.Is(err, resolve.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), messages.Cancelled)
				return &SilentExitError{Code: 1}
			}
			return err
		},
	}

	return cmd
}
