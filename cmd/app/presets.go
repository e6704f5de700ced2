package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/timer"
)

var errPresetsFull = fmt.Errorf("at most %d presets can be stored", config.MaxPresets)

func newPresetsCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage the presets bound to F1-F9.",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List stored presets.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(cmd, flags, func(ctx context.Context, cmd *cobra.Command, a *app) error {
					presets, err := a.db.ListPresets(ctx)
					if err != nil {
						return err
					}
					for i, p := range presets {
						fmt.Fprintf(cmd.OutOrStdout(), "F%d  #%d  %-8s  %s\n", i+1, p.ID, timer.Format(p.Seconds), p.Label)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "add <label> <digits>",
			Short: "Store a preset; digits are read like the keypad.",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				seconds, err := parseDigits(args[1])
				if err != nil {
					return err
				}
				return withApp(cmd, flags, func(ctx context.Context, cmd *cobra.Command, a *app) error {
					presets, err := a.db.ListPresets(ctx)
					if err != nil {
						return err
					}
					if len(presets) >= config.MaxPresets {
						return errPresetsFull
					}
					id, err := a.db.AddPreset(ctx, args[0], seconds)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Added preset #%d %s (%s)\n", id, args[0], timer.Format(seconds))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "rm <id>",
			Short: "Delete a stored preset.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid preset id %q: %w", args[0], err)
				}
				return withApp(cmd, flags, func(ctx context.Context, cmd *cobra.Command, a *app) error {
					if err := a.db.DeletePreset(ctx, id); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Removed preset #%d\n", id)
					return nil
				})
			},
		},
	)

	return cmd
}

// parseDigits validates a keypad digit string and returns its seconds.
func parseDigits(digits string) (int, error) {
	var in timer.Input
	if digits == "" || len(digits) > config.MaxDigits {
		return 0, errInvalidDigits
	}
	for _, r := range digits {
		if r < '0' || r > '9' || !in.Append(int(r-'0')) {
			return 0, errInvalidDigits
		}
	}
	if in.Seconds() <= 0 {
		return 0, errors.New("duration must be at least one second")
	}
	return in.Seconds(), nil
}
