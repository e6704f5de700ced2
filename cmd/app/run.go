package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/countdown/internal/alarm"
	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/history"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/timer"
	"github.com/akyairhashvil/countdown/internal/util"
)

var (
	errNoDuration     = errors.New("provide a duration as digits or --preset")
	errInvalidDigits  = fmt.Errorf("duration must be 1 to %d digits", config.MaxDigits)
	errPresetNotFound = errors.New("no preset with that label")
)

func newRunCmd(flags *globalFlags) *cobra.Command {
	var preset string

	cmd := &cobra.Command{
		Use:   "run [digits]",
		Short: "Run a countdown without the full-screen interface.",
		Long: `Run a countdown on plain stdout.

Digits are read like the keypad: "130" is one minute thirty seconds and
"10000" is one hour. When the countdown expires the alarm plays until a line
is entered on stdin or the command is interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && preset == "" {
				return errNoDuration
			}
			return withApp(cmd, flags, func(ctx context.Context, cmd *cobra.Command, a *app) error {
				device, err := alarm.New(a.cfg.Alarm, cmd.ErrOrStderr())
				if err != nil {
					return err
				}

				var opts []timer.Option
				opts = append(opts, timer.WithLogger(a.log.Named("engine")))
				if a.cfg.History {
					opts = append(opts, timer.WithObserver(history.NewRecorder(ctx, a.db, nil).Observe))
				}
				engine := timer.NewEngine(device, opts...)

				if preset != "" {
					presets, err := a.db.ListPresets(ctx)
					if err != nil {
						return err
					}
					seconds, err := findPreset(presets, preset)
					if err != nil {
						return err
					}
					engine.SetPreset(seconds)
				} else if err := enterDigits(engine, args[0]); err != nil {
					return err
				}

				return runCountdown(ctx, engine, cmd.InOrStdin(), cmd.OutOrStdout(), config.TickInterval)
			})
		},
	}

	cmd.Flags().StringVarP(&preset, "preset", "p", "", "label of a stored preset to run")
	return cmd
}

// enterDigits types digits into engine the way the keypad would.
func enterDigits(engine *timer.Engine, digits string) error {
	if digits == "" || len(digits) > config.MaxDigits {
		return errInvalidDigits
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return errInvalidDigits
		}
		engine.AppendDigit(int(r - '0'))
	}
	return nil
}

func findPreset(presets []models.Preset, label string) (int, error) {
	for _, p := range presets {
		if strings.EqualFold(p.Label, label) {
			return p.Seconds, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errPresetNotFound, label)
}

// runCountdown drives engine with a ticker until it expires and the alarm
// is dismissed by a line on in, or until ctx is cancelled.
func runCountdown(ctx context.Context, engine *timer.Engine, in io.Reader, out io.Writer, interval time.Duration) error {
	log := util.FromContext(ctx)

	h, err := engine.Start()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n", engine.Display())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			engine.Reset()
			log.Infow("countdown interrupted", "remaining", engine.Remaining())
			return nil
		case <-ticker.C:
			switch engine.Tick(h) {
			case timer.TickContinue:
				fmt.Fprintf(out, "%s\n", engine.Display())
			case timer.TickExpired:
				fmt.Fprintln(out, "Time's up! Press Enter to stop the alarm.")
				waitForDismissal(ctx, in)
				engine.Alarm().Interact(timer.InteractionKey)
				if engine.State() == timer.Expired {
					engine.Reset()
				}
				return nil
			default:
				return nil
			}
		}
	}
}

// waitForDismissal returns once a line is read from in, in is exhausted,
// or ctx is done.
func waitForDismissal(ctx context.Context, in io.Reader) {
	if in == nil {
		in = os.Stdin
	}
	lines := make(chan struct{}, 1)
	go func() {
		sc := bufio.NewScanner(in)
		sc.Scan()
		lines <- struct{}{}
	}()
	select {
	case <-lines:
	case <-ctx.Done():
	}
}
