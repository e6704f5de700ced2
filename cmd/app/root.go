package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/akyairhashvil/countdown/internal/alarm"
	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/database"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/tui"
	"github.com/akyairhashvil/countdown/internal/util"
	"github.com/akyairhashvil/countdown/internal/version"
)

var errNotTerminal = errors.New("stdout is not a terminal, use `countdown run` for a plain countdown")

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	logFile    string
	dbPath     string
	noHistory  bool
}

// app is the wired set of collaborators a command runs against.
type app struct {
	cfg      *config.Config
	log      *zap.SugaredLogger
	db       *database.Database
	closeLog func() error
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "countdown",
		Short: "Interactive countdown timer.",
		Long: `A terminal countdown timer.

Type up to six digits to set hours, minutes and seconds, or pick a preset
with F1-F9. Space starts and pauses, r resets. When the countdown reaches
zero the alarm plays until any key is pressed or the screen is clicked.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotTerminal
			}
			return withApp(cmd, flags, runTUI)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "path to configuration file (default "+config.DefaultPath()+")")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&flags.logFile, "log-file", "", `log file path, "-" for stderr`)
	pf.StringVar(&flags.dbPath, "db", "", "sqlite database path")
	pf.BoolVar(&flags.noHistory, "no-history", false, "do not record finished countdowns")

	root.AddCommand(
		newRunCmd(flags),
		newHistoryCmd(flags),
		newReportCmd(flags),
		newPresetsCmd(flags),
	)
	version.AttachCobraVersionCommand(root)

	return root
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.logFile != "" {
		cfg.LogFile = flags.logFile
	}
	if flags.dbPath != "" {
		cfg.Database = flags.dbPath
	}
	if flags.noHistory {
		cfg.History = false
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newApp(ctx context.Context, flags *globalFlags) (*app, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	level, _ := util.ParseLogLevel(cfg.LogLevel)
	log, closeLog, err := util.NewLogger(level, cfg.LogPath())
	if err != nil {
		return nil, err
	}

	db, err := database.Open(util.ToContext(ctx, log), cfg.DatabasePath())
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	seed := make([]models.Preset, 0, len(cfg.Presets))
	for _, p := range cfg.Presets {
		seed = append(seed, models.Preset{Label: p.Label, Seconds: p.Seconds})
	}
	if err := db.SeedPresets(ctx, seed); err != nil {
		log.Warnw("seed presets", "error", err)
	}

	return &app{cfg: cfg, log: log, db: db, closeLog: closeLog}, nil
}

func (a *app) Close() error {
	return errors.Join(a.db.Close(), a.closeLog())
}

// withApp wires an app for the duration of fn and tears it down afterwards.
func withApp(cmd *cobra.Command, flags *globalFlags, fn func(ctx context.Context, cmd *cobra.Command, a *app) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	a, err := newApp(ctx, flags)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "close: %v\n", cerr)
		}
	}()

	ctx = util.ToContext(ctx, a.log)
	a.log.Infow("starting", "command", cmd.Name(), "version", version.Short())
	return fn(ctx, cmd, a)
}

func runTUI(ctx context.Context, _ *cobra.Command, a *app) error {
	device, err := alarm.New(a.cfg.Alarm, os.Stderr)
	if err != nil {
		return err
	}

	presets, err := a.db.ListPresets(ctx)
	if err != nil {
		return err
	}

	model := tui.NewModel(ctx, tui.Options{
		Store:   a.db,
		Device:  device,
		Presets: presets,
		Theme:   a.cfg.Theme,
		History: a.cfg.History,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err = p.Run()
	// Whatever state the program stopped in, the device must not keep ringing.
	util.LogError(ctx, "stop alarm", device.Stop())
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
