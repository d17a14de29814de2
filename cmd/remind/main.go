package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/kocpc001/multimedia-reminder/internal/calendar"
	"github.com/kocpc001/multimedia-reminder/internal/capture"
	"github.com/kocpc001/multimedia-reminder/internal/config"
	"github.com/kocpc001/multimedia-reminder/internal/engine"
	"github.com/kocpc001/multimedia-reminder/internal/i18n"
	"github.com/kocpc001/multimedia-reminder/internal/storage"
	"github.com/kocpc001/multimedia-reminder/internal/update"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	openID := flag.String("open", "", "present the reminder with this id on startup")
	flag.Parse()

	if err := run(*configPath, *openID); err != nil {
		fmt.Fprintf(os.Stderr, "remind: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, openID string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	log, err := newLogger(cfg.LogPath)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// A store that cannot open is fatal; running without durability would
	// silently drop reminders.
	repo, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open reminder store: %w", err)
	}
	defer func() { _ = repo.Close() }()

	locale := cfg.Locale
	if locale == "" {
		locale = i18n.Detect()
	}
	bundle := i18n.NewBundle(locale)

	presenter := update.NewProgramPresenter()
	opts := []engine.Option{
		engine.WithInterval(cfg.ScanInterval()),
		engine.WithLogger(log),
		engine.WithCalendar(calendar.Opener{Builder: calendar.LinkBuilder{
			EventBase: cfg.Calendar.EventBase,
			Scheme:    cfg.Calendar.Scheme,
			WebBase:   cfg.Calendar.WebBase,
		}}),
	}
	if cfg.Alert.Notifications {
		opts = append(opts, engine.WithNotifier(engine.ExecNotifier{}))
	}
	eng := engine.New(repo, presenter, opts...)

	m := update.NewModel(update.Deps{
		Engine:      eng,
		Bundle:      bundle,
		Recorder:    capture.NewAudioRecorder(cfg.Audio.Command),
		CueInterval: cfg.CueInterval(),
	})
	prog := tea.NewProgram(m, tea.WithAltScreen())
	presenter.Attach(prog)

	eng.Start()
	defer eng.Stop()

	if openID != "" {
		// Deep-link entry point: present without touching status.
		go func() {
			if err := eng.Open(context.Background(), openID); err != nil {
				log.Warnw("deep link open failed", "id", openID, "err", err)
			}
		}()
	}

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func newLogger(path string) (*zap.SugaredLogger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Sugar(), nil
}
