package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatchbook/internal/config"
	"github.com/alexisbeaulieu97/swatchbook/internal/logger"
	"github.com/alexisbeaulieu97/swatchbook/internal/ports"
	"github.com/alexisbeaulieu97/swatchbook/internal/session"
	"github.com/alexisbeaulieu97/swatchbook/internal/source/dir"
	"github.com/alexisbeaulieu97/swatchbook/internal/source/gitrepo"
	"github.com/alexisbeaulieu97/swatchbook/internal/source/rest"
)

// appContext carries what every command needs once flags are parsed.
type appContext struct {
	cfg     *config.Config
	log     *logger.Logger
	session *session.Session
	closers []io.Closer
}

// newApp loads configuration, applies flag overrides and wires the session to
// the configured source. Interactive commands discard logs unless a log file
// is configured so entries never land on the alternate screen.
func newApp(cmd *cobra.Command, flags *rootFlags, interactive bool) (*appContext, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	app := &appContext{cfg: cfg}
	log, err := app.newLogger(cmd.ErrOrStderr(), interactive)
	if err != nil {
		return nil, err
	}
	log, id := log.WithSession()
	app.log = log.WithFields(map[string]any{"command": cmd.Name()})
	app.log.Debug(fmt.Sprintf("session %s started", id))

	source, sink, err := newBackend(cfg.Source, app.log)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.session = session.New(source, sink, app.log)

	return app, nil
}

// Close releases the log file, if any.
func (a *appContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

func (a *appContext) newLogger(stderr io.Writer, interactive bool) (*logger.Logger, error) {
	opts := logger.Options{Level: a.cfg.Log.Level, HumanReadable: a.cfg.Log.Human, Writer: stderr}
	switch {
	case a.cfg.Log.File != "":
		f, err := os.OpenFile(a.cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.closers = append(a.closers, f)
		opts.Writer = f
	case interactive:
		return logger.Nop(), nil
	}

	log, err := logger.New(opts)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}

// loadConfig reads the configuration file and lets non-empty flags override
// its values before validating the merged result.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	overrides := []struct {
		value string
		dest  *string
	}{
		{flags.sourceType, &cfg.Source.Type},
		{flags.path, &cfg.Source.Path},
		{flags.url, &cfg.Source.URL},
		{flags.ref, &cfg.Source.Ref},
		{flags.logLevel, &cfg.Log.Level},
	}
	for _, o := range overrides {
		if o.value != "" {
			*o.dest = o.value
		}
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newBackend builds the variation source and apply sink for cfg.
func newBackend(cfg config.SourceConfig, log *logger.Logger) (ports.VariationSource, ports.ApplySink, error) {
	switch cfg.Type {
	case config.SourceDir:
		return dir.New(cfg.Path, log), dir.NewSink(cfg.Path), nil
	case config.SourceGit:
		repo := gitrepo.New(cfg.URL, cfg.Ref, cfg.CloneDir(), log)
		return repo, repo, nil
	case config.SourceREST:
		client := rest.New(cfg.URL, rest.Options{
			Timeout: cfg.Timeout,
			Version: version,
			Headers: cfg.Headers,
		})
		return client, client, nil
	default:
		return nil, nil, fmt.Errorf("unsupported source type %q", cfg.Type)
	}
}
