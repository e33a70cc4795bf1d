// Package app wires configuration, storage and logging into a tracker
// service for the command-line and terminal front ends.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rgehrsitz/shiftpay/internal/calculation"
	"github.com/rgehrsitz/shiftpay/internal/config"
	"github.com/rgehrsitz/shiftpay/internal/store"
	"github.com/rgehrsitz/shiftpay/internal/tracker"
)

// SlogLogger adapts a *slog.Logger to calculation.Logger.
type SlogLogger struct {
	L *slog.Logger
}

func (s SlogLogger) Debugf(format string, args ...any) { s.L.Debug(fmt.Sprintf(format, args...)) }
func (s SlogLogger) Infof(format string, args ...any)  { s.L.Info(fmt.Sprintf(format, args...)) }
func (s SlogLogger) Warnf(format string, args ...any)  { s.L.Warn(fmt.Sprintf(format, args...)) }
func (s SlogLogger) Errorf(format string, args ...any) { s.L.Error(fmt.Sprintf(format, args...)) }

// ParseLevel maps a config log level to a slog level. Unknown names mean warn.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}

// NewLogger returns a text logger writing to w at the given level.
func NewLogger(w io.Writer, level string) SlogLogger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return SlogLogger{L: slog.New(h).With("app", "shiftpay")}
}

// Options are the command-line overrides applied on top of the loaded config.
type Options struct {
	ConfigFile string
	DataDir    string
	Backend    string
	Debug      bool
	LogOutput  io.Writer
}

// Session is an opened tracker plus the resources behind it.
type Session struct {
	Config  *config.AppConfig
	Service *tracker.Service
	Logger  SlogLogger

	repo *store.Repository
}

// Open loads the app config, applies opts and opens the configured backend.
func Open(opts Options) (*Session, error) {
	cfg, err := config.LoadAppConfig(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if opts.DataDir != "" {
		cfg.DataDir = opts.DataDir
	}
	if opts.Backend != "" {
		cfg.Backend = opts.Backend
	}
	if opts.Debug {
		cfg.LogLevel = "debug"
	}
	if err := config.ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	s, err := store.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store in %s: %w", cfg.Backend, cfg.DataDir, err)
	}
	return NewSession(cfg, s, opts.LogOutput), nil
}

// NewSession builds a session over an already opened store.
func NewSession(cfg *config.AppConfig, s store.Store, logOutput io.Writer) *Session {
	if logOutput == nil {
		logOutput = io.Discard
	}
	logger := NewLogger(logOutput, cfg.LogLevel)
	repo := store.NewRepository(s)
	svc := tracker.NewService(repo, calculation.NewCalculationEngine())
	svc.SetLogger(logger)
	logger.Debugf("opened %s store in %s", cfg.Backend, cfg.DataDir)
	return &Session{Config: cfg, Service: svc, Logger: logger, repo: repo}
}

// Close releases the underlying store.
func (s *Session) Close() error {
	return s.repo.Close()
}
