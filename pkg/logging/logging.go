package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arthur-debert/dotinstall/pkg/errors"
)

const (
	// LogFileRel is the log file location relative to the XDG state home.
	LogFileRel = "dotinstall/dotinstall.log"

	// EnvLogFile overrides the log file location. "off" disables it.
	EnvLogFile = "DOTINSTALL_LOG_FILE"
)

// Options configures the global logger.
type Options struct {
	Verbosity int
	// Console receives human readable output. Nil means stderr.
	Console io.Writer
	// File receives JSON lines. Empty means no file.
	File string
}

// SetupLogger logs to stderr and to the log file at the level picked by
// the -v count.
func SetupLogger(verbosity int) {
	Setup(Options{Verbosity: verbosity, File: LogFilePath()})
}

// Setup replaces the global logger.
func Setup(opts Options) {
	zerolog.SetGlobalLevel(levelFor(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}}

	var fileErr error
	if opts.File != "" {
		f, err := openLogFile(opts.File)
		if err == nil {
			writers = append(writers, f)
		}
		fileErr = err
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if opts.Verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", opts.File).Msg("Logging to console only")
	}
	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", opts.File).Msg("Logger initialized")
}

func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogFilePath is $DOTINSTALL_LOG_FILE, or dotinstall.log under the XDG state
// home. It is empty when logging to a file is turned off.
func LogFilePath() string {
	switch v := os.Getenv(EnvLogFile); v {
	case "off":
		return ""
	case "":
		xdg.Reload()
		return filepath.Join(xdg.StateHome, filepath.FromSlash(LogFileRel))
	default:
		return v
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "failed to create log directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileWrite, "failed to open log file")
	}
	return f, nil
}

// Timed logs the start of name and returns a function logging its duration.
func Timed(logger zerolog.Logger, name string) func() {
	start := time.Now()
	logger.Debug().Str("operation", name).Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", name).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
