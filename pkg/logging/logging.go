package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger points the global logger at stderr and the shinydir log file.
// Verbosity 0 shows warnings, each -v lowers the threshold one level.
func SetupLogger(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}

	writers := []io.Writer{consoleWriter}
	logFile := getLogFilePath()
	handle, err := setupLogFile(logFile)
	if err == nil {
		writers = append(writers, handle)
	}

	// Every invocation gets its own run id so runs can be told apart in the shared log file
	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger()

	if err != nil {
		log.Warn().Err(err).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}

	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Str("log_file", logFile).Msg("Logging to console and file")
}

// GetLogger returns a logger tagged with the component name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// getLogFilePath lives under XDG_STATE_HOME, falling back to ~/.local/state
func getLogFilePath() string {
	return filepath.Join(xdg.StateHome, "shinydir", "shinydir.log")
}

func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	return file, nil
}

// Run tracks one shinydir command invocation so the log file carries a
// start and finish line per command with the tallies a user asks about later
type Run struct {
	logger  zerolog.Logger
	rules   int
	started time.Time
}

// StartRun logs the start of a command against target. An empty target
// means every configured rule.
func StartRun(logger zerolog.Logger, command, target string, dryRun bool) *Run {
	r := &Run{
		logger:  logger.With().Str("command", command).Bool("dry_run", dryRun).Logger(),
		started: time.Now(),
	}
	r.logger.Debug().Str("target", target).Msg("Run started")
	return r
}

// SetRules records how many rules the run selected
func (r *Run) SetRules(n int) {
	r.rules = n
}

// Finish logs the outcome. ok counts entries resolved or moved.
func (r *Run) Finish(ok, failed int) {
	event := r.logger.Debug()
	if failed > 0 {
		event = r.logger.Info()
	}
	event.
		Int("rules", r.rules).
		Int("ok", ok).
		Int("failed", failed).
		Dur("duration", time.Since(r.started)).
		Msg("Run finished")
}

// Abort logs a run that ended with a fatal error before producing a plan
func (r *Run) Abort(err error) {
	r.logger.Warn().
		Err(err).
		Int("rules", r.rules).
		Dur("duration", time.Since(r.started)).
		Msg("Run aborted")
}
