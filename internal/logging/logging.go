package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"twentyone/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	mu     sync.Mutex
	output io.Writer = os.Stderr
	closer io.Closer
)

// Init configures the global zerolog logger. Logs never share stdout with the
// table: they go to stderr, or to LOG_FILE when set.
func Init(cfg config.LogConfig) {
	level := zerolog.WarnLevel
	if v := strings.TrimSpace(cfg.Level); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}

	var w io.Writer = os.Stderr
	var fileErr error
	if cfg.File != "" {
		fw, err := newSizeLimitedWriter(cfg.File, cfg.MaxMB)
		if err != nil {
			fileErr = err
		} else {
			w = fw
			setCloser(fw)
		}
	}
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, NoColor: cfg.File != ""}
	}

	mu.Lock()
	output = w
	mu.Unlock()

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(w).With().Timestamp().Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(cfg.SampleEvery)})
	}
	log.Logger = logger

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", cfg.File).Msg("log file unavailable; logging to stderr")
	}
}

// Writer is where the global logger writes; other loggers (slog) share it.
func Writer() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return output
}

// Close releases the log file, if one was opened.
func Close() error {
	mu.Lock()
	c := closer
	closer = nil
	mu.Unlock()
	if c == nil {
		return nil
	}
	return c.Close()
}

func setCloser(c io.Closer) {
	mu.Lock()
	prev := closer
	closer = c
	mu.Unlock()
	if prev != nil {
		_ = prev.Close()
	}
}
