package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	// EnvPath names the environment variable holding the log file path.
	EnvPath = "GEOMOTION_DEBUG"
	// EnvLevel names the environment variable holding the log level.
	EnvLevel = "GEOMOTION_DEBUG_LEVEL"
)

var (
	logger  *logrus.Logger
	logFile *os.File
	envOnce sync.Once
	mu      sync.Mutex
)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	l.SetLevel(levelFromEnv())
	return l
}

func levelFromEnv() logrus.Level {
	lvl, err := logrus.ParseLevel(os.Getenv(EnvLevel))
	if err != nil {
		return logrus.DebugLevel
	}
	return lvl
}

// Init initializes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	envOnce.Do(func() {})
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	logFile = f
	logger = newLogger(f)
	return nil
}

// SetOutput sends debug messages to w. Pass nil to disable logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	// An explicit output overrides GEOMOTION_DEBUG.
	envOnce.Do(func() {})

	closeLocked()
	if w != nil {
		logger = newLogger(w)
	}
}

// Close closes the debug log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Enabled reports whether debug messages are being written anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	initFromEnvLocked()
	return logger != nil
}

// initFromEnvLocked opens the file named by EnvPath the first time logging
// is used. Caller must hold mu.
func initFromEnvLocked() {
	envOnce.Do(func() {
		if path := os.Getenv(EnvPath); path != "" {
			if err := initLocked(path); err != nil {
				fmt.Fprintf(os.Stderr, "geomotion: %v\n", err)
			}
		}
	})
}

func logAt(level logrus.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	initFromEnvLocked()
	if logger == nil {
		return
	}
	logger.WithField("component", "geom").Logf(level, format, args...)
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	logAt(logrus.DebugLevel, format, args...)
}

// Warn writes a warning-level message to the debug log.
func Warn(format string, args ...any) {
	logAt(logrus.WarnLevel, format, args...)
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}
