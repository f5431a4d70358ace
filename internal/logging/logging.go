package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Logger is the public logger instance accessible from all packages
var Logger *slog.Logger

func init() {
	Logger = discard()
}

// defaultMaxLogFiles mirrors the CLI flag default, used to detect "not set"
const defaultMaxLogFiles = 1000

// Options controls where debug logs go
type Options struct {
	Debug       bool
	DebugFile   string
	MaxLogFiles int
}

// resolveEnv folds inherited HYPERFOCUS_* variables into the options
func resolveEnv(opts Options) Options {
	if os.Getenv("HYPERFOCUS_DEBUG") == "1" {
		opts.Debug = true
	}
	if envFile := os.Getenv("HYPERFOCUS_DEBUG_FILE"); envFile != "" && opts.DebugFile == "" {
		opts.DebugFile = envFile
	}
	if envMax := os.Getenv("HYPERFOCUS_MAX_LOG_FILES"); envMax != "" && opts.MaxLogFiles == defaultMaxLogFiles {
		if parsed, err := strconv.Atoi(envMax); err == nil {
			opts.MaxLogFiles = parsed
		}
	}
	return opts
}

// Initialize sets up the logger based on the debug flag and configuration.
// It returns the path of the log file in use, or "" when logs are discarded.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	opts := resolveEnv(Options{Debug: debug, DebugFile: debugFile, MaxLogFiles: maxLogFiles})

	if !opts.Debug && opts.DebugFile == "" {
		Logger = discard()
		return "", nil
	}

	logFilePath, err := logFileFor(opts)
	if err != nil {
		return "", err
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// Announce the log file only when debug was asked for explicitly, so
	// status bar invocations stay quiet
	if os.Getenv("HYPERFOCUS_DEBUG") == "" {
		Logger.Info("Debug logging initialized", "log_file", logFilePath)
		fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", logFilePath)
	}

	return logFilePath, nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// logFileFor picks the custom debug file, or a fresh uuid-named file in the
// OS log directory after pruning old ones
func logFileFor(opts Options) (string, error) {
	if opts.DebugFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.DebugFile), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return opts.DebugFile, nil
	}

	logDir, err := getLogDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if opts.MaxLogFiles > 0 {
		if err := rotateLogs(logDir, opts.MaxLogFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(logDir, uuid.New().String()+".log"), nil
}

// rotateLogs removes the oldest .log files so that, with the file about to
// be created, at most maxLogFiles remain
func rotateLogs(logDir string, maxLogFiles int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFileInfo struct {
		modTime time.Time
		path    string
	}
	var logFiles []logFileInfo

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFileInfo{
			modTime: info.ModTime(),
			path:    filepath.Join(logDir, entry.Name()),
		})
	}

	if len(logFiles) < maxLogFiles {
		return nil
	}

	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.Before(logFiles[j].modTime)
	})

	numToDelete := len(logFiles) - maxLogFiles + 1
	for i := 0; i < numToDelete && i < len(logFiles); i++ {
		if err := os.Remove(logFiles[i].path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", logFiles[i].path, err)
		}
	}

	return nil
}

// getLogDir returns the OS-specific log directory
func getLogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", "hyperfocus"), nil
	case "linux":
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "hyperfocus"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, "hyperfocus", "logs"), nil
	default:
		return filepath.Join(homeDir, ".hyperfocus", "logs"), nil
	}
}
