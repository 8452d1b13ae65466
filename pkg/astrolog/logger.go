package astrolog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timeFormat = "2006-01-02 15:04:05.000"

var mu sync.Mutex

// Config controls where log output goes. The env tags are read by astroenv.
type Config struct {
	Level       string `env:"LOG_LEVEL,info" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	ToFile      bool   `env:"LOG_TO_FILE,false"`
	Dir         string `env:"LOG_DIR,./logs"`
	FileName    string `env:"LOG_FILE_NAME,astrobox"`
	Formatted   bool   `env:"LOG_FORMATTED,true"`
	MaxFileSize int    `env:"LOG_MAX_FILE_MB,10" validate:"gte=0"`
	MaxFiles    int    `env:"LOG_MAX_FILES,7" validate:"gte=0"`
}

// =============================
// Console Writer
// =============================

// consoleWriter reports len(p) back to zerolog: the console output is a
// reformatted line of a different length and zerolog treats that as a
// short write.
type consoleWriter struct {
	zerolog.ConsoleWriter
}

func (c consoleWriter) WriteLevel(_ zerolog.Level, p []byte) (int, error) {
	_, err := c.ConsoleWriter.Write(p)
	return len(p), err
}

// =============================
// File Writer
// =============================

// fileWriter writes to a rotating file, optionally as plain text lines
// instead of JSON.
type fileWriter struct {
	*lumberjack.Logger
	formatted bool
}

func (f fileWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if !f.formatted {
		return f.Logger.Write(p)
	}
	line, err := formatLine(level, p)
	if err != nil {
		return f.Logger.Write(p)
	}
	_, err = f.Logger.Write([]byte(line))
	return len(p), err
}

// =============================
// Formatting Helpers
// =============================

// formatLine turns one JSON log entry into
// "time | level | caller | message | key=value ...".
func formatLine(level zerolog.Level, p []byte) (string, error) {
	var entry map[string]interface{}
	if err := json.Unmarshal(p, &entry); err != nil {
		return "", err
	}

	ts, _ := entry[zerolog.TimestampFieldName].(string)
	msg, _ := entry[zerolog.MessageFieldName].(string)
	caller, _ := entry[zerolog.CallerFieldName].(string)

	return fmt.Sprintf("%s | %-5s | %-25s | %s | %s\n",
		strings.Replace(ts, "T", " ", 1),
		level.String(),
		caller,
		msg,
		strings.Join(extraFields(entry), " "),
	), nil
}

func extraFields(entry map[string]interface{}) []string {
	var extras []string
	for k, v := range entry {
		switch k {
		case zerolog.TimestampFieldName, zerolog.MessageFieldName,
			zerolog.LevelFieldName, zerolog.CallerFieldName:
			continue
		}
		extras = append(extras, fmt.Sprintf("%s=%v", k, v))
	}
	sort.Strings(extras)
	return extras
}

// shortCaller turns "pkg/astrobox/crop.go" into "crop".
func shortCaller(file string) string {
	return strings.TrimSuffix(filepath.Base(filepath.ToSlash(file)), ".go")
}

// =============================
// File Cleanup
// =============================

// pruneLogFiles removes the oldest *.log files in dir until at most keep
// remain. keep <= 0 disables pruning.
func pruneLogFiles(dir string, keep int) error {
	if keep <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	type logFile struct {
		name string
		mod  time.Time
	}
	var files []logFile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".log") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, logFile{e.Name(), info.ModTime()})
	}
	if len(files) <= keep {
		return nil
	}

	sort.Slice(files, func(i, j int) bool { return files[i].mod.Before(files[j].mod) })
	for _, f := range files[:len(files)-keep] {
		if err := os.Remove(filepath.Join(dir, f.name)); err != nil {
			log.Warn().Err(err).Str("file", f.name).Msg("could not remove old log file")
		}
	}
	return nil
}

// =============================
// File Builder
// =============================

// newFileWriter opens today's log file in cfg.Dir. Every run on the same
// day appends to the same file.
func newFileWriter(cfg Config) (*fileWriter, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	if err := pruneLogFiles(cfg.Dir, cfg.MaxFiles); err != nil {
		log.Warn().Err(err).Msg("could not prune log files")
	}

	suffix := "_json"
	if cfg.Formatted {
		suffix = ""
	}
	name := fmt.Sprintf("%s_%s%s.log", cfg.FileName, time.Now().Format("02-01-2006"), suffix)

	lj := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, name),
		MaxSize:    cfg.MaxFileSize,
		MaxBackups: 3,
		MaxAge:     30,
	}
	_, _ = fmt.Fprintf(lj, "\n──── started %s ────\n\n", time.Now().Format("2006-01-02 15:04:05"))

	return &fileWriter{Logger: lj, formatted: cfg.Formatted}, nil
}

// =============================
// Init Logger
// =============================

// Init installs the global zerolog logger: a coloured console writer on
// stderr plus, if cfg.ToFile is set, a rotating log file. A file that
// cannot be opened is reported on the console and skipped.
func Init(cfg Config) zerolog.Logger {
	zerolog.TimeFieldFormat = timeFormat
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		return fmt.Sprintf("%s:%d", shortCaller(file), line)
	}

	writers := []io.Writer{consoleWriter{zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: timeFormat,
	}}}

	var fileErr error
	if cfg.ToFile {
		fw, err := newFileWriter(cfg)
		if err != nil {
			fileErr = err
		} else {
			writers = append(writers, fw)
		}
	}

	mu.Lock()
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Caller().
		Logger()
	logger := log.Logger
	mu.Unlock()

	SetLevel(cfg.Level)
	if fileErr != nil {
		logger.Error().Err(fileErr).Msg("file logging disabled")
	}
	return logger
}

// =============================
// Log Level
// =============================

// Logger returns the current global logger.
func Logger() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return log.Logger
}

// SetLevel sets the global level from its name. Unknown names mean info.
func SetLevel(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}
