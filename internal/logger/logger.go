package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

type LogLevel int

type Logger struct {
	logLevel LogLevel
	logDir   string
	session  string
	logger   *log.Logger
}

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

// ParseLevel maps a config string such as "warn" to a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	for level, name := range levelNames {
		if strings.EqualFold(s, name) {
			return level, nil
		}
	}
	return ERROR, fmt.Errorf("unknown log level %q", s)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*Logger{}
)

// Get returns the logger registered under name, or nil. All Logger
// methods accept a nil receiver, so callers may log unconditionally.
func Get(name string) (logger *Logger) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	if ln, ok := registry[name]; ok {
		return ln
	}

	return nil
}

// New registers a file logger writing to logDir. An existing logger with
// the same name is returned unchanged.
func New(name string, logDir string, logLevel LogLevel) (*Logger, error) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if logger, exists := registry[name]; exists {
		return logger, nil
	}

	logger, err := setupLogger(logLevel, logDir)
	if err != nil {
		return nil, err
	}

	registry[name] = logger
	return logger, nil
}

// NewWithWriter registers a logger writing to w instead of a file.
func NewWithWriter(name string, w io.Writer, logLevel LogLevel) *Logger {
	registryMu.Lock()
	defer registryMu.Unlock()

	logger := &Logger{
		logLevel: logLevel,
		logger:   log.New(w, "", log.Ldate|log.Ltime|log.Lshortfile),
	}

	registry[name] = logger
	return logger
}

func (l *Logger) init() error {
	if err := os.MkdirAll(l.logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02")

	logFile, err := os.OpenFile(
		filepath.Join(l.logDir, fmt.Sprintf("Plox-%s.log", timestamp)),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.logger = log.New(logFile, "", log.Ldate|log.Ltime|log.Lshortfile)

	return nil
}

func setupLogger(logLevel LogLevel, logDir string) (*Logger, error) {
	logger := &Logger{
		logLevel: logLevel,
		logDir:   logDir,
		logger:   nil,
	}

	if err := logger.init(); err != nil {
		return nil, err
	}

	return logger, nil
}

// WithSession returns a copy of l that prefixes every line with the
// given session id. The copy is not registered.
func (l *Logger) WithSession(id string) *Logger {
	if l == nil {
		return nil
	}
	cp := *l
	cp.session = id
	return &cp
}

func (l *Logger) output(level LogLevel, format string, v ...any) {
	if l == nil || l.logger == nil || level < l.logLevel {
		return
	}
	prefix := level.String() + ": "
	if l.session != "" {
		prefix += "[" + l.session + "] "
	}
	// calldepth 3 reports the caller of Info/Debug/...
	_ = l.logger.Output(3, prefix+fmt.Sprintf(format, v...))
}

func (l *Logger) Debug(format string, v ...any) {
	l.output(DEBUG, format, v...)
}

func (l *Logger) Info(format string, v ...any) {
	l.output(INFO, format, v...)
}

func (l *Logger) Warn(format string, v ...any) {
	l.output(WARN, format, v...)
}

func (l *Logger) Error(format string, v ...any) {
	l.output(ERROR, format, v...)
}

func ResetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry = map[string]*Logger{}
}
