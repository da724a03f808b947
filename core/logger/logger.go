package logger

import "sync"

// LogFormat is format type
type LogFormat string

const (
	TextFormat LogFormat = "text"
	JSONFormat LogFormat = "json"
)

// LogLevel is Logger Level type
type LogLevel string

const (
	// TraceLevel Level. Designates finer-grained informational events than the Debug.
	TraceLevel LogLevel = "trace"
	// DebugLevel Level. Usually only enabled when debugging. Very verbose logging.
	DebugLevel LogLevel = "debug"
	// InfoLevel is the default logging priority.
	// General operational entries about what's going on inside the application.
	InfoLevel LogLevel = "info"
	// WarnLevel Level. Non-critical entries that deserve eyes.
	WarnLevel LogLevel = "warn"
	// ErrorLevel Level. Logs. Used for errors that should definitely be noted.
	ErrorLevel LogLevel = "error"
	// FatalLevel Level. Logs and then calls `logger.Exit(1)`. highest level of severity.
	FatalLevel LogLevel = "fatal"
)

type ILogger interface {
	WithFields(map[string]any) ILogger
	Trace(args ...any)
	Tracef(format string, args ...any)
	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	Fatal(args ...any)
	Fatalf(format string, args ...any)
	GetLevel() LogLevel
	IsLevelEnabled(level LogLevel) bool
}

var (
	mu            sync.RWMutex
	defaultLogger ILogger
)

func Default() ILogger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

func SetDefault(logger ILogger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = logger
}
