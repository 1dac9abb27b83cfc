package oslg

import (
	"context"
	"log"
	"sync"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is one diagnostics session: a minimum severity, a monotone status,
// and an insertion-ordered store of entries. Sessions are independent of one
// another; create one per logical unit of work (a model run, a worker).
type Logger struct {
	mu      sync.Mutex
	level   Level
	status  int
	entries []Entry
	trimLen int

	// mirror receives a structured copy of every stored entry. Optional;
	// it observes the session without influencing it.
	mirror *zap.Logger
}

// New initializes and returns a new session based on configuration.
//
// The minimum level defaults to Info and the trim length to 60 when the
// configuration leaves them unset. With cfg.Console enabled, a Zap mirror
// is built with JSON encoding, ISO8601 timestamps and capital level tags,
// writing to stderr.
func New(cfg Config) *Logger {
	trimLen := cfg.TrimLength
	if trimLen <= 0 {
		trimLen = DefaultTrimLength
	}

	l := &Logger{
		level:   ParseLevel(cfg.Level),
		trimLen: trimLen,
	}

	if cfg.Console {
		l.mirror = newConsoleMirror()
	}

	return l
}

func newConsoleMirror() *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(zap.DebugLevel),
		Development:       false,
		DisableCaller:     true,
		DisableStacktrace: true,
		Sampling:          nil,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths: []string{
			"stderr",
		},
		ErrorOutputPaths: []string{
			"stderr",
		},
	}

	mirror, err := config.Build()

	if err != nil {
		log.Fatal(err)
	}

	return mirror
}

// SetMirror replaces the session's structured mirror. Passing nil disables
// mirroring.
func (l *Logger) SetMirror(mirror *zap.Logger) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.mirror = mirror
}

// Level returns the session's minimum stored severity.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// Status returns the maximum severity stored since the last Reset, or 0 for
// an untouched session. Intended as a host application's success/failure
// signal (e.g. an exit code).
func (l *Logger) Status() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Logs returns a copy of the stored entries, in insertion order.
func (l *Logger) Logs() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Len returns the number of stored entries.
func (l *Logger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// IsDebug reports whether the session status is exactly Debug.
func (l *Logger) IsDebug() bool { return l.Status() == int(Debug) }

// IsInfo reports whether the session status is exactly Info.
func (l *Logger) IsInfo() bool { return l.Status() == int(Info) }

// IsWarn reports whether the session status is exactly Warn.
func (l *Logger) IsWarn() bool { return l.Status() == int(Warn) }

// IsError reports whether the session status is exactly Error.
func (l *Logger) IsError() bool { return l.Status() == int(Error) }

// IsFatal reports whether the session status is exactly Fatal.
func (l *Logger) IsFatal() bool { return l.Status() == int(Fatal) }

// SetLevel replaces the session's minimum severity, if lvl is within the
// accepted range. Out-of-range input leaves the level unchanged. Returns the
// resulting level either way.
func (l *Logger) SetLevel(lvl Level) Level {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lvl.valid() {
		l.level = lvl
	}

	return l.level
}

// Log stores a new entry, if the provided arguments are valid.
//
// The message is stripped of surrounding whitespace and truncated to the
// session's trim length. A blank message, an out-of-range level or a level
// below the session minimum is a silent no-op. On success the session status
// rises to lvl if lvl exceeds it. Returns the (possibly updated) status.
func (l *Logger) Log(lvl Level, message string) int {
	status, _ := l.log(lvl, message)
	return status
}

// LogWithContext behaves like Log. When the session has a mirror and ctx
// carries a valid OpenTelemetry span context, the mirrored record
// additionally reports trace_id and span_id. Stored entries are unaffected.
func (l *Logger) LogWithContext(ctx context.Context, lvl Level, message string) int {
	var fields []zap.Field

	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		fields = append(fields,
			zap.String("trace_id", sc.TraceID().String()),
			zap.String("span_id", sc.SpanID().String()),
		)
	}

	status, _ := l.log(lvl, message, fields...)
	return status
}

// log is the single mutation point for status and entries. Both are updated
// under one critical section so callers never observe a partial update.
func (l *Logger) log(lvl Level, message string, fields ...zap.Field) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	message = trim(message, l.trimLen)

	if message == "" || !lvl.valid() || lvl < l.level {
		return l.status, false
	}

	if int(lvl) > l.status {
		l.status = int(lvl)
	}

	l.entries = append(l.entries, Entry{Level: lvl, Message: message})

	if l.mirror != nil {
		l.mirrorEntry(lvl, message, fields)
	}

	return l.status, true
}

// mirrorEntry forwards one stored entry to the Zap mirror. Fatal maps to
// Zap's error level: the mirror must never terminate the process, the
// session status is the failure signal.
func (l *Logger) mirrorEntry(lvl Level, message string, fields []zap.Field) {
	zapLevel := zapcore.InfoLevel

	switch lvl {
	case Debug:
		zapLevel = zapcore.DebugLevel
	case Info:
		zapLevel = zapcore.InfoLevel
	case Warn:
		zapLevel = zapcore.WarnLevel
	case Error:
		zapLevel = zapcore.ErrorLevel
	case Fatal:
		zapLevel = zapcore.ErrorLevel
		fields = append(fields, zap.String("severity", Fatal.String()))
	}

	l.mirror.Log(zapLevel, message, fields...)
}

// Reset wipes the session: status back to 0, entries emptied. The minimum
// level is untouched; Reset returns it.
func (l *Logger) Reset() Level {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.status = 0
	l.entries = nil

	return l.level
}

// Sync flushes the session's mirror, if any. Safe to call on sessions
// without one.
func (l *Logger) Sync() error {
	l.mu.Lock()
	mirror := l.mirror
	l.mu.Unlock()

	if mirror == nil {
		return nil
	}

	return mirror.Sync()
}
