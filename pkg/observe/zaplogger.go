package observe

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin zap wrapper carrying the application name on every entry.
type Logger struct {
	appName string
	hook    *SentryHook
	l       *zap.Logger
}

// NewZapLogger builds a JSON-encoded logger writing to the given writers,
// defaulting to stdout.
func NewZapLogger(appName string, writers ...io.Writer) *Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var syncers []zapcore.WriteSyncer
	if len(writers) == 0 {
		syncers = append(syncers, os.Stdout)
	}
	for _, w := range writers {
		syncers = append(syncers, zapcore.AddSync(w))
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg),
		zapcore.NewMultiWriteSyncer(syncers...),
		zapcore.DebugLevel,
	)

	return &Logger{
		appName: appName,
		l:       zap.New(core),
	}
}

// WithSentry attaches a sentry hook; errors logged through Error are also
// forwarded to it.
func (l *Logger) WithSentry(hook *SentryHook) *Logger {
	l.hook = hook
	return l
}

// Stop flushes buffered log entries and the sentry hook, if any.
func (l *Logger) Stop() error {
	if l.hook != nil {
		l.hook.Flush()
	}
	return l.l.Sync()
}

func (l *Logger) Debug(msg string, fields ...map[string]any) {
	l.l.Debug(msg, l.zapFields(fields)...)
}

func (l *Logger) Info(msg string, fields ...map[string]any) {
	l.l.Info(msg, l.zapFields(fields)...)
}

func (l *Logger) Warning(msg string, fields ...map[string]any) {
	l.l.Warn(msg, l.zapFields(fields)...)
}

func (l *Logger) Error(err error, fields ...map[string]any) {
	if l.hook != nil {
		l.hook.CaptureError(err)
	}
	l.l.Error(err.Error(), append(l.zapFields(fields), zap.Error(err))...)
}

func (l *Logger) Fatal(msg string, fields ...map[string]any) {
	l.l.Fatal(msg, l.zapFields(fields)...)
}

func (l *Logger) zapFields(fields []map[string]any) []zap.Field {
	zapFields := []zap.Field{zap.String("app_name", l.appName)}
	if len(fields) > 0 {
		for k, v := range fields[0] {
			zapFields = append(zapFields, zap.Any(k, v))
		}
	}
	return zapFields
}
