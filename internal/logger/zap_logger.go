package logger

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/leandrodaf/haptic/sdk/contracts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements contracts.Logger on top of Uber's zap.
type ZapLogger struct {
	mu     sync.RWMutex
	logger *zap.Logger
	level  zap.AtomicLevel
	owned  bool   // logger was built here and may be rebuilt by SetDestination
	close  func() // releases the sink of an owned logger
}

// openSink is zap.Open, replaceable in tests.
var openSink = zap.Open

// NewZapLogger creates a production zap logger writing JSON to stderr.
func NewZapLogger() contracts.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	l, closeSink, err := build(level, "stderr")
	if err != nil {
		// The stderr sink cannot realistically fail to open; fall back to silence.
		l, closeSink = zap.NewNop(), func() {}
	}
	return &ZapLogger{logger: l, level: level, owned: true, close: closeSink}
}

// New wraps an existing zap logger. Level filtering via SetLevel is applied
// on top of whatever level the wrapped core enforces.
func New(l *zap.Logger) contracts.Logger {
	return &ZapLogger{
		logger: l.WithOptions(zap.AddCallerSkip(2)),
		level:  zap.NewAtomicLevelAt(zapcore.DebugLevel),
	}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() contracts.Logger {
	return &ZapLogger{logger: zap.NewNop(), level: zap.NewAtomicLevelAt(zapcore.FatalLevel)}
}

// build creates a JSON logger writing to path and returns the func that closes its sink.
func build(level zap.AtomicLevel, path string) (*zap.Logger, func(), error) {
	sink, closeSink, err := openSink(path)
	if err != nil {
		return nil, nil, err
	}

	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "timestamp"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewSamplerWithOptions(
		zapcore.NewCore(zapcore.NewJSONEncoder(enc), sink, level),
		time.Second, 100, 100,
	)
	l := zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(2),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.ErrorOutput(zapcore.Lock(os.Stderr)),
	)
	return l, closeSink, nil
}

// Info logs a message at the INFO level
func (z *ZapLogger) Info(msg string, fields ...contracts.Field) {
	z.log(zapcore.InfoLevel, msg, fields...)
}

// Error logs a message at the ERROR level
func (z *ZapLogger) Error(msg string, fields ...contracts.Field) {
	z.log(zapcore.ErrorLevel, msg, fields...)
}

// Debug logs a message at the DEBUG level
func (z *ZapLogger) Debug(msg string, fields ...contracts.Field) {
	z.log(zapcore.DebugLevel, msg, fields...)
}

// Warn logs a message at the WARN level
func (z *ZapLogger) Warn(msg string, fields ...contracts.Field) {
	z.log(zapcore.WarnLevel, msg, fields...)
}

// Fatal logs a message at the FATAL level and terminates the application
func (z *ZapLogger) Fatal(msg string, fields ...contracts.Field) {
	z.log(zapcore.FatalLevel, msg, fields...)
}

// Field returns a new field builder.
func (z *ZapLogger) Field() contracts.Field {
	return zapField{}
}

// SetLevel sets the minimum level that will be emitted.
func (z *ZapLogger) SetLevel(level contracts.LogLevel) {
	z.level.SetLevel(toZapLevel(level))
}

// SetDestination redirects output to the console or to a file. Only loggers
// created by NewZapLogger can be redirected.
func (z *ZapLogger) SetDestination(dest contracts.LogDestination, filePath ...string) error {
	if !z.owned {
		return fmt.Errorf("cannot redirect an externally supplied zap logger")
	}

	path := "stderr"
	switch dest {
	case contracts.ConsoleLog:
	case contracts.FileLog:
		if len(filePath) == 0 || filePath[0] == "" {
			return fmt.Errorf("file destination requires a path")
		}
		path = filePath[0]
	default:
		return fmt.Errorf("unknown log destination %q", dest)
	}

	l, closeSink, err := build(z.level, path)
	if err != nil {
		return fmt.Errorf("open log destination %s: %w", path, err)
	}

	z.mu.Lock()
	old, oldClose := z.logger, z.close
	z.logger, z.close = l, closeSink
	_ = old.Sync()
	oldClose()
	z.mu.Unlock()
	return nil
}

func (z *ZapLogger) log(level zapcore.Level, msg string, fields ...contracts.Field) {
	if !z.level.Enabled(level) {
		return
	}

	// The read lock spans the write so SetDestination cannot close the sink under it.
	z.mu.RLock()
	defer z.mu.RUnlock()
	l := z.logger

	zf := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if f, ok := f.(zapField); ok && f.set {
			zf = append(zf, f.field)
		}
	}

	switch level {
	case zapcore.DebugLevel:
		l.Debug(msg, zf...)
	case zapcore.InfoLevel:
		l.Info(msg, zf...)
	case zapcore.WarnLevel:
		l.Warn(msg, zf...)
	case zapcore.ErrorLevel:
		l.Error(msg, zf...)
	case zapcore.FatalLevel:
		l.Fatal(msg, zf...)
	}
}

func toZapLevel(level contracts.LogLevel) zapcore.Level {
	switch level {
	case contracts.DebugLevel:
		return zapcore.DebugLevel
	case contracts.WarnLevel:
		return zapcore.WarnLevel
	case contracts.ErrorLevel:
		return zapcore.ErrorLevel
	case contracts.FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// zapField implements contracts.Field
type zapField struct {
	field zap.Field
	set   bool
}

func (zapField) Bool(key string, val bool) contracts.Field {
	return zapField{zap.Bool(key, val), true}
}

func (zapField) Int(key string, val int) contracts.Field {
	return zapField{zap.Int(key, val), true}
}

func (zapField) Float64(key string, val float64) contracts.Field {
	return zapField{zap.Float64(key, val), true}
}

func (zapField) String(key string, val string) contracts.Field {
	return zapField{zap.String(key, val), true}
}

func (zapField) Duration(key string, val time.Duration) contracts.Field {
	return zapField{zap.Duration(key, val), true}
}

func (zapField) Error(key string, val error) contracts.Field {
	return zapField{zap.NamedError(key, val), true}
}

func (zapField) Any(key string, val any) contracts.Field {
	return zapField{zap.Any(key, val), true}
}
