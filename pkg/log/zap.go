package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a Logger from cfg. Invalid levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var encCfg zapcore.EncoderConfig
	if cfg.Mode == ModeProduction {
		encCfg = zap.NewProductionEncoderConfig()
	} else {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != EncodingJSON {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(level))
	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return l.sugar
	}
	s := l.sugar
	if id := RunID(ctx); id != "" {
		s = s.With(fieldRunID, id)
	}
	if task := Task(ctx); task != "" {
		s = s.With(fieldTask, task)
	}
	return s
}

// split treats the first argument as the message when it is a string and
// the rest as key-value pairs.
func split(arg []any) (string, []any) {
	if len(arg) == 0 {
		return "", nil
	}
	if msg, ok := arg[0].(string); ok && len(arg)%2 == 1 {
		return msg, arg[1:]
	}
	return "", arg
}

func (l *zapLogger) Debug(ctx context.Context, arg ...any) {
	if msg, kv := split(arg); msg != "" {
		l.with(ctx).Debugw(msg, kv...)
		return
	}
	l.with(ctx).Debug(arg...)
}

func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Debugf(template, arg...)
}

func (l *zapLogger) Info(ctx context.Context, arg ...any) {
	if msg, kv := split(arg); msg != "" {
		l.with(ctx).Infow(msg, kv...)
		return
	}
	l.with(ctx).Info(arg...)
}

func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Infof(template, arg...)
}

func (l *zapLogger) Warn(ctx context.Context, arg ...any) {
	if msg, kv := split(arg); msg != "" {
		l.with(ctx).Warnw(msg, kv...)
		return
	}
	l.with(ctx).Warn(arg...)
}

func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Warnf(template, arg...)
}

func (l *zapLogger) Error(ctx context.Context, arg ...any) {
	if msg, kv := split(arg); msg != "" {
		l.with(ctx).Errorw(msg, kv...)
		return
	}
	l.with(ctx).Error(arg...)
}

func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Errorf(template, arg...)
}

func (l *zapLogger) DPanic(ctx context.Context, arg ...any) {
	l.with(ctx).DPanic(arg...)
}

func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).DPanicf(template, arg...)
}

func (l *zapLogger) Panic(ctx context.Context, arg ...any) {
	l.with(ctx).Panic(arg...)
}

func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Panicf(template, arg...)
}

func (l *zapLogger) Fatal(ctx context.Context, arg ...any) {
	l.with(ctx).Fatal(arg...)
}

func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Fatalf(template, arg...)
}
