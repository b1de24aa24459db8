package logger

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var once sync.Once

var logger *zap.SugaredLogger

// Get initializes a zap.SugaredLogger instance if it has not been initialized
// already and returns the same instance for subsequent calls.
// Logs go to stderr so the interactive shell owns stdout. The level defaults
// to WARN and can be changed with LOG_LEVEL; JSON_LOG switches to JSON output.
func Get() *zap.SugaredLogger {
	once.Do(func() {
		logger = zap.New(newCore(os.Getenv("LOG_LEVEL"), os.Getenv("JSON_LOG") != "")).Sugar()
	})

	return logger
}

func newCore(levelEnv string, isJSON bool) zapcore.Core {
	stderr := zapcore.Lock(zapcore.AddSync(os.Stderr))

	level := zap.WarnLevel
	if levelEnv != "" {
		levelFromEnv, err := zapcore.ParseLevel(levelEnv)
		if err != nil {
			log.Println(
				fmt.Errorf("invalid level, defaulting to WARN: %w", err),
			)
		} else {
			level = levelFromEnv
		}
	}

	productionCfg := zap.NewProductionEncoderConfig()
	productionCfg.TimeKey = "timestamp"
	productionCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	developmentCfg := zap.NewDevelopmentEncoderConfig()
	developmentCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	encoder := zapcore.NewConsoleEncoder(developmentCfg)
	if isJSON {
		encoder = zapcore.NewJSONEncoder(productionCfg)
	}

	core := zapcore.NewCore(encoder, stderr, zap.NewAtomicLevelAt(level))

	buildInfo, ok := debug.ReadBuildInfo()
	if ok {
		fields := []zapcore.Field{zap.String("go_version", buildInfo.GoVersion)}
		for _, v := range buildInfo.Settings {
			if v.Key == "vcs.revision" && len(v.Value) >= 7 {
				fields = append(fields, zap.String("git_revision", v.Value[0:7]))
				break
			}
		}

		core = core.With(fields)
	}

	return core
}

// FromCtx returns the Logger associated with the ctx. If no logger
// is associated, the default logger is returned. Extra key/value pairs are
// attached when given.
func FromCtx(ctx context.Context, with ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger)
	if !ok {
		l = Get()
	}

	if len(with) == 0 {
		return l
	}
	return l.With(with...)
}

// WithCtx returns a copy of ctx with the Logger attached.
func WithCtx(ctx context.Context, l *zap.SugaredLogger) context.Context {
	if lp, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok {
		if lp == l {
			// Do not store same logger.
			return ctx
		}
	}

	return context.WithValue(ctx, ctxKey{}, l)
}
