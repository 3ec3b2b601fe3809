package logger

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level   string
	Service string
	// Console mirrors every entry to stderr.
	Console bool
}

// ParseLevel falls back to info for unknown or empty levels.
func ParseLevel(level string) zapcore.Level {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}

func NewLogger(cfg Config, fileSyncer *ReopenableWriteSyncer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var sink zapcore.WriteSyncer = fileSyncer
	if cfg.Console {
		sink = zapcore.NewMultiWriteSyncer(fileSyncer, zapcore.Lock(os.Stderr))
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), sink, ParseLevel(cfg.Level))
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	if cfg.Service != "" {
		logger = logger.With(zap.String("service.name", cfg.Service))
	}
	return logger
}

// ReloadOnSIGHUP reopens the log file whenever logrotate signals the process. The returned func stops watching.
func ReloadOnSIGHUP(ws *ReopenableWriteSyncer, logger *zap.Logger) func() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-c:
				logger.Info("receive logrotate SIGHUP, reloading log file")
				if err := ws.Reload(); err != nil {
					logger.Error("failed to reload log file", zap.Error(err))
				} else {
					logger.Info("successfully reloaded log file")
				}
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(c)
		close(done)
	}
}
