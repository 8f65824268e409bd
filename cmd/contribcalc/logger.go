package main

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newZapLogger builds a logger writing to stderr. format is "json" or "console".
func newZapLogger(levelStr, format string) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	switch strings.ToLower(levelStr) {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("run_id", uuid.NewString())), nil
}

// zapCalcLogger adapts zap to calculation.Logger
type zapCalcLogger struct {
	s *zap.SugaredLogger
}

func newCalcLogger(l *zap.Logger) zapCalcLogger {
	return zapCalcLogger{s: l.Named("calculation").Sugar()}
}

func (z zapCalcLogger) Debugf(format string, args ...any) { z.s.Debugf(format, args...) }
func (z zapCalcLogger) Infof(format string, args ...any)  { z.s.Infof(format, args...) }
func (z zapCalcLogger) Warnf(format string, args ...any)  { z.s.Warnf(format, args...) }
func (z zapCalcLogger) Errorf(format string, args ...any) { z.s.Errorf(format, args...) }
