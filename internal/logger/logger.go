// Package logger собирает zap-логгер сервиса.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New создаёт JSON-логгер с заданным уровнем. Если указан file, записи
// дополнительно пишутся в файл с ротацией.
func New(level, file string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	stdout := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(os.Stdout),
		lvl,
	)

	if file == "" {
		return zap.New(stdout, zap.AddCaller()), nil
	}

	rotating := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    64,
		MaxBackups: 7,
		MaxAge:     7,
	}

	core := zapcore.NewTee(
		stdout,
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotating), lvl),
	)
	return zap.New(core, zap.AddCaller()), nil
}
