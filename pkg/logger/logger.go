package logger

import (
	"fmt"

	"go.uber.org/zap"
)

var base *zap.Logger

var (
	serviceName = "default"
)

// Init строит продакшен-логгер; вызывается один раз при старте приложения.
func Init() error {
	l, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	base = l
	return nil
}

func SetServiceName(newName string) string {
	oldName := serviceName
	serviceName = newName

	return oldName
}

func Sync() {
	if base != nil {
		_ = base.Sync()
	}
}

func Info(format string, args ...interface{}) {
	logger().Info(fmt.Sprintf(format, args...))
}

func Warn(format string, args ...interface{}) {
	logger().Warn(fmt.Sprintf(format, args...))
}

func Error(format string, args ...interface{}) {
	logger().Error(fmt.Sprintf(format, args...))
}

func Fatal(format string, args ...interface{}) {
	logger().Fatal(fmt.Sprintf(format, args...))
}

func logger() *zap.Logger {
	if base == nil {
		panic("logger is not initialized")
	}
	return base.With(zap.String("service", serviceName))
}
