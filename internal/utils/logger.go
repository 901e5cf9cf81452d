package utils

import (
	"os"

	"github.com/charmbracelet/log"
)

type LogLevel = log.Level

const (
	LevelDebug = log.DebugLevel
	LevelInfo  = log.InfoLevel
	LevelWarn  = log.WarnLevel
	LevelError = log.ErrorLevel
)

var (
	DebugMode      bool
	ShowRaylibInfo bool
	ShowDebugUI    bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           LevelInfo,
	})
)

// SetLevel changes the minimum level that reaches the output.
func SetLevel(level LogLevel) {
	logger.SetLevel(level)
}

func CurrentLevel() LogLevel {
	return logger.GetLevel()
}

func Info(format string, v ...interface{})  { logger.Infof(format, v...) }
func Debug(format string, v ...interface{}) { logger.Debugf(format, v...) }
func Warn(format string, v ...interface{})  { logger.Warnf(format, v...) }
func Error(format string, v ...interface{}) { logger.Errorf(format, v...) }

// RaylibLogCallback routes raylib's trace log into the shared logger.
func RaylibLogCallback(level int, text string) {
	raylib := logger.WithPrefix("raylib")
	switch level {
	case 1, 2: // LOG_TRACE, LOG_DEBUG
		raylib.Debug(text)
	case 3: // LOG_INFO
		if ShowRaylibInfo || CurrentLevel() <= LevelDebug {
			raylib.Info(text)
		}
	case 4: // LOG_WARNING
		raylib.Warn(text)
	case 5, 6: // LOG_ERROR, LOG_FATAL
		raylib.Error(text)
	}
}
