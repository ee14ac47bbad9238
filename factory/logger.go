package factory

import (
	"bytes"
	"io"
	"os"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerConfig struct {
	Debug   bool
	LogFile string
}

// BuildLogger logs to stdout and, when a log file is configured, to a
// size-rotated copy of the same stream. The closer releases the log file.
func BuildLogger(config LoggerConfig) (boshlog.Logger, io.Closer) {
	if config.LogFile == "" {
		return BuildBoshLoggerWithCustomWriter(os.Stdout, config.Debug), nopCloser{}
	}

	logFile := newRotatingLogFile(config.LogFile)
	return BuildBoshLoggerWithCustomWriter(io.MultiWriter(os.Stdout, logFile), config.Debug), logFile
}

func BuildBoshLoggerWithCustomBuffer(debug bool) (boshlog.Logger, *bytes.Buffer) {
	buffer := new(bytes.Buffer)
	return BuildBoshLoggerWithCustomWriter(buffer, debug), buffer
}

func BuildBoshLoggerWithCustomWriter(w io.Writer, debug bool) boshlog.Logger {
	if debug {
		return boshlog.NewWriterLogger(boshlog.LevelDebug, w)
	}
	return boshlog.NewWriterLogger(boshlog.LevelInfo, w)
}

func newRotatingLogFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}
