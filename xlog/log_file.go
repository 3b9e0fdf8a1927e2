package xlog

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	LogRetentionDays = 28
	LogMaxSizeMB     = 16
	LogCompress      = false
)

func FileWriter(name string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename: name,
		MaxSize:  LogMaxSizeMB,
		MaxAge:   LogRetentionDays,
		Compress: LogCompress,
	}
}

// Setup rebuilds the console writer from the parsed flags and, if logFile is
// set, tees every event into it as JSON. The returned closer flushes the file.
func Setup(logFile string) io.Closer {
	SetLoggerLevel(LevelDebug)
	console := StderrWriter()
	if logFile == "" {
		SetDefaultOutput(console)
		return noCloser{}
	}
	file := FileWriter(logFile)
	SetDefaultOutput(console, file)
	return file
}

type noCloser struct{}

func (noCloser) Close() error { return nil }
