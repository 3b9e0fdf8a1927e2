package xlog

import (
	"bytes"
	"io"
	"log/slog"

	slogzerolog "github.com/samber/slog-zerolog/v2"
)

// TextAdapter turns plain text writes into one log event per line.
type TextAdapter struct {
	logger *Logger
	level  Level
	buf    bytes.Buffer
}

func (w *TextAdapter) Write(p []byte) (n int, err error) {
	w.buf.Write(p)
	for {
		line, err := w.buf.ReadBytes('\n')
		if err == io.EOF {
			// Keep the partial line for the next write.
			rest := append([]byte(nil), line...)
			w.buf.Reset()
			w.buf.Write(rest)
			break
		}
		if line = bytes.TrimRight(line, "\r\n"); len(line) != 0 {
			w.logger.WithLevel(w.level).Msg(string(line))
		}
	}
	return len(p), nil
}

// Creates a new writer that forwards text lines to the logger.
func ToTextWriter(logger *Logger, level Level) io.Writer {
	return &TextAdapter{logger: logger, level: level}
}

// Creates a new slog.Logger that writes to the logger.
func ToSlog(logger *Logger) *slog.Logger {
	return slog.New(slogzerolog.Option{
		Logger: logger,
	}.NewZerologHandler())
}
