package xlog

import (
	"fmt"
	"io"
	llog "log"
	"log/slog"

	pkgerr "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

type Logger = zerolog.Logger
type Level = zerolog.Level
type LevelWriter = zerolog.LevelWriter
type Context = zerolog.Context
type Event = zerolog.Event

const (
	LevelDebug    = zerolog.DebugLevel
	LevelInfo     = zerolog.InfoLevel
	LevelWarn     = zerolog.WarnLevel
	LevelError    = zerolog.ErrorLevel
	LevelSuppress = zerolog.Disabled
	LevelTrace    = zerolog.TraceLevel
)

var defaultOutput LevelWriter = StderrWriter()

type DefaultWriter struct{}

func (DefaultWriter) Write(p []byte) (n int, err error) { return defaultOutput.Write(p) }
func (DefaultWriter) WriteLevel(l Level, p []byte) (n int, err error) {
	return defaultOutput.WriteLevel(l, p)
}

func Default() *Logger { return &log.Logger }

// Not safe for concurrent use.
func SetDefaultOutput(w ...io.Writer) {
	defaultOutput = zerolog.MultiLevelWriter(w...)
}

func WrapStackError(err error) error {
	return pkgerr.WithStack(err)
}
func NewStackError(msg string) error {
	return pkgerr.New(msg)
}

// Replaces all defaults.
func init() {
	log.Logger = *NewDomain("hosts", DefaultWriter{})

	slog.SetDefault(ToSlog(&log.Logger))
	llog.Default().SetOutput(ToTextWriter(&log.Logger, LevelInfo))

	zerolog.LevelFieldName = "l"
	zerolog.TimestampFieldName = "t"
	zerolog.MessageFieldName = "msg"
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	zerolog.CallerFieldName = DomainFieldName
	zerolog.DefaultContextLogger = &log.Logger
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}

// SetLoggerLevel sets the global logger level.
func SetLoggerLevel(level Level) {
	zerolog.SetGlobalLevel(level)
}

// With creates a child logger with the field added to its context.
func With() Context {
	return log.Logger.With()
}

// Err starts a new message with error level with err as a field if not nil or
// with info level if err is nil.
//
// You must call Msg on the returned event in order to send the event.
func Err(err error) *Event {
	return log.Logger.Err(err)
}

// ErrStack starts a new message with error level with err as a field if not nil or
// with info level if err is nil. The stack trace is attached to the event.
//
// You must call Msg on the returned event in order to send the event.
func ErrStack(err any) *Event {
	if err != nil {
		e, ok := err.(error)
		if !ok {
			e = NewStackError(fmt.Sprint(err))
		} else {
			e = WrapStackError(e)
		}
		return log.Logger.Error().Stack().Err(e)
	}
	return log.Logger.Info()
}

// Debug starts a new message with debug level.
//
// You must call Msg on the returned event in order to send the event.
func Debug() *Event {
	return log.Logger.Debug()
}

// Info starts a new message with info level.
//
// You must call Msg on the returned event in order to send the event.
func Info() *Event {
	return log.Logger.Info()
}

// Warn starts a new message with warn level.
//
// You must call Msg on the returned event in order to send the event.
func Warn() *Event {
	return log.Logger.Warn()
}

// Error starts a new message with error level.
//
// You must call Msg on the returned event in order to send the event.
func Error() *Event {
	return log.Logger.Error()
}
