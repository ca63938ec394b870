package libevents

import (
	"io"

	"github.com/rs/zerolog"
)

// NewWriterLogger returns a Logger writing human readable, uncolored lines to w:
//
//	2006-01-02 15:04:05 WRN possible event emitter leak detected: ... component=emitter
func NewWriterLogger(w io.Writer) Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: "2006-01-02 15:04:05",
	}
	return NewZerologLogger(zerolog.New(out).With().Timestamp().Logger())
}
