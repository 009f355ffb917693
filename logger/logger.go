package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var (
	// Logger is the structured logger shared by all packages of this module
	Logger = newLogger(os.Stderr)
	level  = zerolog.InfoLevel
)

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Str("module", "vif").Logger()
}

// Debug starts a debug level message
func Debug() *zerolog.Event { return Logger.Debug() }

// Info starts an information level message
func Info() *zerolog.Event { return Logger.Info() }

// Warn starts a warning level message
func Warn() *zerolog.Event { return Logger.Warn() }

// Err starts an error level message
func Err() *zerolog.Event { return Logger.Error() }

// SetLogsOutput : すべてのログの出力先を変更する
func SetLogsOutput(w io.Writer) {
	Logger = newLogger(w)
}

// SetLevel : 出力するログの最低レベルを設定する
func SetLevel(l zerolog.Level) {
	level = l
	Logger = Logger.Level(l)
}

// Disable discards every message
func Disable() {
	SetLogsOutput(io.Discard)
}
