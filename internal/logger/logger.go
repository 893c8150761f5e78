// README: Process-wide zerolog setup.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to stdout, tagged with the component name.
// Unknown level strings fall back to info.
func New(component, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}
