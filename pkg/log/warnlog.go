package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	scierr "github.com/scistats/scistats/pkg/errors"
)

// SetupWarnLogger installs a zerolog-backed sink for library warnings.
// Warning types that implement zerolog.LogObjectMarshaler are embedded as
// structured objects; anything else is logged with the error field.
//
// Passing nil for w logs to standard error.
func SetupWarnLogger(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logger := zerolog.New(w).With().Timestamp().Str("source", "scistats").Logger()

	scierr.SetZerologWarnFunc(func(warning error) {
		event := logger.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event.EmbedObject(obj).Msg("statistical warning")
			return
		}
		event.Err(warning).Msg("statistical warning")
	})
}
