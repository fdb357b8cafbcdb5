// Package logging configures the log/slog loggers used by fixmatch.
//
// Library packages never log on their own: they accept a *slog.Logger through
// an option and fall back to Nop. The CLI builds its logger from the
// --log-level and --log-format flags:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.ParseLevel("debug"),
//	    Format: logging.ParseFormat("json"),
//	})
//
//	logger.Debug("loaded criteria", "path", path)
package logging
