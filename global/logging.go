package global

import (
	"github.com/hashicorp/go-hclog"
)

var logger hclog.Logger

func init() {
	logger = hclog.New(&hclog.LoggerOptions{
		Name:  "groupexport",
		Level: hclog.Info,
	})
}

// Logger returns the process-wide logger. Packages typically grab a named
// sub-logger from it once, in their own init.
func Logger() hclog.Logger {
	return logger
}

func SetLogLevel(level string) {
	parsed := hclog.LevelFromString(level)
	if parsed == hclog.NoLevel {
		logger.Warn("unknown log level, keeping info", "level", level)
		return
	}

	logger.SetLevel(parsed)
}
