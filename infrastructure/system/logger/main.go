package logger

import (
	"github.com/sirupsen/logrus"
	"io"
	"os"
)

// VerboseEnv enables debug logging when set to "true".
const VerboseEnv = "STIGNORE_LOG_VERBOSE"

func NewLogger(out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if os.Getenv(VerboseEnv) == "true" {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// Silence drops every entry from now on.
func Silence(log *logrus.Logger) {
	log.SetOutput(io.Discard)
}
