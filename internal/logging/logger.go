// Package logging constructs the run's logger. Diagnostic output (desktop
// resolution, the synthesized command line) appears at debug level, enabled
// by the RECDEBUG environment variable.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/techtonik/recordscreen/internal/config"
	"github.com/techtonik/recordscreen/internal/term"
)

// New returns a logger configured from cfg: text format with timestamps,
// colors only on a real terminal, debug level when RECDEBUG is set.
func New(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		ForceColors:     term.ColorsEnabled(),
		DisableColors:   !term.ColorsEnabled(),
	})
	if cfg.Debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
