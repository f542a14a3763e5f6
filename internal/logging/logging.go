// Package logging configures the process-wide logrus logger.
package logging

import "github.com/sirupsen/logrus"

// New returns a logger at the given level. Unknown levels fall back to
// info.
func New(level string) *logrus.Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}
