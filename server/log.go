package server

import "github.com/sirupsen/logrus"

// NewLogger returns the server's default logger: a text-formatted
// logrus.Logger at Info level, matching the `s.log.Debugf(...)` call
// idiom the session layer is built around.
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	return log
}
