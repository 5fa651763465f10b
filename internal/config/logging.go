package config

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupServeLogging routes logrus output to a rotated log file. An empty path
// falls back to the default under ~/.tracefire/logs.
func SetupServeLogging(path string) error {
	if path == "" {
		var err error
		path, err = DefaultServeLogFile()
		if err != nil {
			return err
		}
	}

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	})
	return nil
}
