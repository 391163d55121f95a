package main

import (
	"io"
	"strings"
	"time"

	"github.com/lthibault/log"
	"github.com/sirupsen/logrus"
)

var levels = map[string]log.Level{
	"trace":   log.TraceLevel,
	"t":       log.TraceLevel,
	"debug":   log.DebugLevel,
	"d":       log.DebugLevel,
	"info":    log.InfoLevel,
	"i":       log.InfoLevel,
	"warn":    log.WarnLevel,
	"warning": log.WarnLevel,
	"w":       log.WarnLevel,
	"error":   log.ErrorLevel,
	"err":     log.ErrorLevel,
	"e":       log.ErrorLevel,
	"fatal":   log.FatalLevel,
	"f":       log.FatalLevel,
}

// logger writes diagnostics to w, the command's error stream. Message
// listings and send results go to stdout and never carry log lines.
func logger(loglvl, logfmt string, w io.Writer) log.Logger {
	if logfmt == "none" {
		w = io.Discard
	}

	return log.New(
		log.WithLevel(parseLevel(loglvl)),
		withFormat(logfmt),
		withErrWriter(w))
}

// parseLevel falls back to warn, so a plain run only reports trouble.
func parseLevel(loglvl string) log.Level {
	if level, ok := levels[strings.ToLower(loglvl)]; ok {
		return level
	}
	return log.WarnLevel
}

func withFormat(logfmt string) log.Option {
	var fmt logrus.Formatter

	switch logfmt {
	case "json":
		fmt = &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		}
	default:
		fmt = &logrus.TextFormatter{
			DisableColors: true,
		}
	}
	return log.WithFormatter(fmt)
}

func withErrWriter(w io.Writer) log.Option {
	return log.WithWriter(w)
}
