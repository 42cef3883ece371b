package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	rotateSizeMB  = 20
	rotateBackups = 5
)

// Options selects where tracker logs go. An empty File keeps logs on the
// console only.
type Options struct {
	Level string
	JSON  bool
	File  string
	// Tee also copies file logs to the console.
	Tee bool
	// Console defaults to stdout. The CLI points it at stderr so command
	// output stays clean.
	Console io.Writer
}

// Setup configures the package-level logrus logger and returns the writer
// it now logs to.
func Setup(opts Options) io.Writer {
	var formatter logrus.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	if opts.JSON {
		formatter = &logrus.JSONFormatter{}
	}
	logrus.SetFormatter(formatter)
	logrus.SetLevel(ParseLevel(opts.Level))

	console := opts.Console
	if console == nil {
		console = os.Stdout
	}
	if opts.File == "" {
		logrus.SetOutput(console)
		return console
	}

	file := opts.File
	if filepath.Ext(file) != ".log" {
		file += ".log"
	}
	var out io.Writer = &lumberjack.Logger{
		Filename:   file,
		MaxSize:    rotateSizeMB,
		MaxBackups: rotateBackups,
		LocalTime:  true,
		Compress:   true,
	}
	if opts.Tee {
		out = NewTeeWriter(console, out)
	}
	logrus.SetOutput(out)
	logrus.Infof("[LOG] tracker logs in %s (console copy: %t)", file, opts.Tee)
	return out
}

// ParseLevel maps LOG_LEVEL values to logrus levels. Unknown values fall
// back to info.
func ParseLevel(level string) logrus.Level {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		return lvl
	}
	return logrus.InfoLevel
}

// CommandLevel is the level used by command line tools: never chattier
// than warn.
func CommandLevel(level string) string {
	lvl := ParseLevel(level)
	if lvl > logrus.WarnLevel {
		lvl = logrus.WarnLevel
	}
	return lvl.String()
}
