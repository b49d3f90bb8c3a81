// Package logs configures the logrus output of the light client binaries,
// including an optional log file that receives every entry written to stdout.
package logs

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	joonix "github.com/joonix/log"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Formats lists the accepted values of the log format flags.
var Formats = []string{"text", "fluentd", "json"}

var _ = logrus.Hook(&WriterHook{})

// WriterHook writes every entry of the given levels to Logger.
type WriterHook struct {
	LogLevels []logrus.Level
	Logger    *logrus.Logger
}

// Fire formats the entry with the hook logger and writes it.
func (hook *WriterHook) Fire(entry *logrus.Entry) error {
	hook.Logger.WithFields(entry.Data).WithTime(entry.Time).Log(entry.Level, entry.Message)
	return nil
}

// Levels defines on which log levels this hook would trigger.
func (hook *WriterHook) Levels() []logrus.Level {
	return hook.LogLevels
}

// NewFormatter returns the logrus formatter for a format name.
func NewFormatter(format string, disableColors bool) (logrus.Formatter, error) {
	switch format {
	case "text":
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = "2006-01-02 15:04:05"
		formatter.FullTimestamp = true
		formatter.DisableColors = disableColors
		return formatter, nil
	case "fluentd":
		return joonix.NewFormatter(), nil
	case "json":
		return &logrus.JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown log format %v", format)
	}
}

// ConfigurePersistentLogging adds a hook that appends every log entry to
// logFileName, formatted with format. Missing parent directories are created.
func ConfigurePersistentLogging(logFileName, format string) error {
	logrus.WithField("logFileName", logFileName).Info("Logs will be made persistent")
	formatter, err := NewFormatter(format, true)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(logFileName), 0700); err != nil {
		return errors.Wrap(err, "could not create log directory")
	}
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) // #nosec G304
	if err != nil {
		return err
	}
	fileLogger := logrus.New()
	fileLogger.SetOutput(f)
	fileLogger.SetFormatter(formatter)
	fileLogger.SetLevel(logrus.TraceLevel)
	logrus.AddHook(&WriterHook{
		LogLevels: logrus.AllLevels,
		Logger:    fileLogger,
	})
	logrus.Info("File logging initialized")
	return nil
}

// MaskCredentialsLogging masks the url credentials before logging.
// [scheme:][//[userinfo@]host][/]path[?query][#fragment] -->  [scheme:][//[***]host][/***][#***]
// A string that does not parse as a URL is returned as is.
func MaskCredentialsLogging(currUrl string) string {
	masked := currUrl
	u, err := url.Parse(currUrl)
	if err != nil {
		return currUrl
	}
	if u.User != nil {
		masked = strings.Replace(masked, u.User.String(), "***", 1)
	}
	if len(u.RequestURI()) > 1 {
		masked = strings.Replace(masked, u.RequestURI(), "/***", 1)
	}
	if len(u.Fragment) > 0 {
		masked = strings.Replace(masked, u.RawFragment, "***", 1)
	}
	return masked
}
