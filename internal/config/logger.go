package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogConfig : niveau et format des logs (stderr).
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // text | json
}

func (l *LogConfig) normalize() {
	l.Level = strings.TrimSpace(strings.ToLower(l.Level))
	if l.Level == "" {
		l.Level = "info"
	}
	l.Format = strings.TrimSpace(strings.ToLower(l.Format))
	if l.Format == "" {
		l.Format = "text"
	}
}

// Logger construit le logger logrus correspondant, écrivant sur stderr.
func (l LogConfig) Logger() (*logrus.Logger, error) {
	return l.LoggerTo(os.Stderr)
}

// LoggerTo construit le logger en écrivant sur out.
func (l LogConfig) LoggerTo(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("niveau de log invalide %q : %w", l.Level, err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	switch l.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	default:
		return nil, fmt.Errorf("format de log inconnu %q (attendu : text ou json)", l.Format)
	}
	return logger, nil
}
