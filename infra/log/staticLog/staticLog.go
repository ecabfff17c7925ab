// Package staticLog holds the process-wide logger.
package staticLog

import (
	"io"
	"os"

	"skuld/infra/config"
	"skuld/infra/errorx"
	"skuld/infra/errorx/errCode"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log 默认写 stderr, stdout 留给直方图输出
var Log = newLogger(os.Stderr, logrus.WarnLevel)

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init 按配置重建 Log; 配置了文件时用 lumberjack 滚动
func Init(c config.LogConfig) (io.Closer, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, errorx.Wrap(errCode.INVALID_VALUE, err, "log level")
	}
	if c.File == "" {
		Log = newLogger(os.Stderr, level)
		return nopCloser{}, nil
	}
	rotator := &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAgeDays,
		Compress:   c.Compress,
	}
	Log = newLogger(rotator, level)
	return rotator, nil
}
