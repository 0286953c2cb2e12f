package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

const (
	logMaxAge   = 7 * 24 * time.Hour
	logRotation = 24 * time.Hour
)

type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(time.DateTime)
	level := strings.ToLower(entry.Level.String())

	if entry.Caller == nil {
		return []byte(fmt.Sprintf("%s [%s] %s\n", timestamp, level, entry.Message)), nil
	}
	file, line, funcName := entry.Caller.File, entry.Caller.Line, entry.Caller.Function
	fileName := filepath.Base(file)
	funcName = funcName[strings.LastIndex(funcName, ".")+1:]

	// 格式化日志
	logMessage := fmt.Sprintf("%s [%s] %s:%d %s %s\n", timestamp, level, fileName, line, funcName, entry.Message)

	return []byte(logMessage), nil
}

// Logger 按天轮转写入 dir 的 logrus 日志，包装成 pitaya 的 Logger
func Logger(level logrus.Level, dir string) (interfaces.Logger, error) {
	writer, err := getWriter(dir)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(writer)
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l), nil
}

// InitLogger 替换 pitaya 的全局 logger.Log，level 如 "debug"、"info"
func InitLogger(level, dir string) error {
	lv, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l, err := Logger(lv, dir)
	if err != nil {
		return err
	}
	logger.SetLogger(l)
	return nil
}

func getWriter(dir string) (*SafeRotateLogs, error) {
	if dir == "" {
		dir = "./logs"
	}
	programName := filepath.Base(os.Args[0])
	logFile := filepath.Join(dir, fmt.Sprintf("%s-%%Y%%m%%d.log", programName))
	// 确保日志目录存在
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	writer, err := newRotateLogs(logFile)
	if err != nil {
		return nil, err
	}
	return &SafeRotateLogs{
		RotateLogs: writer,
		logPattern: logFile,
	}, nil
}

func newRotateLogs(pattern string) (*rotatelogs.RotateLogs, error) {
	return rotatelogs.New(
		pattern,
		rotatelogs.WithMaxAge(logMaxAge),
		rotatelogs.WithRotationTime(logRotation),
	)
}

// SafeRotateLogs 日志文件被删除后自动重建
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
}

func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	if current := s.RotateLogs.CurrentFileName(); current != "" {
		if _, err := os.Stat(current); os.IsNotExist(err) {
			writer, err := newRotateLogs(s.logPattern)
			if err != nil {
				return 0, fmt.Errorf("failed to recreate log writer: %w", err)
			}
			s.RotateLogs = writer
		}
	}
	return s.RotateLogs.Write(p)
}
