package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Hand    []string `json:"hand"`
	Shanten int      `json:"shanten"`
	Correct bool     `json:"correct"`
}

func TestToStruct(t *testing.T) {
	src := payload{Hand: []string{"1m", "0p", "7z"}, Shanten: 2, Correct: true}
	s, err := ToStruct(src)
	require.NoError(t, err)
	assert.Equal(t, float64(2), s.Fields["shanten"].GetNumberValue())
	assert.True(t, s.Fields["correct"].GetBoolValue())
	assert.Len(t, s.Fields["hand"].GetListValue().GetValues(), 3)

	var dst payload
	require.NoError(t, FromStruct(s, &dst))
	assert.Equal(t, src, dst)

	var empty payload
	require.NoError(t, FromStruct(nil, &empty))
	assert.Zero(t, empty)

	_, err = ToStruct([]int{1, 2})
	assert.Error(t, err)
}

func TestFormatter(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "hello",
		Caller: &runtime.Frame{
			File:     "/src/nanikiru/evaluator.go",
			Line:     42,
			Function: "github.com/kevin-chtw/tw_nanikiru/nanikiru.(*Evaluator).EvaluateTiles",
		},
	}
	data, err := (&Formatter{}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01 08:30:00 [warning] evaluator.go:42 EvaluateTiles hello\n", string(data))

	entry.Caller = nil
	data, err = (&Formatter{}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01 08:30:00 [warning] hello\n", string(data))
}

func TestLogger(t *testing.T) {
	dir := t.TempDir()
	l, err := Logger(logrus.InfoLevel, dir)
	require.NoError(t, err)
	l.Debug("hidden")
	l.Info("visible")

	files, err := filepath.Glob(filepath.Join(dir, "*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "[info]")
	assert.Contains(t, string(data), "visible")
	assert.NotContains(t, string(data), "hidden")

	assert.Error(t, InitLogger("loud", dir))
}
