package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{" error ", log.ErrorLevel},
		{"FATAL", log.FatalLevel},
		{"", log.WarnLevel},
		{"bogus", log.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, levelFromEnv(tt.in))
		})
	}
}

func TestSetOutputAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(log.InfoLevel)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(log.WarnLevel)
	})

	Debug("hidden")
	assert.Empty(t, buf.String())

	Warn("shown", "window", 7)
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "window=7")
}
