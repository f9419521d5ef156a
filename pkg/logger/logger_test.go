package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{level: "debug", want: zapcore.DebugLevel},
		{level: "warn", want: zapcore.WarnLevel},
		{level: "error", want: zapcore.ErrorLevel},
		{level: "chatty", want: zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l, err := New(tt.level)
			if err != nil {
				t.Fatalf("New(%q): %v", tt.level, err)
			}
			if !l.Core().Enabled(tt.want) {
				t.Errorf("level %v not enabled", tt.want)
			}
			if tt.want > zapcore.DebugLevel && l.Core().Enabled(tt.want-1) {
				t.Errorf("level below %v should be disabled", tt.want)
			}
		})
	}
}

func TestGetInitialisesOnce(t *testing.T) {
	a := Get()
	b := Get()
	if a == nil || a != b {
		t.Fatal("Get should return the same initialised logger")
	}
	if Named("analytics") == nil {
		t.Fatal("Named returned nil")
	}
}
