package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

func TestNewGormLogger(t *testing.T) {
	l := NewGormLogger(zap.NewNop(), gormlogger.Warn)

	assert.NotNil(t, l)
	assert.Equal(t, gormlogger.Warn, l.logLevel)
	assert.True(t, l.ignoreRecordNotFoundError)
}

func TestGormLogger_LogMode(t *testing.T) {
	l := NewGormLogger(zap.NewNop(), gormlogger.Warn)

	changed := l.LogMode(gormlogger.Info)

	assert.NotSame(t, l, changed)
	assert.Equal(t, gormlogger.Warn, l.logLevel)
}

func TestGormLogger_Trace_SQLError(t *testing.T) {
	zapLogger, buf := newCaptureLogger()
	l := NewGormLogger(zapLogger, gormlogger.Error)

	l.Trace(context.Background(), time.Now(),
		func() (string, int64) { return "SELECT 1", 0 },
		errors.New("syntax error"))

	assert.Contains(t, buf.String(), `"msg":"SQL Error"`)
	assert.Contains(t, buf.String(), "syntax error")
}

func TestGormLogger_Trace_IgnoresRecordNotFound(t *testing.T) {
	zapLogger, buf := newCaptureLogger()
	l := NewGormLogger(zapLogger, gormlogger.Error)

	l.Trace(context.Background(), time.Now(),
		func() (string, int64) { return "SELECT 1", 0 },
		gormlogger.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormLogger_Trace_SilentLogsNothing(t *testing.T) {
	zapLogger, buf := newCaptureLogger()
	l := NewGormLogger(zapLogger, gormlogger.Silent)

	l.Trace(context.Background(), time.Now(),
		func() (string, int64) { return "SELECT 1", 1 },
		nil)

	assert.Empty(t, buf.String())
}

func TestMapGormLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected gormlogger.LogLevel
	}{
		{"silent", gormlogger.Silent},
		{"error", gormlogger.Error},
		{"warn", gormlogger.Warn},
		{"info", gormlogger.Info},
		{"debug", gormlogger.Info},
		{"unknown", gormlogger.Warn},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapGormLogLevel(tt.level))
		})
	}
}
