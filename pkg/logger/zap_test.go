package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWrapForwardsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := Wrap(zap.New(core)).With(zap.String("component", "analytics"))

	log.Info("computed", zap.Int("products", 3))
	log.Debug("detail")

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "computed", entries[0].Message)
	assert.Equal(t, "analytics", entries[0].ContextMap()["component"])
	assert.Equal(t, int64(3), entries[0].ContextMap()["products"])
}

func TestNewZapLoggerFallsBackOnBadLevel(t *testing.T) {
	log := NewZapLogger(&ZapLoggerConfig{Level: "nonsense", Encoding: "console", DisableStacktrace: true})
	assert.NotNil(t, log)
	log.Info("still works")
}
