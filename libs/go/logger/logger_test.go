package logger

import (
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	previous := Log
	setLogger(zap.New(core, zap.AddCaller()))
	t.Cleanup(func() {
		if previous != nil {
			setLogger(previous)
		}
	})
	return logs
}

func TestHelpersReportTheirCaller(t *testing.T) {
	logs := observe(t)

	Info("info")
	Warn("warn")
	Debug("debug")
	Error("error")

	require.Equal(t, 4, logs.Len())
	for _, entry := range logs.All() {
		assert.Equal(t, "logger_test.go", filepath.Base(entry.Caller.File), entry.Message)
	}
}

func TestGlobalLoggerReportsItsCaller(t *testing.T) {
	logs := observe(t)

	Log.Info("direct")
	With(zap.String("k", "v")).Info("child")

	require.Equal(t, 2, logs.Len())
	for _, entry := range logs.All() {
		assert.Equal(t, "logger_test.go", filepath.Base(entry.Caller.File), entry.Message)
	}
}

func TestFieldHelpers(t *testing.T) {
	logs := observe(t)
	account := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	taskID := uuid.MustParse("6f1c2d4e-0000-4000-8000-000000000001")

	Info("relay", Account(account), Relayer(account), Nonce(7), TaskID(taskID), CorrelationID("req-1"))

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, account.Hex(), fields["account"])
	assert.Equal(t, account.Hex(), fields["relayer"])
	assert.Equal(t, uint64(7), fields["nonce"])
	assert.Equal(t, taskID.String(), fields["task_id"])
	assert.Equal(t, "req-1", fields["correlation_id"])
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"WARNING": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"fatal":   zapcore.FatalLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestInitLoggerAttachesDeploymentFields(t *testing.T) {
	t.Setenv("ROUTER_MODE", "chain")
	t.Setenv("NONCE_BACKEND", "memory")
	previous := Log
	t.Cleanup(func() {
		if previous != nil {
			setLogger(previous)
		}
	})

	InitLogger("prod")

	require.NotNil(t, Log)
	assert.False(t, Log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Log.Core().Enabled(zapcore.InfoLevel))
}
