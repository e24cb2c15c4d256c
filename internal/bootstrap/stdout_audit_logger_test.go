package bootstrap_test

import (
	"context"
	"testing"

	"github.com/indocarisinternational/admin-caris/internal/bootstrap"
	"github.com/indocarisinternational/admin-caris/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := bootstrap.NewStdoutAuditLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "REQ-9")
	audit.Log(ctx, bootstrap.AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "bye",
		Meta:    map[string]any{"signal": "terminated"},
	})
	audit.Log(context.Background(), bootstrap.AuditLog{Action: "SERVER_START", Message: "hi"})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "audit", entries[0].LoggerName)

	first := entries[0].ContextMap()
	assert.Equal(t, "SERVER_SHUTDOWN", first["action"])
	assert.Equal(t, "REQ-9", first["request_id"])
	assert.Contains(t, first, "meta")

	second := entries[1].ContextMap()
	assert.NotContains(t, second, "request_id")
	assert.NotContains(t, second, "meta")
}
