package server

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestAuditManagerDispatchesOnSizeThenTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := captureStdout(t, func() {
		m := NewAuditManager(1, 2, 50*time.Millisecond)
		m.Start(ctx)

		// Fill a batch to the brim so it dispatches on size, then push a
		// single trailing entry that has to wait for the timeout flush.
		m.LogEntry(ctx, AuditLogEntry{Handler: "register_exchange", Path: "/exchanges"})
		m.LogEntry(ctx, AuditLogEntry{Handler: "register_return", Path: "/returns"})
		m.LogEntry(ctx, AuditLogEntry{Handler: "get_exchange", Path: "/exchanges/1"})

		time.Sleep(150 * time.Millisecond)
		m.Shutdown(context.Background())
	})

	assert.Equal(t, 2, strings.Count(out, "=== AUDIT BATCH"))
	assert.Contains(t, out, "register_exchange")
	assert.Contains(t, out, "register_return")
	assert.Contains(t, out, "get_exchange")
}

func TestAuditManagerFlushesPendingOnShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := captureStdout(t, func() {
		m := NewAuditManager(1, 10, time.Hour)
		m.Start(ctx)

		m.LogEntry(ctx, AuditLogEntry{Handler: "update_return_flags", Path: "/returns/5/flags"})

		// Give the aggregator a beat to pick the entry up, then shut down
		// before either the size or the timeout trigger could fire.
		time.Sleep(20 * time.Millisecond)
		m.Shutdown(context.Background())
	})

	assert.Contains(t, out, "update_return_flags")
}
