package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

func TestWithContextAndFromContext(t *testing.T) {
	t.Run("round trips the logger", func(t *testing.T) {
		logger := zap.NewNop()
		ctx := WithContext(context.Background(), logger)

		assert.Equal(t, logger, FromContext(ctx))
	})

	t.Run("falls back to a no-op logger", func(t *testing.T) {
		logger := FromContext(context.Background())

		require.NotNil(t, logger)
		// Must not panic when used.
		logger.Info("ignored")
	})
}

func TestWithFormRef(t *testing.T) {
	logger, logs := newObservedLogger()

	ctx, enriched := WithFormRef(context.Background(), logger, "3f6c9a2e")
	enriched.Info("form generated")

	assert.Equal(t, "3f6c9a2e", GetFormRef(ctx))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "3f6c9a2e", entries[0].ContextMap()["form_ref"])
}

func TestWithBatchID(t *testing.T) {
	logger, logs := newObservedLogger()

	ctx, enriched := WithBatchID(context.Background(), logger, "batch-42")
	enriched.Info("batch started")

	assert.Equal(t, "batch-42", GetBatchID(ctx))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "batch-42", entries[0].ContextMap()["batch_id"])
}

func TestGetFormRefMissing(t *testing.T) {
	assert.Empty(t, GetFormRef(context.Background()))
	assert.Empty(t, GetBatchID(context.Background()))
}

func TestContextLogger(t *testing.T) {
	t.Run("injects form ref from context", func(t *testing.T) {
		logger, logs := newObservedLogger()

		ctx := WithContext(context.Background(), logger)
		ctx = context.WithValue(ctx, FormRefKey, "ref-7")

		L(ctx).Info("rendering")

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "rendering", entries[0].Message)
		assert.Equal(t, "ref-7", entries[0].ContextMap()["form_ref"])
	})

	t.Run("injects batch id from context", func(t *testing.T) {
		logger, logs := newObservedLogger()

		ctx := WithContext(context.Background(), logger)
		ctx = context.WithValue(ctx, BatchIDKey, "batch-9")

		L(ctx).Warn("slow generation")

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "batch-9", entries[0].ContextMap()["batch_id"])
	})

	t.Run("WithLogger overrides the context logger", func(t *testing.T) {
		logger, logs := newObservedLogger()

		WithLogger(context.Background(), logger).Info("explicit")

		require.Len(t, logs.All(), 1)
	})

	t.Run("With adds fields to child entries", func(t *testing.T) {
		logger, logs := newObservedLogger()

		cl := WithLogger(context.Background(), logger).With(zap.String("stage", "paint"))
		cl.Debug("block painted")

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "paint", entries[0].ContextMap()["stage"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		cl := &ContextLogger{ctx: context.Background()}

		assert.NotPanics(t, func() {
			cl.Error("dropped")
		})
	})

	t.Run("Zap returns a usable logger", func(t *testing.T) {
		logger, logs := newObservedLogger()

		ctx := WithContext(context.Background(), logger)
		L(ctx).Zap().Info("direct")

		require.Len(t, logs.All(), 1)
	})
}
