package progrock_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relink/internal/adapters/telemetry/progrock"
	"go.trai.ch/relink/internal/core/domain"
)

func TestNew(t *testing.T) {
	assert.NotNil(t, progrock.New())
}

func TestRecorder_Record(t *testing.T) {
	recorder := progrock.New()

	ctx := t.Context()
	got, vertex := recorder.Record(ctx, "load bloom")
	assert.Equal(t, ctx, got)
	require.NotNil(t, vertex)

	_, err := vertex.Stdout().Write([]byte("compiled vertex stage\n"))
	require.NoError(t, err)

	vertex.Log(domain.LogLevelDebug, "debug msg")
	vertex.Log(domain.LogLevelError, "link failed")
	vertex.Complete(errors.New("link failed"))

	require.NoError(t, recorder.Close())
}

func TestRecorder_RecordSameNameTwice(t *testing.T) {
	recorder := progrock.New()

	_, first := recorder.Record(t.Context(), "reload bloom")
	first.Complete(nil)

	_, second := recorder.Record(t.Context(), "reload bloom")
	assert.NotPanics(t, func() { second.Complete(nil) })

	require.NoError(t, recorder.Close())
}
