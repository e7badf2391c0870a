package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/relink/internal/adapters/telemetry"
	"go.trai.ch/relink/internal/core/domain"
)

func TestNoOp(t *testing.T) {
	ctx := t.Context()
	got, v := telemetry.NoOp{}.Record(ctx, "load bloom")
	assert.Equal(t, ctx, got)

	n, err := v.Stdout().Write([]byte("ignored"))
	assert.NoError(t, err)
	assert.Equal(t, 7, n)

	assert.NotPanics(t, func() {
		v.Log(domain.LogLevelWarn, "ignored")
		v.Complete(errors.New("ignored"))
	})
}
