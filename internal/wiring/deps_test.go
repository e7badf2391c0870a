package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relink/internal/app"
	_ "go.trai.ch/relink/internal/wiring"
)

// TestGraftDependencies resolves the full component graph the CLI starts from.
// graft.AssertDepsValid cannot be used here: it infers dependency IDs from the
// package of the requested type, and every adapter provides a type from the
// shared ports package.
func TestGraftDependencies(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](t.Context())
	require.NoError(t, err)
	require.NotNil(t, components)
	assert.NotNil(t, components.App)
	assert.NotNil(t, components.Logger)
}
