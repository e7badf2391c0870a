package glsl

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relink/internal/core/ports"
)

// NodeID is the unique identifier for the compiler factory Graft node.
const NodeID graft.ID = "adapter.glsl"

func init() {
	graft.Register(graft.Node[ports.CompilerFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CompilerFactory, error) {
			return Factory{}, nil
		},
	})
}
