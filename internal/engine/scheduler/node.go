package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relink/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relink/internal/adapters/glsl"               //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relink/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relink/internal/adapters/metrics"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relink/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relink/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler builder Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			glsl.NodeID,
			fs.NodeID,
			logger.NodeID,
			progrock.NodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			compilers, err := graft.Dep[ports.CompilerFactory](ctx)
			if err != nil {
				return nil, err
			}

			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			m, err := graft.Dep[*metrics.Metrics](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(compilers, fsys, log, telemetry, m), nil
		},
	})
}
