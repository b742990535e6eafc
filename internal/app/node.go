package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gantt/internal/adapters/config"
	"go.trai.ch/gantt/internal/adapters/logger"
	"go.trai.ch/gantt/internal/adapters/tasklist"
	"go.trai.ch/gantt/internal/core/ports"
)

// Node identifiers for the application layer.
const (
	NodeID           graft.ID = "app.main"
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, tasklist.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			source, err := graft.Dep[ports.TaskSource](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, source, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}
