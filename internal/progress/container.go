package progress

import (
	"github.com/saulo-duarte/goal-pulse/internal/analysis"
	"github.com/saulo-duarte/goal-pulse/internal/goal"
	"github.com/saulo-duarte/goal-pulse/internal/realtime"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(repo goal.Repository, analyzer *analysis.Analyzer, broadcaster realtime.Broadcaster) *Container {
	service := NewService(repo, analyzer, broadcaster)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
