package goal

import (
	"github.com/saulo-duarte/goal-pulse/internal/realtime"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewContainer(db *gorm.DB, broadcaster realtime.Broadcaster) *Container {
	repo := NewRepository(db)
	service := NewService(repo, broadcaster)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
