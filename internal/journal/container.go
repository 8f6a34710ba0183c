package journal

import "github.com/pebbleway/pebbleway-api/internal/store"

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewContainer(st store.Store) *Container {
	repo := NewRepository(st)
	service := NewService(repo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
